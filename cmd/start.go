package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"commerce-verifier/core/apiclient"
	"commerce-verifier/core/config"
	"commerce-verifier/core/database"
	"commerce-verifier/core/loader"
	"commerce-verifier/core/logger"
	"commerce-verifier/core/middleware/auth"
	"commerce-verifier/core/middleware/rayid"
	"commerce-verifier/core/reportstore"

	"commerce-verifier/feature/order"
	"commerce-verifier/feature/product"
	"commerce-verifier/feature/reports"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "commerce-verifier/docs/swagger"
)

// @title Commerce Verifier API
// @version 1.0
// @description Conformance verification for the commerce API and its database.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the verification server",
	Long:  `Starts the HTTP server exposing the verification scenarios as endpoints.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// The database is not optional here: half of every comparison
		// comes straight from the stored rows.
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to commerce database", zap.Error(err))
		}
		if err := database.VerifySchema(db); err != nil {
			logg.Fatal("Commerce schema verification failed", zap.Error(err))
		}

		client := apiclient.New(cfg.API)

		// The archive is optional; runs still answer over HTTP without it.
		var archive *reportstore.Store
		if cfg.Reports.Enabled {
			storageClient, err := reportstore.NewClient(cfg.Reports)
			if err != nil {
				logg.Fatal("Failed to create report storage client", zap.Error(err))
			}
			archive = reportstore.NewStore(storageClient, cfg.Reports.Bucket)
			if err := archive.EnsureBucket(cmd.Context()); err != nil {
				logg.Fatal("Failed to prepare report bucket", zap.Error(err))
			}
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(product.NewFeature(client, db, archive, logg))
		mgr.Register(order.NewFeature(client, db, archive, logg))
		mgr.Register(reports.NewFeature(archive, logg))

		// RayID first so everything downstream is traceable.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

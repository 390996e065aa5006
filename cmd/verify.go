package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"commerce-verifier/core/apiclient"
	"commerce-verifier/core/config"
	"commerce-verifier/core/database"
	"commerce-verifier/core/logger"
	"commerce-verifier/core/reportstore"
	"commerce-verifier/feature/order"
	"commerce-verifier/feature/product"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// verifyCmd groups the one-shot verification runs.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run verification scenarios once and exit",
	Long: `Runs the selected verification scenarios against the configured commerce
API and database, prints every run report and exits non-zero when any
scenario failed.`,
}

var verifyProductCmd = &cobra.Command{
	Use:   "product",
	Short: "Run the product scenarios",
	Long:  `Runs the product create, read, update, delete and list scenarios.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScenarios(cmd.Context(), func(env *verifyEnv) []*reportstore.RunReport {
			svc := product.NewFeature(env.client, env.db, env.archive, env.logger).Service()
			ctx := cmd.Context()
			return []*reportstore.RunReport{
				svc.VerifyCreate(ctx),
				svc.VerifyRead(ctx),
				svc.VerifyUpdate(ctx),
				svc.VerifyDelete(ctx),
				svc.VerifyList(ctx),
			}
		})
	},
}

var verifyOrderCmd = &cobra.Command{
	Use:   "order",
	Short: "Run the order scenarios",
	Long:  `Runs the order create, read and update scenarios.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScenarios(cmd.Context(), func(env *verifyEnv) []*reportstore.RunReport {
			svc := order.NewFeature(env.client, env.db, env.archive, env.logger).Service()
			ctx := cmd.Context()
			return []*reportstore.RunReport{
				svc.VerifyCreate(ctx),
				svc.VerifyRead(ctx),
				svc.VerifyUpdate(ctx),
			}
		})
	},
}

type verifyEnv struct {
	client  *apiclient.Client
	db      *gorm.DB
	archive *reportstore.Store
	logger  *zap.Logger
}

func runScenarios(ctx context.Context, run func(env *verifyEnv) []*reportstore.RunReport) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logg.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to commerce database: %w", err)
	}
	if err := database.VerifySchema(db); err != nil {
		return fmt.Errorf("verify commerce schema: %w", err)
	}

	var archive *reportstore.Store
	if cfg.Reports.Enabled {
		storageClient, err := reportstore.NewClient(cfg.Reports)
		if err != nil {
			return fmt.Errorf("create report storage client: %w", err)
		}
		archive = reportstore.NewStore(storageClient, cfg.Reports.Bucket)
		if err := archive.EnsureBucket(ctx); err != nil {
			return fmt.Errorf("prepare report bucket: %w", err)
		}
	}

	reports := run(&verifyEnv{
		client:  apiclient.New(cfg.API),
		db:      db,
		archive: archive,
		logger:  logg,
	})

	failed := 0
	for _, report := range reports {
		if report.Passed {
			logg.Info("Scenario passed",
				zap.String("scenario", report.Scenario),
				zap.String("duration", report.ExecutionTime))
			continue
		}
		failed++
		fields := []zap.Field{
			zap.String("scenario", report.Scenario),
			zap.String("entity_id", report.EntityID),
		}
		if report.Error != "" {
			fields = append(fields, zap.String("error", report.Error))
		}
		if len(report.Mismatches) > 0 {
			fields = append(fields, zap.String("mismatches", strings.Join(report.Mismatches, "; ")))
		}
		logg.Error("Scenario failed", fields...)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenario(s) failed", failed, len(reports))
	}
	return nil
}

func init() {
	verifyCmd.AddCommand(verifyProductCmd)
	verifyCmd.AddCommand(verifyOrderCmd)
	RootCmd.AddCommand(verifyCmd)
}

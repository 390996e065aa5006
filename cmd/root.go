package cmd

import (
	"fmt"
	"os"

	"commerce-verifier/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "commerce-verifier",
	Short: "Commerce Conformance Verifier",
	Long: `Commerce Verifier checks that the commerce API and its database agree.
It drives the API with generated fixtures, reads the stored rows directly
and reconciles both representations field by field.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug level so CLI users get readable
		// ISO8601 output instead of the production epoch encoding.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"os"

	"factory-planner/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "factory-planner",
	Short: "Factory production planner",
	Long: `Factory Planner works out how many buildings a production target needs,
or how fast a given number of buildings produces, using exact fractions.
Recipe data is read from S3/MinIO, a local file or a SQL mirror.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console + debug config gives readable ISO8601 output for CLI users
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

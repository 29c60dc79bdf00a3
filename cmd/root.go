package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/horhof/datafort.network/internal/logger"
)

var (
	separator string
	logLevel  string
	pretty    bool
)

var rootCmd = &cobra.Command{
	Use:          "datafort",
	Short:        "Datafort: a site directory parsed from flat text and served for browsing",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&separator, "separator", "\t", "Field separator of the flat format")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Human-readable log output")
}

func newLogger() zerolog.Logger {
	return logger.New(logger.Config{Level: logLevel, Pretty: pretty})
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

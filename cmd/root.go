package cmd

import (
	"fmt"
	"os"

	"data-exporter/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// envDir is the directory holding the optional .env file.
var envDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "data-exporter",
	Short: "Game data exporter for the wiki",
	Long: `Data Exporter reads the JSON dump of the game content, resolves its data tables,
string tables and enums, and exports wiki-ready items, recipes, icons and strings.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&envDir, "env-dir", ".", "Directory holding the .env file")
}

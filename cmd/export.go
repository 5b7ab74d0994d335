package cmd

import (
	"context"
	"fmt"
	"time"

	"data-exporter/core/database"
	"data-exporter/core/output"
	"data-exporter/core/storage"
	"data-exporter/feature/wiki"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:       "export [items|recipes|icons|strings|all]",
	Short:     "Export wiki documents",
	Long:      `Parses the game data and writes the selected wiki documents to every configured output target.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"items", "recipes", "icons", "strings", "all"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		target := "all"
		if len(args) == 1 {
			target = args[0]
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		sink, err := a.sink(ctx)
		if err != nil {
			return err
		}

		exporters := []wiki.Exporter{
			wiki.NewItemsExporter(a.wiki, sink, a.logger),
			wiki.NewRecipesExporter(a.wiki, sink, a.logger),
			wiki.NewIconsExporter(a.wiki, a.objects, sink, a.cfg.Wiki, a.logger),
			wiki.NewStringsExporter(a.strings, a.cfg.Wiki.StringTables, sink, a.logger),
		}

		for _, e := range exporters {
			if target != "all" && e.Name() != target {
				continue
			}
			if err := e.Run(ctx); err != nil {
				return fmt.Errorf("%s export failed: %w", e.Name(), err)
			}
		}

		a.logStats()
		a.logger.Info("Export completed",
			zap.String("target", target),
			zap.Strings("outputs", a.cfg.Output.Targets),
			zap.Duration("execution_time", time.Since(startTime)),
		)
		return nil
	},
}

// sink builds the output sink, connecting only the backends the enabled targets need.
func (a *app) sink(ctx context.Context) (output.Sink, error) {
	backends := output.Backends{
		Fs:     a.fs,
		Bucket: a.cfg.Storage.Bucket,
		Region: a.cfg.Storage.Region,
	}

	if a.cfg.Output.Has(output.TargetBucket) {
		client, err := storage.NewClient(a.cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		backends.Storage = client
	}

	if a.cfg.Output.Has(output.TargetDatabase) {
		db, err := database.Connect(a.cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database connection required: %w", err)
		}
		backends.DB = db
	}

	return output.New(ctx, a.cfg.Output, backends)
}

func init() {
	RootCmd.AddCommand(exportCmd)
}

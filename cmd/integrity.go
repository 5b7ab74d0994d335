package cmd

import (
	"context"
	"errors"

	"data-exporter/core/output"
	"data-exporter/core/unreal"
	"data-exporter/feature/integrity"
	"data-exporter/feature/items"
	"data-exporter/feature/recipes"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the input dump and the output targets",
	Long: `Checks that the input dump holds the tables exports read, that the database target
schema matches the exported file model, and that the bucket and database targets mirror the
output directory. Prints the report as JSON and fails when a check does not pass.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		service, err := a.integrity(ctx)
		if err != nil {
			return err
		}

		a.logger.Info("Running integrity checks")
		report := service.Run(ctx)
		if err := printJSON(cmd, report); err != nil {
			return err
		}

		if !report.OK() {
			return errors.New("integrity checks failed")
		}
		a.logger.Info("Integrity checks passed", zap.Int("checks", len(report)))
		return nil
	},
}

// integrity builds the integrity service over the enabled targets.
func (a *app) integrity(ctx context.Context) (*integrity.Service, error) {
	targets, db, err := a.stores(ctx)
	if err != nil {
		return nil, err
	}

	required := []unreal.ObjectIdentifier{items.ItemsTable, recipes.RecipesTable}
	reference := output.NewFileSink(a.fs, a.cfg.Output.Directory)
	return integrity.NewService(a.objects, required, db, reference, targets, a.logger), nil
}

func init() {
	RootCmd.AddCommand(integrityCmd)
}

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"data-exporter/core/database"
	"data-exporter/core/output"
	"data-exporter/core/reconcile"
	"data-exporter/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	purgeStale bool
	syncStale  bool
	dryRun     bool
	yesConfirm bool
	planJSON   bool
)

// reconcileCmd compares the bucket and database targets with the output directory.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile exported documents between the output directory, bucket and database",
	Long: `Compare the documents stored by the bucket and database targets with the output directory.

Reports documents missing from a target, stale documents the directory no longer holds,
and documents whose checksum differs. Optionally purge stale documents or sync the others.

Examples:
  # Report only
  reconcile

  # Delete stale documents (with interactive confirmation)
  reconcile --purge

  # Re-upload missing and differing documents without prompting
  reconcile --sync --yes`,
	Args: cobra.NoArgs,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().BoolVar(&purgeStale, "purge", false, "Delete documents the output directory does not hold")
	reconcileCmd.Flags().BoolVar(&syncStale, "sync", false, "Copy missing and differing documents from the output directory")
	reconcileCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Force dry-run (no mutations even with --yes)")
	reconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	reconcileCmd.Flags().BoolVar(&planJSON, "json", false, "Print the plan as JSON")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	reference := output.NewFileSink(a.fs, a.cfg.Output.Directory)
	targets, _, err := a.stores(ctx)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return errors.New("reconcile needs the bucket or database output target")
	}

	opts := reconcile.Options{
		DoPurge: purgeStale,
		DoSync:  syncStale,
		DryRun:  dryRun,
	}

	a.logger.Info("Planning reconciliation...")
	plan, err := reconcile.ReconcileWithPlan(ctx, reference, targets, opts)
	if err != nil {
		return fmt.Errorf("failed to plan reconciliation: %w", err)
	}

	if planJSON {
		if err := printJSON(cmd, plan); err != nil {
			return err
		}
	}
	printReconcileReport(a.logger, plan)

	if !purgeStale && !syncStale {
		a.logger.Info("No actions requested. Use --purge to delete stale documents or --sync to repair the others.")
		return nil
	}
	if dryRun {
		a.logger.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if len(plan.Actions) == 0 {
		a.logger.Info("No actions required based on current flags.")
		return nil
	}

	if !confirmDestructiveAction(cmd) {
		a.logger.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}
	opts.Confirmed = true

	a.logger.Info("Applying actions...")
	executed, err := reconcile.ApplyPlan(ctx, reference, targets, plan, opts)
	if err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}

	a.logger.Info("Successfully executed actions", zap.Int("count", executed))
	return nil
}

// stores opens the bucket and database targets that are enabled. db is nil unless
// the database target is.
func (a *app) stores(ctx context.Context) (stores []reconcile.Store, db *gorm.DB, err error) {
	if a.cfg.Output.Has(output.TargetBucket) {
		client, err := storage.NewClient(a.cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		if err := storage.EnsureBucket(ctx, client, a.cfg.Storage.Bucket, a.cfg.Storage.Region); err != nil {
			return nil, nil, err
		}
		stores = append(stores, output.NewBucketSink(client, a.cfg.Storage.Bucket, a.cfg.Output.Prefix))
	}

	if a.cfg.Output.Has(output.TargetDatabase) {
		db, err = database.Connect(a.cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection required: %w", err)
		}
		sink, err := output.NewDatabaseSink(db)
		if err != nil {
			return nil, nil, err
		}
		stores = append(stores, sink)
	}

	return stores, db, nil
}

// printReconcileReport logs a summary of the plan and a sample of its actions.
func printReconcileReport(l *zap.Logger, plan *reconcile.Plan) {
	s := plan.Summary

	l.Info("Reconciliation report",
		zap.String("reference", plan.Reference),
		zap.Int("total_files", s.TotalFiles),
		zap.Any("missing", s.Missing),
		zap.Any("stale", s.Stale),
		zap.Int("mismatches", s.Mismatches),
	)

	if len(plan.Actions) == 0 {
		return
	}

	l.Info("Planned actions",
		zap.Int("purge_actions", s.PurgeActions),
		zap.Int("sync_actions", s.SyncActions),
		zap.Int("total_actions", len(plan.Actions)),
	)

	maxShow := min(5, len(plan.Actions))
	for _, action := range plan.Actions[:maxShow] {
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.String("store", action.Store),
			zap.String("path", action.Path),
			zap.String("reason", action.Reason),
		)
	}
	if len(plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
	}
}

// confirmDestructiveAction prompts for confirmation unless --yes was given.
func confirmDestructiveAction(cmd *cobra.Command) bool {
	if yesConfirm {
		fmt.Fprintln(cmd.ErrOrStderr(), "Auto-confirmed via --yes flag")
		return true
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Type 'yes' to confirm destructive actions: ")
	response, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}

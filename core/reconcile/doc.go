// Package reconcile compares the documents held by the output targets.
//
// The file target is the reference: every export writes it first, so the
// bucket and database targets are expected to mirror it. Reconciliation
// indexes every target concurrently (path to SHA-256 checksum), builds the
// union of paths and reports, per path, which targets hold it and which hold
// a different checksum.
//
// A plan derived from the results can:
//   - purge documents a target holds but the reference does not
//   - sync documents missing from a target or differing from the reference
//
// Plans are only applied when confirmed and not in dry-run mode.
//
//	plan, err := reconcile.ReconcileWithPlan(ctx, fileSink, []reconcile.Store{bucketSink}, opts)
//	executed, err := reconcile.ApplyPlan(ctx, fileSink, []reconcile.Store{bucketSink}, plan, opts)
package reconcile

package reconcile

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// ReconcileWithPlan reconciles the targets against the reference and plans actions.
// It does NOT execute actions; use ApplyPlan for that.
func ReconcileWithPlan(ctx context.Context, reference Reference, targets []Store, opts Options) (*Plan, error) {
	results, err := ReconcileAll(ctx, reference, targets...)
	if err != nil {
		return nil, err
	}

	summary, actions := buildPlanFromResults(results, reference.Name(), targets, opts)

	return &Plan{
		Reference: reference.Name(),
		Results:   results,
		Actions:   actions,
		Summary:   summary,
	}, nil
}

// ApplyPlan executes the actions in a plan and returns how many ran.
// Nothing runs unless opts.Confirmed is set and opts.DryRun is not.
func ApplyPlan(ctx context.Context, reference Reference, targets []Store, plan *Plan, opts Options) (executed int, err error) {
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}

	byName := make(map[string]Store, len(targets))
	for _, target := range targets {
		byName[target.Name()] = target
	}

	for _, action := range plan.Actions {
		if err := ctx.Err(); err != nil {
			return executed, err
		}

		target, ok := byName[action.Store]
		if !ok {
			return executed, fmt.Errorf("unknown store %s in plan", action.Store)
		}

		switch action.Type {
		case ActionDelete:
			if err := target.Remove(ctx, action.Path); err != nil {
				return executed, fmt.Errorf("failed to delete %s from %s: %w", action.Path, action.Store, err)
			}
		case ActionSync:
			data, err := reference.ReadFile(ctx, action.Path)
			if err != nil {
				return executed, fmt.Errorf("failed to sync %s to %s: %w", action.Path, action.Store, err)
			}
			if err := target.WriteFile(ctx, action.Path, data); err != nil {
				return executed, fmt.Errorf("failed to sync %s to %s: %w", action.Path, action.Store, err)
			}
		default:
			return executed, fmt.Errorf("unknown action type %s", action.Type)
		}
		executed++
	}

	return executed, nil
}

// ReconcileAndApply plans and optionally applies actions.
func ReconcileAndApply(ctx context.Context, reference Reference, targets []Store, opts Options) (*Plan, int, error) {
	plan, err := ReconcileWithPlan(ctx, reference, targets, opts)
	if err != nil {
		return nil, 0, err
	}

	executed, err := ApplyPlan(ctx, reference, targets, plan, opts)
	return plan, executed, err
}

// buildPlanFromResults generates a summary and action plan from results.
func buildPlanFromResults(results []Result, reference string, targets []Store, opts Options) (Summary, []Action) {
	summary := Summary{
		TotalFiles: len(results),
		Missing:    make(map[string]int, len(targets)),
		Stale:      make(map[string]int, len(targets)),
	}
	var actions []Action

	for _, result := range results {
		if len(result.Mismatch) > 0 {
			summary.Mismatches++
		}

		for _, target := range targets {
			name := target.Name()
			present := result.Present[name]

			switch {
			case !result.InReference(reference) && present:
				summary.Stale[name]++
				if opts.DoPurge {
					actions = append(actions, Action{
						Type:   ActionDelete,
						Store:  name,
						Path:   result.Path,
						Reason: getMissingReason(result, reference),
					})
					summary.PurgeActions++
				}
			case result.InReference(reference) && !present:
				summary.Missing[name]++
				if opts.DoSync {
					actions = append(actions, Action{
						Type:   ActionSync,
						Store:  name,
						Path:   result.Path,
						Reason: fmt.Sprintf("missing in %s", name),
					})
					summary.SyncActions++
				}
			case result.InReference(reference) && opts.DoSync:
				if reason, ok := mismatchFor(result, name); ok {
					actions = append(actions, Action{
						Type:   ActionSync,
						Store:  name,
						Path:   result.Path,
						Reason: reason,
					})
					summary.SyncActions++
				}
			}
		}
	}

	return summary, actions
}

// mismatchFor returns the mismatch a result records for one store.
func mismatchFor(result Result, store string) (string, bool) {
	for _, m := range result.Mismatch {
		if strings.HasPrefix(m, store+":") {
			return "mismatch: " + m, true
		}
	}
	return "", false
}

// getMissingReason describes why a stale document should be purged.
func getMissingReason(result Result, reference string) string {
	var holders []string
	for store, present := range result.Present {
		if present {
			holders = append(holders, store)
		}
	}
	if len(holders) == 0 {
		return fmt.Sprintf("missing in %s", reference)
	}
	slices.Sort(holders)
	return fmt.Sprintf("missing in %s, held by: %s", reference, strings.Join(holders, ", "))
}

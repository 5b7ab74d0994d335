package integrity

import (
	"context"
	"errors"

	"data-exporter/core/output"
	"data-exporter/core/reconcile"
	"data-exporter/core/unreal"
	"data-exporter/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrSkipped is returned by checks whose backend is not configured.
var ErrSkipped = errors.New("check skipped: backend not configured")

// Check statuses.
const (
	StatusOK      = "ok"
	StatusFailed  = "failed"
	StatusError   = "error"
	StatusSkipped = "skipped"
)

// CheckResult is the outcome of one check in a report.
type CheckResult struct {
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Report maps check names (input, schema, outputs) to their outcome.
type Report map[string]CheckResult

// OK reports whether no check failed or errored.
func (r Report) OK() bool {
	for _, result := range r {
		if result.Status == StatusFailed || result.Status == StatusError {
			return false
		}
	}
	return true
}

// Service handles integrity checks.
type Service struct {
	objects   checks.ObjectGetter
	required  []unreal.ObjectIdentifier
	db        *gorm.DB
	reference reconcile.Reference
	targets   []reconcile.Store
	logger    *zap.Logger
}

// NewService creates a new integrity service. db and targets may be nil when the
// database or remote output targets are disabled.
func NewService(objects checks.ObjectGetter, required []unreal.ObjectIdentifier, db *gorm.DB, reference reconcile.Reference, targets []reconcile.Store, logger *zap.Logger) *Service {
	return &Service{
		objects:   objects,
		required:  required,
		db:        db,
		reference: reference,
		targets:   targets,
		logger:    logger,
	}
}

// CheckInput returns the required object paths missing from the input dump.
func (s *Service) CheckInput(ctx context.Context) ([]string, error) {
	return checks.CheckInput(ctx, s.objects, s.required)
}

// CheckSchema verifies the exported_files table.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, ErrSkipped
	}
	return checks.CheckSchema(s.db, &output.ExportedFile{})
}

// CheckOutputs compares the remote output targets with the output directory.
func (s *Service) CheckOutputs(ctx context.Context) (*reconcile.Summary, error) {
	if s.reference == nil || len(s.targets) == 0 {
		return nil, ErrSkipped
	}
	plan, err := reconcile.ReconcileWithPlan(ctx, s.reference, s.targets, reconcile.Options{})
	if err != nil {
		return nil, err
	}
	return &plan.Summary, nil
}

// Run performs every check. Failing checks are reported, not returned.
func (s *Service) Run(ctx context.Context) Report {
	report := make(Report, 3)

	if missing, err := s.CheckInput(ctx); err != nil {
		report["input"] = errorResult(err)
	} else if len(missing) > 0 {
		report["input"] = CheckResult{Status: StatusFailed, Details: missing}
	} else {
		report["input"] = CheckResult{Status: StatusOK}
	}

	if schemaReport, err := s.CheckSchema(); err != nil {
		report["schema"] = errorResult(err)
	} else if !schemaReport.Matched {
		report["schema"] = CheckResult{Status: StatusFailed, Details: schemaReport}
	} else {
		report["schema"] = CheckResult{Status: StatusOK, Details: schemaReport}
	}

	if summary, err := s.CheckOutputs(ctx); err != nil {
		report["outputs"] = errorResult(err)
	} else if summary.Mismatches > 0 || total(summary.Missing) > 0 || total(summary.Stale) > 0 {
		report["outputs"] = CheckResult{Status: StatusFailed, Details: summary}
	} else {
		report["outputs"] = CheckResult{Status: StatusOK, Details: summary}
	}

	for name, result := range report {
		if result.Status == StatusFailed || result.Status == StatusError {
			s.logger.Warn("Integrity check did not pass", zap.String("check", name), zap.String("status", result.Status))
		}
	}
	return report
}

func errorResult(err error) CheckResult {
	if errors.Is(err, ErrSkipped) {
		return CheckResult{Status: StatusSkipped}
	}
	return CheckResult{Status: StatusError, Error: err.Error()}
}

func total(counts map[string]int) int {
	n := 0
	for _, c := range counts {
		n += c
	}
	return n
}

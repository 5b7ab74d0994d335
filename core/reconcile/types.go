package reconcile

import "context"

// Store is an output target whose documents can be listed and repaired.
type Store interface {
	// Name identifies the target in results and actions.
	Name() string
	// Index maps every stored document path to its checksum.
	Index(ctx context.Context) (map[string]string, error)
	// WriteFile stores raw bytes under name.
	WriteFile(ctx context.Context, name string, data []byte) error
	// Remove deletes the document stored under name.
	Remove(ctx context.Context, name string) error
}

// Reference is the store other targets are compared against.
type Reference interface {
	Store
	// ReadFile returns the content of a document.
	ReadFile(ctx context.Context, name string) ([]byte, error)
}

// Result is the reconciliation output for a single document path.
type Result struct {
	// Path is the document path relative to each target root.
	Path string `json:"path"`

	// Present maps each store name to whether it holds the document.
	Present map[string]bool `json:"present"`

	// Mismatch describes stores whose checksum differs from the reference,
	// e.g. "bucket: checksum 1a2b3c4d5e6f != 6f5e4d3c2b1a".
	Mismatch []string `json:"mismatch"`
}

// InReference reports whether the reference store holds the document.
func (r Result) InReference(reference string) bool {
	return r.Present[reference]
}

// ActionType identifies a planned mutation.
type ActionType string

const (
	// ActionDelete removes a stale document from a target.
	ActionDelete ActionType = "delete"
	// ActionSync copies the reference document to a target.
	ActionSync ActionType = "sync"
)

// Action is one planned mutation on a target.
type Action struct {
	Type   ActionType `json:"type"`
	Store  string     `json:"store"`
	Path   string     `json:"path"`
	Reason string     `json:"reason"`
}

// Summary counts what a reconciliation found and planned.
type Summary struct {
	TotalFiles   int            `json:"total_files"`
	Missing      map[string]int `json:"missing"`
	Stale        map[string]int `json:"stale"`
	Mismatches   int            `json:"mismatches"`
	PurgeActions int            `json:"purge_actions"`
	SyncActions  int            `json:"sync_actions"`
}

// Plan bundles results with the actions planned from them.
type Plan struct {
	Reference string   `json:"reference"`
	Results   []Result `json:"results"`
	Actions   []Action `json:"actions"`
	Summary   Summary  `json:"summary"`
}

// Options selects which actions are planned and whether they run.
type Options struct {
	// DoPurge plans deletion of documents the reference does not hold.
	DoPurge bool
	// DoSync plans copies for documents missing or differing in a target.
	DoSync bool
	// DryRun prevents ApplyPlan from mutating anything.
	DryRun bool
	// Confirmed must be set for ApplyPlan to mutate anything.
	Confirmed bool
}

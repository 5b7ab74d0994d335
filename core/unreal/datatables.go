package unreal

import (
	"context"
	"fmt"
)

// Rows is the ordered row mapping of a data table.
type Rows struct {
	rows *Object
}

// Names returns the row names in source order.
func (r *Rows) Names() []string {
	return r.rows.Keys()
}

// Len returns the number of rows.
func (r *Rows) Len() int {
	return r.rows.Len()
}

// Get returns a row by name.
func (r *Rows) Get(name string) (*Object, bool) {
	row, ok := r.rows.Child(name)
	if !ok || row.IsNull() {
		return nil, false
	}
	return row, true
}

// Each calls fn for every row in source order, stopping at the first error.
func (r *Rows) Each(fn func(name string, row *Object) error) error {
	for _, name := range r.rows.Keys() {
		row, _ := r.rows.Child(name)
		if err := fn(name, row); err != nil {
			return err
		}
	}
	return nil
}

// RowStore resolves data-table row handles.
type RowStore struct {
	objects ObjectGetter
}

// NewRowStore creates a row store.
func NewRowStore(objects ObjectGetter) *RowStore {
	return &RowStore{objects: objects}
}

// GetRow returns the row a handle points at. A "None" handle is absent without any
// lookup. A row missing from its table is absent too; callers decide whether that is fatal.
func (s *RowStore) GetRow(ctx context.Context, handle DataTableRowHandle) (*Object, bool, error) {
	if handle.IsNone() {
		return nil, false, nil
	}

	rows, err := s.GetAllRows(ctx, handle.DataTable)
	if err != nil {
		return nil, false, err
	}

	row, ok := rows.Get(handle.RowName)
	return row, ok, nil
}

// GetAllRows returns every row of a data table in source order.
func (s *RowStore) GetAllRows(ctx context.Context, identifier ObjectIdentifier) (*Rows, error) {
	table, err := s.objects.Get(ctx, identifier)
	if err != nil {
		return nil, err
	}

	rows, ok := table.Child("Rows")
	if !ok {
		return nil, fmt.Errorf("%w: Rows of data table %s", ErrObjectNotFound, identifier)
	}
	return &Rows{rows: rows}, nil
}

// DecodeRow decodes a row into a typed value.
func DecodeRow[T any](row *Object) (T, error) {
	var out T
	if err := row.Decode(&out); err != nil {
		return out, fmt.Errorf("failed to decode row: %w", err)
	}
	return out, nil
}

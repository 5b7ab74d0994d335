package unreal

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"github.com/tidwall/gjson"
)

var tableIDPattern = regexp.MustCompile(`([^.]+)\.([^.]+)`)

// StringSourceKind identifies the shape of a StringHandle source.
// Lower values take priority during resolution.
type StringSourceKind int

const (
	// SourceTable is a string stored in a string table.
	SourceTable StringSourceKind = iota
	// SourceLocalized is an inline localized text with a source string.
	SourceLocalized
	// SourceInvariant is a culture-invariant string.
	SourceInvariant
)

func (k StringSourceKind) String() string {
	switch k {
	case SourceTable:
		return "table"
	case SourceLocalized:
		return "localized"
	case SourceInvariant:
		return "invariant"
	default:
		return "unknown"
	}
}

// StringSource is one of the shapes a StringHandle can carry.
type StringSource interface {
	Kind() StringSourceKind
}

// TableString points at an entry of a string table.
type TableString struct {
	TableID string
	Key     string
}

// Kind implements StringSource.
func (TableString) Kind() StringSourceKind { return SourceTable }

// LocalizedString is an inline localized text.
type LocalizedString struct {
	Namespace       string
	Key             string
	SourceString    string
	LocalizedString string
}

// Kind implements StringSource.
func (LocalizedString) Kind() StringSourceKind { return SourceLocalized }

// InvariantString is a text that is the same in every culture.
type InvariantString struct {
	Value string
}

// Kind implements StringSource.
func (InvariantString) Kind() StringSourceKind { return SourceInvariant }

// StringHandle is a classified text reference. The extracted JSON does not tag its
// shape, so the shapes present are detected once at decode time and kept in resolution
// order: table, then localized, then invariant.
type StringHandle struct {
	sources []StringSource
}

// NewStringHandle builds a handle from the given sources, ordered by priority.
func NewStringHandle(sources ...StringSource) StringHandle {
	ordered := make([]StringSource, len(sources))
	copy(ordered, sources)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Kind() < ordered[j].Kind()
	})
	return StringHandle{sources: ordered}
}

// ClassifyStringHandle detects which shapes a raw text value carries.
// Fields that are present but null do not count as a shape.
func ClassifyStringHandle(raw gjson.Result) StringHandle {
	if !raw.IsObject() {
		return StringHandle{}
	}

	present := func(name string) bool {
		v := raw.Get(name)
		return v.Exists() && v.Type != gjson.Null
	}

	var sources []StringSource
	if present("TableId") {
		sources = append(sources, TableString{
			TableID: raw.Get("TableId").String(),
			Key:     raw.Get("Key").String(),
		})
	}
	if present("SourceString") {
		sources = append(sources, LocalizedString{
			Namespace:       raw.Get("Namespace").String(),
			Key:             raw.Get("Key").String(),
			SourceString:    raw.Get("SourceString").String(),
			LocalizedString: raw.Get("LocalizedString").String(),
		})
	}
	if present("CultureInvariantString") {
		sources = append(sources, InvariantString{
			Value: raw.Get("CultureInvariantString").String(),
		})
	}
	return StringHandle{sources: sources}
}

// UnmarshalJSON classifies the raw handle.
func (h *StringHandle) UnmarshalJSON(data []byte) error {
	*h = ClassifyStringHandle(gjson.ParseBytes(data))
	return nil
}

// Sources returns the classified sources in resolution order.
func (h StringHandle) Sources() []StringSource {
	out := make([]StringSource, len(h.sources))
	copy(out, h.sources)
	return out
}

// Kinds returns the kinds of the classified sources in resolution order.
func (h StringHandle) Kinds() []StringSourceKind {
	kinds := make([]StringSourceKind, 0, len(h.sources))
	for _, s := range h.sources {
		kinds = append(kinds, s.Kind())
	}
	return kinds
}

// IsEmpty reports whether the handle carries no shape at all.
func (h StringHandle) IsEmpty() bool {
	return len(h.sources) == 0
}

// StringEntry is a single key of a string table.
type StringEntry struct {
	Key   string
	Value string
}

// StringTable is the content of a string table in source order.
type StringTable struct {
	Name      string
	Namespace string
	Entries   []StringEntry
}

// Map returns the table as a key to string mapping.
func (t *StringTable) Map() map[string]string {
	out := make(map[string]string, len(t.Entries))
	for _, e := range t.Entries {
		out[e.Key] = e.Value
	}
	return out
}

// StringResolver resolves StringHandle values to display strings.
type StringResolver struct {
	objects ObjectGetter
}

// NewStringResolver creates a resolver loading string tables through objects.
func NewStringResolver(objects ObjectGetter) *StringResolver {
	return &StringResolver{objects: objects}
}

// ResolveString returns the first value the handle's sources yield, in priority order.
// ok is false when no source yields a value.
func (r *StringResolver) ResolveString(ctx context.Context, handle StringHandle) (value string, ok bool, err error) {
	for _, source := range handle.sources {
		switch s := source.(type) {
		case TableString:
			entries, err := r.tableEntries(ctx, s.TableID)
			if err != nil {
				return "", false, err
			}
			if v, found := entries.Field(s.Key); found && v.Type != gjson.Null {
				return v.String(), true, nil
			}
		case LocalizedString:
			return s.SourceString, true, nil
		case InvariantString:
			return s.Value, true, nil
		}
	}
	return "", false, nil
}

// ResolveAllStrings returns every entry of a string table.
func (r *StringResolver) ResolveAllStrings(ctx context.Context, tableID string) (*StringTable, error) {
	table, err := r.stringTable(ctx, tableID)
	if err != nil {
		return nil, err
	}

	result := &StringTable{Name: table.StringField("Name")}
	body, ok := table.Child("StringTable")
	if !ok {
		return result, nil
	}
	result.Namespace = body.StringField("TableNamespace")

	entries, ok := body.Child("KeysToMetaData")
	if !ok {
		return result, nil
	}
	for _, key := range entries.Keys() {
		v, _ := entries.Field(key)
		result.Entries = append(result.Entries, StringEntry{Key: key, Value: v.String()})
	}
	return result, nil
}

func (r *StringResolver) tableEntries(ctx context.Context, tableID string) (*Object, error) {
	table, err := r.stringTable(ctx, tableID)
	if err != nil {
		return nil, err
	}

	body, ok := table.Child("StringTable")
	if !ok {
		return NewObject(gjson.Result{}), nil
	}
	entries, ok := body.Child("KeysToMetaData")
	if !ok {
		return NewObject(gjson.Result{}), nil
	}
	return entries, nil
}

// stringTable loads the table named by a "<path>.<name>" id. String table files hold a
// single table, stored under key 0.
func (r *StringResolver) stringTable(ctx context.Context, tableID string) (*Object, error) {
	match := tableIDPattern.FindStringSubmatch(tableID)
	if match == nil {
		return nil, fmt.Errorf("%w: string table %q", ErrMalformedPath, tableID)
	}
	objectPath, tableName := match[1], match[2]

	table, err := r.objects.Get(ctx, ObjectIdentifier{
		ObjectName: tableName,
		ObjectPath: objectPath + ".0",
	})
	if err != nil {
		return nil, err
	}

	if name := table.StringField("Name"); name != tableName {
		return nil, fmt.Errorf("%w: %s holds %q (expected %q)", ErrStringTableMismatch, objectPath, name, tableName)
	}
	return table, nil
}

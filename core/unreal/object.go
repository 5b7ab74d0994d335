package unreal

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// generatedKeyPattern matches property names carrying the engine's generated suffix,
// e.g. "ItemToCreate_4_842F5059497E898D938220BCCC148B08". Only keys (followed by a colon)
// are rewritten.
var generatedKeyPattern = regexp.MustCompile(`"(\w+?)_\d+_[0-9A-F]{32}(?:\[\d+\])?"(\s*:)`)

// CleanKeys strips generated suffixes from every property name of a JSON document.
func CleanKeys(raw []byte) []byte {
	return generatedKeyPattern.ReplaceAll(raw, []byte(`"$1"$2`))
}

// Object is a read-only view over a parsed JSON value owned by the ObjectStore.
// Fields are indexed on first access; nested objects returned by Child are memoized so
// repeated lookups into large tables do not rescan the document.
type Object struct {
	value gjson.Result

	indexOnce sync.Once
	keys      []string
	fields    map[string]gjson.Result

	mu       sync.Mutex
	children map[string]*Object
}

// NewObject wraps a parsed value.
func NewObject(value gjson.Result) *Object {
	return &Object{value: value}
}

// ParseObject parses a JSON document into an Object.
func ParseObject(raw string) *Object {
	return NewObject(gjson.Parse(raw))
}

func (o *Object) index() {
	o.indexOnce.Do(func() {
		o.fields = make(map[string]gjson.Result)
		add := func(name string, v gjson.Result) {
			if _, dup := o.fields[name]; !dup {
				o.keys = append(o.keys, name)
			}
			o.fields[name] = v
		}

		switch {
		case o.value.IsObject():
			o.value.ForEach(func(k, v gjson.Result) bool {
				add(k.String(), v)
				return true
			})
		case o.value.IsArray():
			i := 0
			o.value.ForEach(func(_, v gjson.Result) bool {
				add(strconv.Itoa(i), v)
				i++
				return true
			})
		}
	})
}

// Value returns the underlying parsed value.
func (o *Object) Value() gjson.Result {
	return o.value
}

// Raw returns the JSON text of the object.
func (o *Object) Raw() string {
	return o.value.Raw
}

// IsNull reports whether the object is missing or JSON null.
func (o *Object) IsNull() bool {
	return !o.value.Exists() || o.value.Type == gjson.Null
}

// Keys returns the field names in document order. Arrays are keyed by index.
func (o *Object) Keys() []string {
	o.index()
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Len returns the number of fields (or array elements).
func (o *Object) Len() int {
	o.index()
	return len(o.keys)
}

// Field returns the raw value of a direct field.
func (o *Object) Field(name string) (gjson.Result, bool) {
	o.index()
	v, ok := o.fields[name]
	return v, ok
}

// Has reports whether a direct field exists and is not null.
func (o *Object) Has(name string) bool {
	v, ok := o.Field(name)
	return ok && v.Type != gjson.Null
}

// StringField returns a direct string field, or "" when missing.
func (o *Object) StringField(name string) string {
	v, _ := o.Field(name)
	return v.String()
}

// Child returns the direct field as an Object. The returned Object is shared by all callers.
func (o *Object) Child(name string) (*Object, bool) {
	v, ok := o.Field(name)
	if !ok {
		return nil, false
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if child, ok := o.children[name]; ok {
		return child, true
	}
	if o.children == nil {
		o.children = make(map[string]*Object)
	}
	child := NewObject(v)
	o.children[name] = child
	return child, true
}

// Array returns the elements of an array value, or nil for anything else.
func (o *Object) Array() []*Object {
	if !o.value.IsArray() {
		return nil
	}
	o.index()
	out := make([]*Object, 0, len(o.keys))
	for _, k := range o.keys {
		child, _ := o.Child(k)
		out = append(out, child)
	}
	return out
}

// Decode unmarshals the object into v after stripping generated property suffixes.
func (o *Object) Decode(v any) error {
	return json.Unmarshal(CleanKeys([]byte(o.value.Raw)), v)
}

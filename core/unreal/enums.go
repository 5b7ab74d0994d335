package unreal

import (
	"context"
	"fmt"
)

// EnumResolver resolves enum values to their display names.
type EnumResolver struct {
	objects ObjectGetter
	strings *StringResolver
}

// NewEnumResolver creates an enum resolver.
func NewEnumResolver(objects ObjectGetter, strings *StringResolver) *EnumResolver {
	return &EnumResolver{objects: objects, strings: strings}
}

// ResolveEnumDisplayName returns the display name of an "EnumName::Member" value.
//
// The enum's DisplayNameMap is a list of single-entry mappings; the first mapping
// declaring the member wins. The map is scanned on every call, only the file is cached.
func (r *EnumResolver) ResolveEnumDisplayName(ctx context.Context, value string) (string, error) {
	ref, err := ParseEnumReference(value)
	if err != nil {
		return "", err
	}

	enumObject, err := r.objects.Get(ctx, ref.Identifier())
	if err != nil {
		return "", err
	}

	var handle *StringHandle
	for _, entry := range displayNameMap(enumObject) {
		if !entry.Has(ref.Member) {
			continue
		}
		raw, _ := entry.Field(ref.Member)
		h := ClassifyStringHandle(raw)
		handle = &h
		break
	}
	if handle == nil {
		return "", fmt.Errorf("%w: %s", ErrEnumEntryNotFound, value)
	}

	displayName, ok, err := r.strings.ResolveString(ctx, *handle)
	if err != nil {
		return "", fmt.Errorf("failed to resolve display name of %s: %w", value, err)
	}
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrEnumDisplayNameNotFound, value)
	}
	return displayName, nil
}

// displayNameMap returns the DisplayNameMap entries, which exports place either under
// Properties or at the top level of the enum object.
func displayNameMap(enumObject *Object) []*Object {
	if props, ok := enumObject.Child("Properties"); ok {
		if m, ok := props.Child("DisplayNameMap"); ok {
			return m.Array()
		}
	}
	if m, ok := enumObject.Child("DisplayNameMap"); ok {
		return m.Array()
	}
	return nil
}

package unreal

import "errors"

var (
	// ErrMalformedPath is returned when an object path or string table id does not match
	// the expected "/Game/<path>.<Key>" layout.
	ErrMalformedPath = errors.New("malformed object path")

	// ErrObjectNotFound is returned when a loaded file has no entry for the requested key.
	ErrObjectNotFound = errors.New("object not found")

	// ErrMalformedEnumReference is returned for enum values not shaped as "Enum::Member".
	ErrMalformedEnumReference = errors.New("malformed enum reference")

	// ErrEnumEntryNotFound is returned when no DisplayNameMap entry declares the member.
	ErrEnumEntryNotFound = errors.New("enum display name entry not found")

	// ErrEnumDisplayNameNotFound is returned when the member's handle resolves to nothing.
	ErrEnumDisplayNameNotFound = errors.New("enum display name not found")

	// ErrStringTableMismatch is returned when a string table file holds a different table
	// than the one its id names.
	ErrStringTableMismatch = errors.New("string table name mismatch")
)

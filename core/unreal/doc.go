// Package unreal resolves the indirect references found in serialized engine data.
//
// Engine data tables never embed the values they point at. A row refers to another row
// through a DataTableRowHandle, a display text is a StringHandle pointing into a string
// table, and an enum property stores "EnumName::Member" instead of a label. This package
// turns those handles into concrete values, reading the JSON dump produced by the
// extraction step.
//
// # Components
//
//   - ObjectStore: loads JSON files addressed by object paths ("/Game/<path>.<Key>") and
//     caches every parsed file for the lifetime of the store. Concurrent lookups of the
//     same file share a single read.
//   - StringResolver: resolves StringHandle values (table-backed, localized, invariant).
//   - EnumResolver: resolves "EnumName::Member" references to their display names.
//   - RowStore: resolves data-table row handles and lists whole tables in source order.
//
// # Errors
//
// Failures are reported with sentinel errors (ErrMalformedPath, ErrObjectNotFound, ...)
// wrapped with the offending handle. Callers test them with errors.Is and decide whether a
// failure aborts a single record or the whole run. Absent values that the data explicitly
// allows, such as the "None" row name, are returned as absent and never as errors.
//
// # Usage
//
//	store := unreal.NewObjectStore(afero.NewOsFs(), cfg.Export.InputPath, logger)
//	stringsResolver := unreal.NewStringResolver(store)
//	enums := unreal.NewEnumResolver(store, stringsResolver)
//	rows := unreal.NewRowStore(store)
//
//	label, err := enums.ResolveEnumDisplayName(ctx, "E_InventorySlotType::NewEnumerator3")
package unreal

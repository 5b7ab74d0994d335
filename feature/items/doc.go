// Package items builds human-readable item records from the global item table.
//
// RowParser turns a single raw row into an Item, resolving localized strings, enum
// display names and salvage rows on the way. Parser loads the whole table, derives the
// raw/cooked/burned state triples shared by cookable items, and parses the rows
// concurrently while keeping the table order. A row that fails to parse is logged
// and left out; it never aborts the batch.
package items

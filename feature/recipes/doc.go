// Package recipes turns raw crafting recipe rows into concrete, wiki-ready recipes.
//
// Some recipe slots do not name a single item but a substitute group: a row of the
// substitutes table listing interchangeable items ("any cloth", "any battery"). The
// Expander replaces every such slot by each of its alternatives and emits one recipe
// variant per combination, in a stable order.
//
// # Components
//
//   - Expander: cartesian expansion of substitute-group slots.
//   - RowParser: builds Recipe records from a raw row (category display name, variants).
//   - Parser: parses the whole recipes table once per run, skipping recipes that fail.
//
// # Ordering
//
// Variants are produced by folding over the slots in their original order; the first
// slot varies slowest. Given the same input the output is byte-for-byte reproducible.
package recipes

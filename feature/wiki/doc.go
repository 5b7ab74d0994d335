// Package wiki shapes parsed items and recipes into the documents the game wiki
// consumes and exposes them over HTTP.
//
// The Service parses items and recipes once and builds a Catalog from them. The
// Catalog applies the wiki's name overrides and ignored-item list and maps row names
// to wiki names. Exporters render the catalog into Items.json, Recipes.json, the
// inventory icon set and the raw string tables, writing through an output.Sink.
//
// The override tables are built in. A YAML file may replace any of them:
//
//	ignoredItems:
//	  - tutorialheater
//	nameOverrides:
//	  solder: Solder (Material)
//	allowedLiquids: [Water, Soup]
//
// Sections missing from the file keep their built-in value.
package wiki

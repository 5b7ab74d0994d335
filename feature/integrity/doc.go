// Package integrity provides health checks for the exporter's inputs and outputs.
//
// Unlike the 'wiki' package which produces documents, this package validates
// the data an export reads and the state the output targets are left in.
//
// # Checks Provided
//
//   - Input: Verifies the input dump holds the item and recipe data tables.
//   - Schema: Validates that the exported_files table matches the exported file model (columns, types).
//   - Outputs: Compares the bucket and database targets with the output directory (delegates to the reconcile engine).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/input : Runs the input check.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/outputs : Runs the outputs check.
package integrity

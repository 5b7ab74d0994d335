package checks

import (
	"errors"
	"fmt"
	"strings"

	"data-exporter/core/database"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// SchemaReport strictly types the result of a schema integrity check.
type SchemaReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Errors         []string `json:"errors"`
}

// columnTypes lists substrings a database column type may contain for each GORM data type.
var columnTypes = map[schema.DataType][]string{
	schema.Bool:   {"bool", "tinyint"},
	schema.Int:    {"int"},
	schema.Uint:   {"int"},
	schema.Float:  {"float", "double", "decimal", "real", "numeric"},
	schema.String: {"char", "text"},
	schema.Time:   {"date", "time"},
	schema.Bytes:  {"blob", "binary"},
}

// CheckSchema verifies the database table of a GORM model defines every mapped column
// with a compatible type. The model is the source of truth.
func CheckSchema(db *gorm.DB, model any) (*SchemaReport, error) {
	if db == nil {
		return nil, errors.New("database connection is nil")
	}

	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return nil, fmt.Errorf("failed to parse model: %w", err)
	}

	report := &SchemaReport{
		Table:          stmt.Schema.Table,
		Matched:        true,
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Errors:         []string{},
	}

	actualCols, err := database.GetTableColumns(db, report.Table)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", report.Table, err))
		report.Matched = false
		return report, nil
	}

	actual := make(map[string]database.ColumnInfo, len(actualCols))
	for _, col := range actualCols {
		actual[col.Field] = col
	}

	for _, field := range stmt.Schema.Fields {
		if field.DBName == "" {
			continue
		}

		col, ok := actual[strings.ToLower(field.DBName)]
		if !ok {
			report.MissingColumns = append(report.MissingColumns, field.DBName)
			report.Matched = false
			continue
		}

		want, known := columnTypes[field.DataType]
		if !known || containsAny(col.Type, want) {
			continue
		}
		report.TypeMismatches = append(report.TypeMismatches, fmt.Sprintf("%s: expected %s, got %s", field.DBName, field.DataType, col.Type))
		report.Matched = false
	}

	return report, nil
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Package database handles database connections and schema inspection.
//
// It wraps GORM to open MySQL or SQLite connections from the application's
// configuration. The database output target stores exported documents through it.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the live schema of a table so callers can
// refuse to write into a table that lacks the columns they need.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "exported_files", "path", "content")
package database

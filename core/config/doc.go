// Package config provides configuration management for the data exporter.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Export: input directory of the extracted game data and parse concurrency
//   - Output: export targets (file, bucket, database) and their locations
//   - Wiki: override tables file, exported string tables, icon naming
//   - Server: HTTP server settings (port, API key)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Database: MySQL or SQLite connection details
//   - Log: Logging level and format
//
// Nested keys map to upper-case environment variables joined by underscores, so
// export.input_path is read from EXPORT_INPUT_PATH and output.targets from
// OUTPUT_TARGETS (a comma separated list).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Export.InputPath)
package config

package output

import "slices"

const (
	TargetFile     = "file"
	TargetBucket   = "bucket"
	TargetDatabase = "database"
)

// Config holds configuration for export targets.
type Config struct {
	// Directory is the output directory of the file target.
	Directory string `mapstructure:"directory" default:"data/output"`
	// Targets lists the enabled targets (file, bucket, database).
	Targets []string `mapstructure:"targets" default:"file"`
	// Prefix is prepended to object names in the bucket target.
	Prefix string `mapstructure:"prefix" default:""`
}

// Has reports whether a target is enabled.
func (c Config) Has(target string) bool {
	return slices.Contains(c.Targets, target)
}

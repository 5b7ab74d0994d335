package wiki

// Config holds configuration for the wiki exporters.
type Config struct {
	// OverridesFile is an optional YAML file replacing the built-in override tables.
	OverridesFile string `mapstructure:"overrides_file" default:""`
	// StringTables lists the string table IDs exported by the strings exporter.
	StringTables []string `mapstructure:"string_tables" default:""`
	// IconPrefix is prepended to every exported icon filename.
	IconPrefix string `mapstructure:"icon_prefix" default:"Item Icon - "`
	// InvertIconAlpha negates the alpha channel of exported icons.
	InvertIconAlpha bool `mapstructure:"invert_icon_alpha" default:"true"`
}

package unreal

// Config holds configuration for reading the extracted engine data.
type Config struct {
	// InputPath is the directory holding the JSON dump of the game content ("/Game" root).
	InputPath string `mapstructure:"input_path" default:"data/input"`
	// Workers bounds how many rows are parsed concurrently.
	Workers int `mapstructure:"workers" default:"8"`
}

// Package config provides configuration management for bggmech.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Input: dir, file_template, max_game
//   - Output: path, format, table
//   - Log: level, format, destination
//
// Runtime-only fields:
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use BGGMECH_ prefix with underscores for nesting:
//
//	BGGMECH_INPUT_DIR=./data
//	BGGMECH_INPUT_MAX_GAME=20000
//	BGGMECH_OUTPUT_PATH=./all_data.csv
//	BGGMECH_LOG_LEVEL=debug
package config

// Config represents the complete bggmech configuration.
type Config struct {
	// Input describes where per-game XML records are found.
	Input InputConfig `mapstructure:"input" yaml:"input"`

	// Output describes where the one-hot table is written.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// InputConfig contains settings for locating game records.
type InputConfig struct {
	// Dir is the directory with one XML file per game.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// FileTemplate is a fmt template with exactly one %d verb that turns
	// a game ID into a file name, for example "game%d.xml".
	FileTemplate string `mapstructure:"file_template" yaml:"file_template"`

	// MaxGame is the exclusive upper bound of game IDs to scan.
	// IDs from 0 to MaxGame-1 are processed in increasing order.
	MaxGame int `mapstructure:"max_game" yaml:"max_game"`
}

// OutputConfig contains settings for the generated table.
type OutputConfig struct {
	// Path of the output file. Existing file is overwritten.
	Path string `mapstructure:"path" yaml:"path"`

	// Format is either "csv" or "sqlite".
	Format string `mapstructure:"format" yaml:"format"`

	// Table is the name of the table created in "sqlite" format.
	// Ignored for "csv".
	Table string `mapstructure:"table" yaml:"table"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Input: InputConfig{
			Dir:          "data",
			FileTemplate: "game%d.xml",
			MaxGame:      10_000,
		},
		Output: OutputConfig{
			Path:   "all_data.csv",
			Format: "csv",
			Table:  "games",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}

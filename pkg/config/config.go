// Package config provides configuration management for contentsync.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
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
// # Environment Variables
//
// Use CONTENTSYNC_ prefix with underscores for nesting:
//
//	CONTENTSYNC_SYNC_OUTPUT_DIR=content
//	CONTENTSYNC_SYNC_CHECK_URLS=true
//	CONTENTSYNC_LOG_LEVEL=info
package config

// Config represents the complete contentsync configuration.
type Config struct {
	// Sync contains settings for fetching, validating and writing content.
	Sync SyncConfig `mapstructure:"sync" yaml:"sync"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// SyncConfig contains settings for the sync and validate commands.
type SyncConfig struct {
	// OutputDir is the directory where the generated JSON document is
	// written. Relative paths resolve against the working directory.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// ResourcesDir is an optional second destination for the document,
	// the copy bundled directly with the app. Empty disables the copy.
	ResourcesDir string `mapstructure:"resources_dir" yaml:"resources_dir"`

	// DocumentName is the file name of the generated JSON document.
	DocumentName string `mapstructure:"document_name" yaml:"document_name"`

	// CheckURLs enables the reachability probe for remote card images.
	// The probe only runs when validation found no other problems.
	CheckURLs bool `mapstructure:"check_urls" yaml:"check_urls"`

	// URLTimeoutSec is the per-URL timeout of the reachability probe.
	URLTimeoutSec int `mapstructure:"url_timeout_sec" yaml:"url_timeout_sec"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
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
		Sync: SyncConfig{
			OutputDir:     "content",
			ResourcesDir:  "Resources",
			DocumentName:  "unlock_egypt_content.json",
			CheckURLs:     false,
			URLTimeoutSec: 5,
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

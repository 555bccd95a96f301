package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Search SearchConfig `json:"search" mapstructure:"search"`
	Report ReportConfig `json:"report" mapstructure:"report"`
}

type SearchConfig struct {
	// Backend selects the text-search implementation used for the primary
	// per-option Makefile scan: "git" (git grep over tracked files) or
	// "walk" (plain filesystem walk).
	Backend string `json:"backend" mapstructure:"backend"` // Default: "git"

	// Timeouts, in seconds
	GrepTimeout int `json:"grep_timeout" mapstructure:"grep_timeout"` // Default: 15 (targeted per-option search)
	WalkTimeout int `json:"walk_timeout" mapstructure:"walk_timeout"` // Default: 30 (filesystem walks, dry-run probe)

	// Command Execution
	MaxCommandOutputSize int64 `json:"max_command_output_size" mapstructure:"max_command_output_size"` // Default: 10 * 1024 * 1024 (10MB)
	GracefulShutdownMs   int   `json:"graceful_shutdown_ms" mapstructure:"graceful_shutdown_ms"`       // Default: 2000

	// File-name conventions of the scanned tree
	MakefileName  string `json:"makefile_name" mapstructure:"makefile_name"`   // Default: "makefile" (case-insensitive substring of base name)
	KconfigPrefix string `json:"kconfig_prefix" mapstructure:"kconfig_prefix"` // Default: "Kconfig"
}

type ReportConfig struct {
	TopOptions    int    `json:"top_options" mapstructure:"top_options"`       // Default: 10
	DefaultOutput string `json:"default_output" mapstructure:"default_output"` // Default: "barebox_config_tracker.csv"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Backend:              "git",
			GrepTimeout:          15,
			WalkTimeout:          30,
			MaxCommandOutputSize: 10 * 1024 * 1024,
			GracefulShutdownMs:   2000,
			MakefileName:         "makefile",
			KconfigPrefix:        "Kconfig",
		},
		Report: ReportConfig{
			TopOptions:    10,
			DefaultOutput: "barebox_config_tracker.csv",
		},
	}
}

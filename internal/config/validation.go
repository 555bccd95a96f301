package config

import (
	"fmt"
	"strings"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	switch c.Search.Backend {
	case "git", "walk":
	default:
		errs = append(errs, `search.backend must be "git" or "walk"`)
	}
	if c.Search.GrepTimeout < 1 {
		errs = append(errs, "search.grep_timeout must be >= 1")
	}
	if c.Search.WalkTimeout < 1 {
		errs = append(errs, "search.walk_timeout must be >= 1")
	}
	if c.Search.MaxCommandOutputSize < 1 {
		errs = append(errs, "search.max_command_output_size must be >= 1")
	}
	if c.Search.GracefulShutdownMs < 0 {
		errs = append(errs, "search.graceful_shutdown_ms must be >= 0")
	}
	if c.Search.MakefileName == "" {
		errs = append(errs, "search.makefile_name must not be empty")
	}
	if c.Search.KconfigPrefix == "" {
		errs = append(errs, "search.kconfig_prefix must not be empty")
	}

	if c.Report.TopOptions < 0 {
		errs = append(errs, "report.top_options must be >= 0")
	}
	if c.Report.DefaultOutput == "" {
		errs = append(errs, "report.default_output must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}

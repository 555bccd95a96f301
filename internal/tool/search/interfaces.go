package search

import (
	"context"
	"time"

	"github.com/Cyclone1070/cfgtrack/internal/tool/executor"
)

// Searcher finds lines matching a regular expression under a source tree
// root. Implementations return tree-relative paths and must treat "no
// matches" as a successful empty result, not an error.
type Searcher interface {
	Search(ctx context.Context, root, pattern string) ([]Match, error)
}

// commandExecutor defines the interface for executing search commands.
type commandExecutor interface {
	Run(ctx context.Context, command []string, dir string, timeout time.Duration) (*executor.Result, error)
}

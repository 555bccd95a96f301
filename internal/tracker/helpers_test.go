package tracker

import (
	"context"
	"time"

	"github.com/Cyclone1070/cfgtrack/internal/config"
	"github.com/Cyclone1070/cfgtrack/internal/tool/executor"
	"github.com/Cyclone1070/cfgtrack/internal/tool/search"
)

// fakeSearcher returns canned matches per pattern and records the patterns
// it was asked for.
type fakeSearcher struct {
	matches  map[string][]search.Match
	err      error
	patterns []string
}

func (f *fakeSearcher) Search(ctx context.Context, root, pattern string) ([]search.Match, error) {
	f.patterns = append(f.patterns, pattern)
	if f.err != nil {
		return nil, f.err
	}
	return f.matches[pattern], nil
}

// fakeExecutor returns a canned result and records the invocation.
type fakeExecutor struct {
	result *executor.Result
	err    error

	gotCommand []string
	gotDir     string
	gotTimeout time.Duration
}

func (f *fakeExecutor) Run(ctx context.Context, command []string, dir string, timeout time.Duration) (*executor.Result, error) {
	f.gotCommand = command
	f.gotDir = dir
	f.gotTimeout = timeout
	return f.result, f.err
}

// newTestTracker builds a Tracker wired to fakes, bypassing New so tests
// never touch git or the real filesystem.
func newTestTracker(root string, primary search.Searcher, makefiles search.Searcher, kconfigs search.Searcher, exec commandExecutor) *Tracker {
	return &Tracker{
		root:        root,
		cfg:         config.DefaultConfig(),
		search:      primary,
		makefiles:   makefiles,
		kconfigs:    kconfigs,
		exec:        exec,
		walkTimeout: 30 * time.Second,
	}
}

// Package tracker implements the configuration-to-artifact association
// engine: it parses a Kconfig-style configuration snapshot and discovers, for
// each CONFIG option, the object files conditionally built under it by
// scanning Makefiles and Kconfig files through pluggable text-search backends.
package tracker

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/Cyclone1070/cfgtrack/internal/config"
	"github.com/Cyclone1070/cfgtrack/internal/tool/executor"
	"github.com/Cyclone1070/cfgtrack/internal/tool/gitutil"
	"github.com/Cyclone1070/cfgtrack/internal/tool/search"
)

// commandExecutor defines the interface for running the build system.
type commandExecutor interface {
	Run(ctx context.Context, command []string, dir string, timeout time.Duration) (*executor.Result, error)
}

// Tracker scans a single source tree. The tree root is passed explicitly to
// every external invocation; the process working directory is never changed.
type Tracker struct {
	root string
	cfg  *config.Config

	search    search.Searcher // primary per-option signal
	makefiles search.Searcher // walk over build-description files (cross-check)
	kconfigs  search.Searcher // walk over option-declaration files
	exec      commandExecutor

	walkTimeout time.Duration
}

// New creates a Tracker for the source tree at root. The primary search
// backend is selected by cfg.Search.Backend.
func New(root string, cfg *config.Config) (*Tracker, error) {
	ignore, err := gitutil.NewIgnoreMatcher(root)
	if err != nil {
		return nil, err
	}

	exec := executor.NewOSCommandExecutor(cfg)
	grepTimeout := time.Duration(cfg.Search.GrepTimeout) * time.Second
	walkTimeout := time.Duration(cfg.Search.WalkTimeout) * time.Second

	makefileFilter := func(base string) bool {
		return strings.Contains(strings.ToLower(base), cfg.Search.MakefileName)
	}
	kconfigFilter := func(base string) bool {
		return strings.HasPrefix(base, cfg.Search.KconfigPrefix)
	}

	var primary search.Searcher
	switch cfg.Search.Backend {
	case "walk":
		primary = search.NewWalkSearcher(walkTimeout, nil, ignore)
	default:
		primary = search.NewGitGrepSearcher(exec, grepTimeout)
	}

	return &Tracker{
		root:        root,
		cfg:         cfg,
		search:      primary,
		makefiles:   search.NewWalkSearcher(walkTimeout, makefileFilter, ignore),
		kconfigs:    search.NewWalkSearcher(grepTimeout, kconfigFilter, ignore),
		exec:        exec,
		walkTimeout: walkTimeout,
	}, nil
}

// Root returns the source tree root the tracker scans.
func (t *Tracker) Root() string {
	return t.root
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

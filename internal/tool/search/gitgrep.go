package search

import (
	"context"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// GitGrepSearcher searches version-controlled files by running git grep in
// the source tree root. Only files tracked by git are scanned, which filters
// out build output and stale editor droppings for free.
type GitGrepSearcher struct {
	commandExecutor commandExecutor
	timeout         time.Duration
}

// NewGitGrepSearcher creates a GitGrepSearcher with an injected executor.
func NewGitGrepSearcher(commandExecutor commandExecutor, timeout time.Duration) *GitGrepSearcher {
	if commandExecutor == nil {
		panic("commandExecutor is required")
	}
	return &GitGrepSearcher{commandExecutor: commandExecutor, timeout: timeout}
}

// Search runs `git grep -n -E pattern` in root and parses the
// file:line:content output. git grep exiting with status 1 means no line
// matched; that is a successful empty result.
func (s *GitGrepSearcher) Search(ctx context.Context, root, pattern string) ([]Match, error) {
	cmd := []string{"git", "grep", "-n", "-E", pattern}

	res, err := s.commandExecutor.Run(ctx, cmd, root, s.timeout)
	if err != nil {
		if res == nil {
			return nil, &CommandStartError{Cmd: "git", Cause: err}
		}
		if res.ExitCode == 1 && strings.TrimSpace(res.Stderr) == "" {
			return nil, nil
		}
		if res.ExitCode > 1 {
			return nil, &CommandFailedError{Cmd: "git grep", ExitCode: res.ExitCode, Stderr: strings.TrimSpace(res.Stderr)}
		}
		// timeout or context cancellation
		return nil, err
	}

	matches := parseGrepOutput(res.Stdout)

	// Sort results for consistency (by file, then line number)
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].File != matches[j].File {
			return matches[i].File < matches[j].File
		}
		return matches[i].Line < matches[j].Line
	})

	return matches, nil
}

// parseGrepOutput splits grep-style "file:line:content" output into matches.
// Malformed lines are skipped.
func parseGrepOutput(out string) []Match {
	var matches []Match
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ":", 3)
		if len(parts) < 3 {
			continue
		}
		lineNum, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		matches = append(matches, Match{
			File:    filepath.ToSlash(parts[0]),
			Line:    lineNum,
			Content: parts[2],
		})
	}
	return matches
}

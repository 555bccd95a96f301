package search

import (
	"bufio"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/Cyclone1070/cfgtrack/internal/tool/gitutil"
)

// maxScanTokenSize bounds a single scanned line (generated files can carry
// very long lines).
const maxScanTokenSize = 1024 * 1024

// WalkSearcher searches files by walking the tree directly, without any
// version-control metadata. It is slower than git grep over a large tree but
// works in an untracked checkout. The `.git` directory is always skipped and
// gitignored paths are excluded when an IgnoreMatcher is supplied.
type WalkSearcher struct {
	timeout    time.Duration
	nameFilter func(base string) bool
	ignore     *gitutil.IgnoreMatcher
}

// NewWalkSearcher creates a WalkSearcher. nameFilter restricts which files
// are opened (nil means every file); ignore may be nil.
func NewWalkSearcher(timeout time.Duration, nameFilter func(base string) bool, ignore *gitutil.IgnoreMatcher) *WalkSearcher {
	return &WalkSearcher{timeout: timeout, nameFilter: nameFilter, ignore: ignore}
}

// Search walks root and returns every line matching pattern. The whole walk
// is bounded by the searcher's timeout.
func (s *WalkSearcher) Search(ctx context.Context, root, pattern string) ([]Match, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &BadPatternError{Pattern: pattern, Cause: err}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var matches []Match
	walkErr := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			if rel != "." && s.ignore.ShouldIgnore(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if s.ignore.ShouldIgnore(rel, false) {
			return nil
		}
		if s.nameFilter != nil && !s.nameFilter(d.Name()) {
			return nil
		}

		fileMatches, scanErr := scanFile(p, rel, re)
		if scanErr != nil {
			return nil // skip files that cannot be read
		}
		matches = append(matches, fileMatches...)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return matches, nil
}

// scanFile returns every line of the file at path matching re, labelled with
// the tree-relative path rel.
func scanFile(path, rel string, re *regexp.Regexp) ([]Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var matches []Match
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxScanTokenSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if re.MatchString(line) {
			matches = append(matches, Match{File: rel, Line: lineNum, Content: line})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

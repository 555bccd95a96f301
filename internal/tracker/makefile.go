package tracker

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
)

var (
	// objPathRe extracts object-file references exactly as written in a
	// Makefile line, directory components included.
	objPathRe = regexp.MustCompile(`[A-Za-z0-9_/-]+\.o`)

	// objNameRe extracts bare object names, used when resolving the
	// corresponding source file next to the Makefile.
	objNameRe = regexp.MustCompile(`([A-Za-z0-9_-]+)\.o`)
)

// MakefileObjects returns the object files conditionally built under option,
// as referenced in Makefiles via the obj-$(CONFIG_X) idiom. Object paths are
// kept in the directory-relative form the Makefile declares, prefixed with
// the Makefile's own directory unless it sits at the tree root.
//
// Matching is heuristic: a regex over unstructured Makefile text, not a make
// parser. A failed or timed-out search degrades to an empty result.
func (t *Tracker) MakefileObjects(ctx context.Context, option string) []string {
	pattern := "obj-.*" + option

	matches, err := t.search.Search(ctx, t.root, pattern)
	if err != nil {
		log.Warnf("Makefile search failed for %s: %v", option, err)
		return nil
	}

	set := make(map[string]struct{})
	for _, m := range matches {
		if !t.isMakefile(m.File) {
			continue
		}
		dir := path.Dir(m.File)
		for _, obj := range objPathRe.FindAllString(m.Content, -1) {
			if dir == "." {
				set[obj] = struct{}{}
			} else {
				set[path.Join(dir, obj)] = struct{}{}
			}
		}
	}

	return sortedKeys(set)
}

// CrossCheckObjects is the slower, stricter fallback to MakefileObjects: it
// walks every Makefile in the tree itself instead of asking git, records the
// Makefiles referencing option and every referenced object whose source file
// actually exists next to the Makefile. It is not part of the default
// aggregation; it exists to cross-check the primary signal.
func (t *Tracker) CrossCheckObjects(ctx context.Context, option string) []string {
	matches, err := t.makefiles.Search(ctx, t.root, regexp.QuoteMeta(option))
	if err != nil {
		log.Warnf("Makefile cross-check failed for %s: %v", option, err)
		return nil
	}

	set := make(map[string]struct{})
	for _, m := range matches {
		set[m.File] = struct{}{}

		dir := path.Dir(m.File)
		for _, sub := range objNameRe.FindAllStringSubmatch(m.Content, -1) {
			src := sub[1] + ".c"
			if dir != "." {
				src = path.Join(dir, src)
			}
			if _, err := os.Stat(filepath.Join(t.root, filepath.FromSlash(src))); err == nil {
				set[src] = struct{}{}
			}
		}
	}

	return sortedKeys(set)
}

func (t *Tracker) isMakefile(file string) bool {
	return strings.Contains(strings.ToLower(path.Base(file)), t.cfg.Search.MakefileName)
}

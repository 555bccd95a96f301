package tracker

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/Cyclone1070/cfgtrack/internal/tool/executor"
	"github.com/charmbracelet/log"
)

// sourceRefRe extracts source-unit references from build command lines.
var sourceRefRe = regexp.MustCompile(`[A-Za-z0-9_/-]+\.c`)

// ProbeBuild runs the build system in dry-run mode ("make -n") and collects
// every source unit the build would touch, keyed by source file with an
// initially empty option list. The inventory is option-independent and
// advisory: a coarse sanity cross-check against the per-option Makefile
// scan, never a primary signal. Any failure degrades to an empty inventory.
func (t *Tracker) ProbeBuild(ctx context.Context) map[string][]string {
	units := make(map[string][]string)

	res, err := t.exec.Run(ctx, []string{"make", "-n"}, t.root, t.walkTimeout)
	if err != nil {
		if errors.Is(err, executor.ErrTimeout) {
			log.Warnf("build dry-run timed out")
		} else {
			log.Warnf("build dry-run failed: %v", err)
		}
		return units
	}
	if res.ExitCode != 0 {
		log.Warnf("build dry-run exited with code %d", res.ExitCode)
		return units
	}

	for _, line := range strings.Split(res.Stdout, "\n") {
		if !strings.Contains(line, ".c") && !strings.Contains(line, ".o") {
			continue
		}
		for _, src := range sourceRefRe.FindAllString(line, -1) {
			if _, ok := units[src]; !ok {
				units[src] = []string{}
			}
		}
	}

	return units
}

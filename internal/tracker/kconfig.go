package tracker

import (
	"context"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
)

// KconfigReferences returns the Kconfig files declaring, selecting or
// depending on option. Four reference idioms are searched independently and
// the results unioned:
//
//	config <base>
//	select <base>
//	depends on CONFIG_<base>
//	CONFIG_<base>
//
// where <base> is the option name without its CONFIG_ prefix. A failed
// search for one idiom skips that idiom only.
func (t *Tracker) KconfigReferences(ctx context.Context, option string) []string {
	base := strings.TrimPrefix(option, OptionPrefix)

	patterns := []string{
		"config " + base,
		"select " + base,
		"depends on " + option,
		option,
	}

	set := make(map[string]struct{})
	for _, p := range patterns {
		matches, err := t.kconfigs.Search(ctx, t.root, regexp.QuoteMeta(p))
		if err != nil {
			log.Warnf("Kconfig search failed for %s (pattern %q): %v", option, p, err)
			continue
		}
		for _, m := range matches {
			if m.File == ".git" || strings.HasPrefix(m.File, ".git/") {
				continue
			}
			set[m.File] = struct{}{}
		}
	}

	return sortedKeys(set)
}

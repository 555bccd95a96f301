package tracker

import (
	"context"
	"sort"

	"github.com/charmbracelet/log"
)

// Record associates one configuration option with the object files it
// conditionally controls. Tracked is always false at creation; it is a
// placeholder column edited by hand downstream.
type Record struct {
	Option    string
	Value     string
	Artifacts []string
	Tracked   bool
}

// Summary describes an aggregation result for reporting.
type Summary struct {
	TotalOptions     int
	WithArtifacts    int
	WithoutArtifacts int
	// Top holds the options with the most artifacts, descending, ties in
	// snapshot order. Options without artifacts are not listed.
	Top []Record
}

// Analyze scans every option in the snapshot sequentially and returns one
// Record per option, keyed by option name. A per-option scan failure leaves
// that option with an empty artifact set and never aborts the run; only
// context cancellation does.
func (t *Tracker) Analyze(ctx context.Context, snap *Snapshot) (map[string]Record, error) {
	records := make(map[string]Record, snap.Len())
	total := snap.Len()

	for i, option := range snap.Options() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		log.Infof("[%d/%d] processing %s", i+1, total, option)

		artifacts := t.MakefileObjects(ctx, option)
		value, _ := snap.Value(option)

		records[option] = Record{
			Option:    option,
			Value:     value,
			Artifacts: artifacts,
		}

		log.Debugf("found %d object files for %s", len(artifacts), option)
	}

	return records, nil
}

// Summarize derives reporting statistics from an aggregation result. topN
// bounds the Top list; snapshot order breaks ties between options with the
// same artifact count.
func Summarize(snap *Snapshot, records map[string]Record, topN int) Summary {
	s := Summary{TotalOptions: len(records)}

	ordered := make([]Record, 0, len(records))
	for _, option := range snap.Options() {
		rec, ok := records[option]
		if !ok {
			continue
		}
		if len(rec.Artifacts) > 0 {
			s.WithArtifacts++
		} else {
			s.WithoutArtifacts++
		}
		ordered = append(ordered, rec)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Artifacts) > len(ordered[j].Artifacts)
	})

	for _, rec := range ordered {
		if len(s.Top) >= topN || len(rec.Artifacts) == 0 {
			break
		}
		s.Top = append(s.Top, rec)
	}

	return s
}

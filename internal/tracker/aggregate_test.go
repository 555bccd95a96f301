package tracker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Cyclone1070/cfgtrack/internal/tool/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSnapshot(t *testing.T, content string) *Snapshot {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	snap, err := ParseSnapshotFile(path)
	require.NoError(t, err)
	return snap
}

func TestAnalyze_OneRecordPerOption(t *testing.T) {
	snap := parseSnapshot(t, "CONFIG_A=y\nCONFIG_B=115200\nCONFIG_C=y\n")

	fake := &fakeSearcher{matches: map[string][]search.Match{
		"obj-.*CONFIG_A": {
			{File: "Makefile", Line: 1, Content: "obj-$(CONFIG_A) += a.o"},
		},
	}}
	tr := newTestTracker("/src", fake, nil, nil, nil)

	records, err := tr.Analyze(context.Background(), snap)
	require.NoError(t, err)

	// exactly one record per snapshot option, none dropped, none invented
	assert.Len(t, records, snap.Len())
	for _, option := range snap.Options() {
		assert.Contains(t, records, option)
	}

	assert.Equal(t, []string{"a.o"}, records["CONFIG_A"].Artifacts)
	assert.Empty(t, records["CONFIG_B"].Artifacts)
	assert.Equal(t, "115200", records["CONFIG_B"].Value)
	assert.False(t, records["CONFIG_A"].Tracked)
}

func TestAnalyze_FailedOptionDoesNotAffectOthers(t *testing.T) {
	snap := parseSnapshot(t, "CONFIG_A=y\nCONFIG_B=y\n")

	// every search errors: both options still get records
	fake := &fakeSearcher{err: errors.New("git grep timed out")}
	tr := newTestTracker("/src", fake, nil, nil, nil)

	records, err := tr.Analyze(context.Background(), snap)
	require.NoError(t, err)

	assert.Len(t, records, 2)
	assert.Empty(t, records["CONFIG_A"].Artifacts)
	assert.Empty(t, records["CONFIG_B"].Artifacts)
}

func TestAnalyze_CancelledContextAborts(t *testing.T) {
	snap := parseSnapshot(t, "CONFIG_A=y\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := newTestTracker("/src", &fakeSearcher{}, nil, nil, nil)

	_, err := tr.Analyze(ctx, snap)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize_CountsAndTopOrder(t *testing.T) {
	snap := parseSnapshot(t, "CONFIG_A=y\nCONFIG_B=y\nCONFIG_C=y\nCONFIG_D=y\n")

	records := map[string]Record{
		"CONFIG_A": {Option: "CONFIG_A", Artifacts: []string{"a.o"}},
		"CONFIG_B": {Option: "CONFIG_B", Artifacts: []string{"b1.o", "b2.o"}},
		"CONFIG_C": {Option: "CONFIG_C", Artifacts: []string{"c.o"}},
		"CONFIG_D": {Option: "CONFIG_D"},
	}

	s := Summarize(snap, records, 10)

	assert.Equal(t, 4, s.TotalOptions)
	assert.Equal(t, 3, s.WithArtifacts)
	assert.Equal(t, 1, s.WithoutArtifacts)

	// descending by artifact count; A before C (snapshot order breaks the
	// tie); D has no artifacts and is excluded
	top := make([]string, len(s.Top))
	for i, rec := range s.Top {
		top[i] = rec.Option
	}
	assert.Equal(t, []string{"CONFIG_B", "CONFIG_A", "CONFIG_C"}, top)
}

func TestSummarize_TopNBounds(t *testing.T) {
	snap := parseSnapshot(t, "CONFIG_A=y\nCONFIG_B=y\nCONFIG_C=y\n")

	records := map[string]Record{
		"CONFIG_A": {Option: "CONFIG_A", Artifacts: []string{"a.o"}},
		"CONFIG_B": {Option: "CONFIG_B", Artifacts: []string{"b.o"}},
		"CONFIG_C": {Option: "CONFIG_C", Artifacts: []string{"c.o"}},
	}

	s := Summarize(snap, records, 2)
	assert.Len(t, s.Top, 2)

	s = Summarize(snap, records, 0)
	assert.Empty(t, s.Top)
}

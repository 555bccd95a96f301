package tracker

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseSnapshotFile_ValuesAndDefaults(t *testing.T) {
	path := writeSnapshot(t, `
CONFIG_NET=y
CONFIG_BAUDRATE=115200
CONFIG_CMDLINE="console=ttyS0,115200"
CONFIG_SERIAL
`)

	snap, err := ParseSnapshotFile(path)
	require.NoError(t, err)

	assert.Equal(t, 4, snap.Len())

	v, ok := snap.Value("CONFIG_NET")
	assert.True(t, ok)
	assert.Equal(t, "y", v)

	v, _ = snap.Value("CONFIG_BAUDRATE")
	assert.Equal(t, "115200", v)

	v, _ = snap.Value("CONFIG_CMDLINE")
	assert.Equal(t, `"console=ttyS0,115200"`, v)

	// bare option name defaults to the enabled sentinel
	v, _ = snap.Value("CONFIG_SERIAL")
	assert.Equal(t, EnabledValue, v)
}

func TestParseSnapshotFile_SkipsCommentsAndBlanks(t *testing.T) {
	path := writeSnapshot(t, `
# CONFIG_DISABLED is not set

# a comment
CONFIG_A=y
`)

	snap, err := ParseSnapshotFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"CONFIG_A"}, snap.Options())
	_, ok := snap.Value("CONFIG_DISABLED")
	assert.False(t, ok)
}

func TestParseSnapshotFile_SkipsNonMatchingLines(t *testing.T) {
	path := writeSnapshot(t, `
config_lower=y
OTHER_OPTION=y
CONFIG_lower=y
CONFIG_OK=y
CONFIG_EMPTY=
`)

	snap, err := ParseSnapshotFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"CONFIG_OK"}, snap.Options())
}

func TestParseSnapshotFile_DuplicateLastWins(t *testing.T) {
	path := writeSnapshot(t, `
CONFIG_A=1
CONFIG_B=y
CONFIG_A=2
`)

	snap, err := ParseSnapshotFile(path)
	require.NoError(t, err)

	v, _ := snap.Value("CONFIG_A")
	assert.Equal(t, "2", v)
	// first occurrence keeps its position
	assert.Equal(t, []string{"CONFIG_A", "CONFIG_B"}, snap.Options())
}

func TestParseSnapshotFile_Idempotent(t *testing.T) {
	path := writeSnapshot(t, "CONFIG_A=1\nCONFIG_B=y\n")

	first, err := ParseSnapshotFile(path)
	require.NoError(t, err)
	second, err := ParseSnapshotFile(path)
	require.NoError(t, err)

	assert.Equal(t, first.Options(), second.Options())
	for _, opt := range first.Options() {
		v1, _ := first.Value(opt)
		v2, _ := second.Value(opt)
		assert.Equal(t, v1, v2)
	}
}

func TestParseSnapshotFile_ToleratesInvalidBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".config")
	content := append([]byte("CONFIG_A=y\n\xff\xfe garbage\nCONFIG_B=2\n"), 0x80)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	snap, err := ParseSnapshotFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"CONFIG_A", "CONFIG_B"}, snap.Options())
}

func TestParseSnapshotFile_Missing(t *testing.T) {
	_, err := ParseSnapshotFile(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSnapshotMissing))

	var snapErr *SnapshotError
	assert.True(t, errors.As(err, &snapErr))
}

func TestValidOptionName(t *testing.T) {
	assert.True(t, ValidOptionName("CONFIG_NET"))
	assert.True(t, ValidOptionName("CONFIG_ARM64_V8"))
	assert.False(t, ValidOptionName("NET"))
	assert.False(t, ValidOptionName("CONFIG_net"))
	assert.False(t, ValidOptionName("CONFIG_"))
	assert.False(t, ValidOptionName("CONFIG_NET extra"))
}

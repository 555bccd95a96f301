package tracker

import (
	"bufio"
	"os"
	"regexp"
	"strings"
)

const (
	// OptionPrefix is the required prefix of every configuration option name.
	OptionPrefix = "CONFIG_"
	// EnabledValue is the value assigned to options listed without "=value".
	EnabledValue = "y"
)

// optionLineRe matches "CONFIG_NAME" or "CONFIG_NAME=value" lines.
var optionLineRe = regexp.MustCompile(`^(CONFIG_[A-Z0-9_]+)(?:=(.+))?$`)

var optionNameRe = regexp.MustCompile(`^CONFIG_[A-Z0-9_]+$`)

// ValidOptionName reports whether name follows the option grammar: the
// CONFIG_ prefix followed by uppercase letters, digits and underscores.
func ValidOptionName(name string) bool {
	return optionNameRe.MatchString(name)
}

// Snapshot is an immutable set of configuration options parsed from a
// .config or defconfig file. It preserves the file order of first
// occurrence; duplicate names take the value of their last occurrence.
type Snapshot struct {
	order  []string
	values map[string]string
}

// Options returns the option names in snapshot order.
func (s *Snapshot) Options() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Value returns the value of an option and whether it is present.
func (s *Snapshot) Value(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Len returns the number of options in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.order)
}

// ParseSnapshotFile parses a configuration snapshot. Blank lines, comment
// lines and lines not matching the option grammar are skipped silently;
// invalid byte sequences are dropped rather than failing the parse.
func ParseSnapshotFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &SnapshotError{Path: path, Cause: ErrSnapshotMissing}
		}
		return nil, &SnapshotError{Path: path, Cause: err}
	}
	defer f.Close()

	snap := &Snapshot{values: make(map[string]string)}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxConfigLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(strings.ToValidUTF8(scanner.Text(), ""))

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		m := optionLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name, value := m[1], m[2]
		if value == "" {
			value = EnabledValue
		}

		if _, seen := snap.values[name]; !seen {
			snap.order = append(snap.order, name)
		}
		snap.values[name] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, &SnapshotError{Path: path, Cause: err}
	}

	return snap, nil
}

const maxConfigLineSize = 1024 * 1024

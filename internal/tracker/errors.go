package tracker

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	ErrSnapshotMissing = errors.New("configuration snapshot not found")
)

// SnapshotError is returned when a configuration snapshot cannot be read.
type SnapshotError struct {
	Path  string
	Cause error
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("configuration snapshot %s: %v", e.Path, e.Cause)
}

func (e *SnapshotError) Unwrap() error {
	return e.Cause
}

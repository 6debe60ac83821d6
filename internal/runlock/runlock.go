// Package runlock enforces single-writer access to an output directory.
// Shard rotation state lives in the writer, so two concurrent extractions
// into the same directory would interleave documents; the lock fails the
// second run fast instead.
package runlock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrHeld indicates another extraction currently owns the output directory.
var ErrHeld = errors.New("another docshard run is writing to this output directory")

// Lock is a held output-directory lock.
type Lock struct {
	fl   *flock.Flock
	path string
}

// Acquire takes the lock for outputDir without blocking.
func Acquire(outputDir string) (*Lock, error) {
	stateDir := filepath.Join(outputDir, ".docshard")
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}
	path := filepath.Join(stateDir, "lock")
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrHeld
	}
	return &Lock{fl: fl, path: path}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Release drops the lock. Safe to call on a nil Lock.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}

package mapping

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another run holds the mapping lock.
var ErrLocked = errors.New("mapping is locked by another run")

// Lock is an advisory lock guarding one mapping document.
type Lock struct {
	lock *flock.Flock
}

// AcquireLock takes the lock at path without blocking. Missing parent
// directories are created.
func AcquireLock(path string) (*Lock, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create lock dir %s: %w", dir, err)
		}
	}

	l := flock.New(path)
	ok, err := l.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (%s)", ErrLocked, path)
	}
	return &Lock{lock: l}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.lock.Path()
}

// Release unlocks the lock.
func (l *Lock) Release() error {
	return l.lock.Unlock()
}

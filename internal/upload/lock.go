package upload

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
)

// ErrLocked means another upload run holds the lock.
var ErrLocked = errors.New("another upload is already running")

// Lock takes the exclusive upload lock at path. The returned function
// releases it.
func Lock(path string) (func() error, error) {
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire upload lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return lock.Unlock, nil
}

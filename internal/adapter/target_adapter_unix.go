//go:build unix

package adapter

import (
	"errors"

	"golang.org/x/sys/unix"
)

// checkExecutable asks the kernel whether the process may execute path.
func checkExecutable(path string) error {
	err := unix.Access(path, unix.X_OK)
	if err == nil {
		return nil
	}

	if errors.Is(err, unix.EACCES) || errors.Is(err, unix.EROFS) || errors.Is(err, unix.EPERM) {
		return ErrNotExecutable
	}

	return err
}

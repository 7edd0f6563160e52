package adapter

import (
	"context"
	"errors"
	"os"

	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

// ErrNotExecutable is returned when the target exists but may not be executed.
var ErrNotExecutable = errors.New("permission to execute denied")

// TargetAdapter queries the filesystem about the target executable. It never
// launches the target.
type TargetAdapter interface {
	// Stat returns metadata for the target path.
	Stat(ctx context.Context, path m.Path) (os.FileInfo, error)

	// Executable returns nil when the current process may execute path.
	Executable(ctx context.Context, path m.Path) error
}

// LocalTargetAdapter is the os-backed TargetAdapter.
type LocalTargetAdapter struct{}

// NewLocalTargetAdapter constructs a LocalTargetAdapter.
func NewLocalTargetAdapter() *LocalTargetAdapter {
	return &LocalTargetAdapter{}
}

// Stat returns os.Stat metadata for path.
func (a *LocalTargetAdapter) Stat(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// Executable checks execute permission for the current process.
func (a *LocalTargetAdapter) Executable(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return checkExecutable(string(path))
}

package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"frontcheck.dev/pkg/frontcheck/internal/adapter"
	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

// Checker verifies that the target executable exists and may be executed.
// It never launches the target.
type Checker interface {
	Check(ctx context.Context, path m.Path) m.Availability
}

type checker struct {
	targetAdapter adapter.TargetAdapter
}

// NewChecker constructs a Checker backed by the provided target adapter.
func NewChecker(targetAdapter adapter.TargetAdapter) Checker {
	return &checker{targetAdapter: targetAdapter}
}

// Check never returns an error; failures to even query the path are reported
// as TargetUnknown.
func (c *checker) Check(ctx context.Context, path m.Path) m.Availability {
	availability := c.check(ctx, path)

	switch availability.State {
	case m.TargetAvailable:
		slog.Info("Target available", "path", path)
	case m.TargetMissing:
		slog.Warn("Target does not exist", "path", path)
	case m.TargetNotExecutable:
		slog.Warn("Target is not executable", "path", path, "error", availability.Err)
	case m.TargetUnknown:
		slog.Error("Target check failed", "path", path, "error", availability.Err)
	}

	return availability
}

func (c *checker) check(ctx context.Context, path m.Path) m.Availability {
	info, err := c.targetAdapter.Stat(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m.Availability{Path: path, State: m.TargetMissing, Err: err}
		}

		return m.Availability{Path: path, State: m.TargetUnknown, Err: err}
	}

	if info.IsDir() {
		return m.Availability{
			Path:  path,
			State: m.TargetNotExecutable,
			Err:   fmt.Errorf("%s is a directory", path),
		}
	}

	err = c.targetAdapter.Executable(ctx, path)

	switch {
	case err == nil:
		return m.Availability{Path: path, State: m.TargetAvailable}
	case errors.Is(err, adapter.ErrNotExecutable):
		return m.Availability{Path: path, State: m.TargetNotExecutable, Err: err}
	case errors.Is(err, fs.ErrNotExist):
		return m.Availability{Path: path, State: m.TargetMissing, Err: err}
	default:
		return m.Availability{Path: path, State: m.TargetUnknown, Err: err}
	}
}

package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"frontcheck.dev/pkg/frontcheck/internal/adapter"
	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

// Recorder produces one result per test case in a single pass.
type Recorder interface {
	RecordAll(ctx context.Context, cases []m.TestCase, dir m.Path) ([]m.TestResult, error)
}

type recorder struct {
	fsAdapter adapter.SourceFSAdapter
	now       func() time.Time
}

// NewRecorder constructs a Recorder that looks for materialized snippets
// through fsAdapter.
func NewRecorder(fsAdapter adapter.SourceFSAdapter) Recorder {
	return &recorder{fsAdapter: fsAdapter, now: time.Now}
}

// RecordAll returns a new slice in input order. A missing snippet file is
// recorded as SKIP; any other stat failure aborts recording.
func (r *recorder) RecordAll(ctx context.Context, cases []m.TestCase, dir m.Path) ([]m.TestResult, error) {
	results := make([]m.TestResult, 0, len(cases))

	for _, tc := range cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := r.record(ctx, tc, dir)
		if err != nil {
			return nil, err
		}

		slog.Debug("Recorded result", "case", tc.ID, "status", result.Status)

		results = append(results, result)
	}

	return results, nil
}

func (r *recorder) record(ctx context.Context, tc m.TestCase, dir m.Path) (m.TestResult, error) {
	path := r.fsAdapter.JoinPath(ctx, string(dir), tc.FileName())

	pending := m.TestResult{
		CaseID:     tc.ID,
		File:       path,
		Category:   tc.Category,
		SourceText: tc.SourceText,
		Status:     m.StatusPending,
		CreatedAt:  r.now().UTC(),
	}

	info, err := r.fsAdapter.FileInfo(ctx, path)

	switch {
	case err == nil && !info.IsDir():
		return transition(pending, m.StatusManual, m.MessageManualReview)
	case err == nil, errors.Is(err, fs.ErrNotExist):
		return transition(pending, m.StatusSkip, m.MessageFileMissing)
	default:
		slog.Error("Failed to stat corpus file", "path", path, "error", err)
		return m.TestResult{}, fmt.Errorf("stat corpus file %s: %w", path, err)
	}
}

// transition moves a pending result into a terminal status. Terminal results
// cannot move again.
func transition(result m.TestResult, to m.Status, message string) (m.TestResult, error) {
	if result.Status != m.StatusPending {
		return m.TestResult{}, fmt.Errorf("case %q: invalid transition %s -> %s", result.CaseID, result.Status, to)
	}

	if !to.Terminal() {
		return m.TestResult{}, fmt.Errorf("case %q: %s is not a terminal status", result.CaseID, to)
	}

	result.Status = to
	result.Message = message

	return result, nil
}

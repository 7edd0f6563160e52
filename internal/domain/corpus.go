package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"frontcheck.dev/pkg/frontcheck/internal/adapter"
	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

const (
	corpusDirPerm  = 0o750
	corpusFilePerm = 0o644
)

// Corpus owns the snippet set of a run.
type Corpus interface {
	// ListCases returns the cases sorted by identifier.
	ListCases() []m.TestCase
	// Materialize writes one file per case into dir and returns how many
	// cases were materialized.
	Materialize(ctx context.Context, dir m.Path) (int, error)
}

type corpusProvider struct {
	cases     []m.TestCase
	fsAdapter adapter.SourceFSAdapter
}

// NewCorpus builds a Corpus from loaded cases. Identifiers must be unique.
func NewCorpus(cases []m.TestCase, fsAdapter adapter.SourceFSAdapter) (Corpus, error) {
	sorted := make([]m.TestCase, len(cases))
	copy(sorted, cases)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].ID == sorted[i-1].ID {
			return nil, fmt.Errorf("duplicate corpus case id %q", sorted[i].ID)
		}
	}

	return &corpusProvider{cases: sorted, fsAdapter: fsAdapter}, nil
}

func (c *corpusProvider) ListCases() []m.TestCase {
	out := make([]m.TestCase, len(c.cases))
	copy(out, c.cases)

	return out
}

func (c *corpusProvider) Materialize(ctx context.Context, dir m.Path) (int, error) {
	if err := c.fsAdapter.MkdirAll(ctx, dir, corpusDirPerm); err != nil {
		slog.Error("Failed to create corpus directory", "dir", dir, "error", err)
		return 0, fmt.Errorf("create corpus directory %s: %w", dir, err)
	}

	written := 0

	for _, tc := range c.cases {
		path := c.fsAdapter.JoinPath(ctx, string(dir), tc.FileName())
		content := []byte(tc.SourceText)

		unchanged, err := c.unchanged(ctx, path, content)
		if err != nil {
			return written, err
		}

		if !unchanged {
			if err := c.fsAdapter.WriteFile(ctx, path, content, corpusFilePerm); err != nil {
				slog.Error("Failed to write corpus file", "path", path, "error", err)
				return written, fmt.Errorf("write corpus file %s: %w", path, err)
			}

			slog.Debug("Wrote corpus file", "path", path, "bytes", len(content))
		}

		written++
	}

	slog.Info("Materialized corpus", "dir", dir, "cases", written)

	return written, nil
}

// unchanged reports whether path already holds content. Drift from a previous
// run is logged as a unified diff before the file is overwritten.
func (c *corpusProvider) unchanged(ctx context.Context, path m.Path, content []byte) (bool, error) {
	existing, err := c.fsAdapter.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		slog.Warn("Failed to read existing corpus file", "path", path, "error", err)

		return false, nil
	}

	if bytes.Equal(existing, content) {
		return true, nil
	}

	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		slog.Debug("Corpus file drifted, overwriting", "path", path, "diff", unifiedDiff(string(path), existing, content))
	}

	return false, nil
}

func unifiedDiff(name string, before, after []byte) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: name + " (on disk)",
		ToFile:   name + " (corpus)",
		Context:  2,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return err.Error()
	}

	return strings.TrimRight(text, "\n")
}

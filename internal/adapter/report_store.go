package adapter

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

// ReportStore persists and loads run reports.
type ReportStore interface {
	SaveReport(ctx context.Context, path m.Path, report m.Report) error
	LoadReport(ctx context.Context, path m.Path) (m.Report, error)
}

// JSONReportStore writes reports as indented UTF-8 JSON documents.
type JSONReportStore struct{}

// NewReportStore constructs a JSONReportStore.
func NewReportStore() *JSONReportStore {
	return &JSONReportStore{}
}

// EncodeReport renders report in the persisted document format.
func EncodeReport(report m.Report) ([]byte, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(report); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// reportLockPath returns the lock file guarding path. It lives in the temp
// directory so the report directory only ever holds the report.
func reportLockPath(path m.Path) string {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		abs = string(path)
	}

	sum := sha256.Sum256([]byte(abs))

	return filepath.Join(os.TempDir(), "frontcheck-"+hex.EncodeToString(sum[:8])+".lock")
}

// SaveReport replaces the document at path. The write holds a per-report
// lock and goes through a temp file so readers never see a partial document.
func (s *JSONReportStore) SaveReport(ctx context.Context, path m.Path, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := EncodeReport(report)
	if err != nil {
		slog.Error("Failed to encode report", "path", path, "error", err)
		return fmt.Errorf("encode report: %w", err)
	}

	dir := filepath.Dir(string(path))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create report directory %s: %w", dir, err)
	}

	lock := flock.New(reportLockPath(path))

	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	locked, err := lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("lock report %s: %w", path, err)
	}

	if !locked {
		return fmt.Errorf("lock report %s: lock held by another process", path)
	}

	defer func() {
		if err := lock.Unlock(); err != nil {
			slog.Warn("Failed to release report lock", "path", path, "error", err)
		}
	}()

	if err := atomicWrite(string(path), data, 0o644); err != nil {
		slog.Error("Failed to write report", "path", path, "error", err)
		return err
	}

	slog.Info("Saved report", "path", path, "results", len(report.Results), "run", report.RunID)

	return nil
}

// LoadReport reads and validates a persisted report.
func (s *JSONReportStore) LoadReport(ctx context.Context, path m.Path) (m.Report, error) {
	if err := ctx.Err(); err != nil {
		return m.Report{}, err
	}

	// #nosec G304 - report path comes from the harness configuration
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Report{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var report m.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("parse report %s: %w", path, err)
	}

	return report, nil
}

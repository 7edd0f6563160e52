package adapter

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

func testReport() m.Report {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	return m.Report{
		RunID:       "3f1c0f4e-8a61-4d8b-9a57-1b2a4f6c9e10",
		GeneratedAt: created,
		Target:      "./CompilerFrontend",
		CorpusDir:   "test_cases",
		Total:       2,
		Counts:      map[m.Status]int{m.StatusManual: 1, m.StatusSkip: 1},
		Results: []m.TestResult{
			{
				CaseID:     "errors",
				File:       "test_cases/errors.c",
				Category:   m.CategoryErrorHandling,
				SourceText: "int b = undeclared_var;  // 错误：未声明变量\nif (a < b && b > c) {}",
				Status:     m.StatusManual,
				Message:    m.MessageManualReview,
				CreatedAt:  created,
			},
			{
				CaseID:     "complex",
				File:       "test_cases/complex.c",
				Category:   m.CategoryRecursion,
				SourceText: "int main() { return 0; }",
				Status:     m.StatusSkip,
				Message:    m.MessageFileMissing,
				CreatedAt:  created,
			},
		},
	}
}

func TestJSONReportStore_SaveAndLoad(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()
	path := m.Path(filepath.Join(t.TempDir(), "reports", "test_report.json"))

	want := testReport()
	require.NoError(t, store.SaveReport(ctx, path, want))

	got, err := store.LoadReport(ctx, path)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("LoadReport() mismatch (-want +got):\n%s", diff)
	}

	entries, err := os.ReadDir(filepath.Dir(string(path)))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "test_report.json", entries[0].Name())
}

func TestReportLockPath(t *testing.T) {
	dir := t.TempDir()
	first := reportLockPath(m.Path(filepath.Join(dir, "a.json")))

	assert.Equal(t, os.TempDir(), filepath.Dir(first))
	assert.Equal(t, first, reportLockPath(m.Path(filepath.Join(dir, "a.json"))))
	assert.NotEqual(t, first, reportLockPath(m.Path(filepath.Join(dir, "b.json"))))
}

func TestJSONReportStore_WritesReadableUTF8(t *testing.T) {
	store := NewReportStore()
	path := filepath.Join(t.TempDir(), "test_report.json")

	require.NoError(t, store.SaveReport(context.Background(), m.Path(path), testReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "未声明变量")
	assert.Contains(t, text, "a < b && b > c")
	assert.NotContains(t, text, `\u`)
	assert.Contains(t, text, "\n  \"run_id\": ")

	var raw struct {
		Results []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw.Results, 2)
	assert.Equal(t, "errors", raw.Results[0].ID)
	assert.Equal(t, "MANUAL", raw.Results[0].Status)
	assert.Equal(t, "SKIP", raw.Results[1].Status)
}

func TestJSONReportStore_OverwritesPreviousReport(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()
	path := m.Path(filepath.Join(t.TempDir(), "test_report.json"))

	first := testReport()
	require.NoError(t, store.SaveReport(ctx, path, first))

	second := testReport()
	second.RunID = "second"
	second.Results = second.Results[:1]
	second.Total = 1
	second.Counts = map[m.Status]int{m.StatusManual: 1, m.StatusSkip: 0}
	require.NoError(t, store.SaveReport(ctx, path, second))

	got, err := store.LoadReport(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "second", got.RunID)
	assert.Len(t, got.Results, 1)

	entries, err := os.ReadDir(filepath.Dir(string(path)))
	require.NoError(t, err)

	for _, entry := range entries {
		assert.NotContains(t, entry.Name(), ".tmp-", "temp file left behind")
	}
}

func TestJSONReportStore_SaveRejectsPendingResult(t *testing.T) {
	store := NewReportStore()
	path := filepath.Join(t.TempDir(), "test_report.json")

	report := testReport()
	report.Results[0].Status = m.StatusPending

	require.Error(t, store.SaveReport(context.Background(), m.Path(path), report))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestJSONReportStore_LoadErrors(t *testing.T) {
	store := NewReportStore()
	dir := t.TempDir()

	_, err := store.LoadReport(context.Background(), m.Path(filepath.Join(dir, "missing.json")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read report")

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"run_id":"r","total":5,"counts":{},"results":[]}`), 0o644))

	_, err = store.LoadReport(context.Background(), m.Path(invalid))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse report")
}

func TestJSONReportStore_SaveFailsWhenDirectoryIsAFile(t *testing.T) {
	store := NewReportStore()
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := store.SaveReport(context.Background(), m.Path(filepath.Join(blocker, "test_report.json")), testReport())
	require.Error(t, err)
}

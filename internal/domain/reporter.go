package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"frontcheck.dev/pkg/frontcheck/internal/adapter"
	"frontcheck.dev/pkg/frontcheck/internal/controller"
	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

// ReportOption sets run metadata on a generated report.
type ReportOption func(*m.Report)

// WithTarget records the target path that was checked.
func WithTarget(path m.Path) ReportOption {
	return func(r *m.Report) {
		r.Target = path
	}
}

// WithCorpusDir records the directory the corpus was materialized into.
func WithCorpusDir(path m.Path) ReportOption {
	return func(r *m.Report) {
		r.CorpusDir = path
	}
}

// Reporter aggregates results into a report, prints it and persists it.
type Reporter interface {
	Generate(results []m.TestResult, options ...ReportOption) m.Report
	Publish(ctx context.Context, report m.Report, path m.Path) error
}

type reporter struct {
	store adapter.ReportStore
	ui    controller.UI
	now   func() time.Time
	newID func() string
}

// NewReporter constructs a Reporter that prints through ui and persists
// through store.
func NewReporter(store adapter.ReportStore, ui controller.UI) Reporter {
	return &reporter{
		store: store,
		ui:    ui,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Generate counts results per status in one pass. Every terminal status has
// an entry, so the counts always sum to the number of results.
func (r *reporter) Generate(results []m.TestResult, options ...ReportOption) m.Report {
	counts := make(map[m.Status]int, len(m.TerminalStatuses()))
	for _, status := range m.TerminalStatuses() {
		counts[status] = 0
	}

	for _, result := range results {
		counts[result.Status]++
	}

	snapshot := make([]m.TestResult, len(results))
	copy(snapshot, results)

	report := m.Report{
		RunID:       r.newID(),
		GeneratedAt: r.now().UTC(),
		Total:       len(snapshot),
		Counts:      counts,
		Results:     snapshot,
	}

	for _, option := range options {
		option(&report)
	}

	return report
}

// Publish prints the summary before persisting, so a failing write still
// leaves the summary on the console.
func (r *reporter) Publish(ctx context.Context, report m.Report, path m.Path) error {
	if err := r.ui.DisplayReport(ctx, report); err != nil {
		return fmt.Errorf("display report: %w", err)
	}

	if err := r.store.SaveReport(ctx, path, report); err != nil {
		slog.Error("Failed to persist report", "path", path, "error", err)
		return fmt.Errorf("save report %s: %w", path, err)
	}

	r.ui.DisplayReportSaved(ctx, path)

	return nil
}

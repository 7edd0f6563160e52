// Package domain implements the harness pipeline: availability check, corpus
// materialization, result recording, reporting and guide rendering.
package domain

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"frontcheck.dev/pkg/frontcheck/internal/adapter"
	"frontcheck.dev/pkg/frontcheck/internal/controller"
	"frontcheck.dev/pkg/frontcheck/internal/corpus"
	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

// RunArgs contains the arguments for a full pipeline run.
type RunArgs struct {
	Target       m.Path
	CorpusDir    m.Path
	CorpusSource m.Path
	Report       m.Path
}

// CheckArgs contains the arguments for a standalone availability check.
type CheckArgs struct {
	Target m.Path
}

// ListArgs contains the arguments for listing the corpus.
type ListArgs struct {
	CorpusSource m.Path
}

// GuideCommandArgs contains the arguments for printing or exporting the guide.
type GuideCommandArgs struct {
	Target       m.Path
	CorpusDir    m.Path
	CorpusSource m.Path
	HTML         m.Path
}

// ViewArgs contains the arguments for viewing a persisted report.
type ViewArgs struct {
	Report m.Path
}

// Workflow defines the operations exposed to the CLI.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	Check(ctx context.Context, args CheckArgs) error
	List(ctx context.Context, args ListArgs) error
	Guide(ctx context.Context, args GuideCommandArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.CorpusLoader
	adapter.ReportStore
	adapter.MarkdownExporter
	controller.UI
	Checker
	Recorder
	Reporter
	GuideRenderer
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	loader adapter.CorpusLoader,
	reportStore adapter.ReportStore,
	exporter adapter.MarkdownExporter,
	ui controller.UI,
	checker Checker,
	recorder Recorder,
	reporter Reporter,
	renderer GuideRenderer,
) Workflow {
	return &workflow{
		SourceFSAdapter:  fsAdapter,
		CorpusLoader:     loader,
		ReportStore:      reportStore,
		MarkdownExporter: exporter,
		UI:               ui,
		Checker:          checker,
		Recorder:         recorder,
		Reporter:         reporter,
		GuideRenderer:    renderer,
	}
}

// Run executes the pipeline once. A failed availability check stops the run
// before anything is written; the guide is still printed as a reference.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	w.DisplayBanner(ctx)

	availability := w.Checker.Check(ctx, args.Target)
	w.DisplayAvailability(ctx, availability)

	provider, err := w.loadCorpus(args.CorpusSource)
	if err != nil {
		return phaseError(PhaseCorpusLoad, err)
	}

	guideArgs := GuideArgs{Target: args.Target, CorpusDir: args.CorpusDir, Cases: provider.ListCases()}

	if !availability.OK() {
		slog.Warn("Stopping run, target unavailable", "target", args.Target, "state", availability.State)

		if err := w.DisplayGuide(ctx, w.Render(guideArgs)); err != nil {
			slog.Error("Failed to display guide", "error", err)
		}

		return phaseError(PhaseAvailability, fmt.Errorf("%w: %s", ErrTargetUnavailable, args.Target))
	}

	count, err := provider.Materialize(ctx, args.CorpusDir)
	if err != nil {
		return phaseError(PhaseMaterialize, err)
	}

	w.DisplayMaterialized(ctx, count, args.CorpusDir)

	results, err := w.RecordAll(ctx, provider.ListCases(), args.CorpusDir)
	if err != nil {
		return phaseError(PhaseRecord, err)
	}

	report := w.Generate(results, WithTarget(args.Target), WithCorpusDir(args.CorpusDir))

	if err := w.Publish(ctx, report, args.Report); err != nil {
		return phaseError(PhaseReport, err)
	}

	if err := w.DisplayGuide(ctx, w.Render(guideArgs)); err != nil {
		return phaseError(PhaseGuide, err)
	}

	w.DisplayCompletion(ctx, report)

	return nil
}

func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	availability := w.Checker.Check(ctx, args.Target)
	w.DisplayAvailability(ctx, availability)

	if !availability.OK() {
		return phaseError(PhaseAvailability, fmt.Errorf("%w: %s", ErrTargetUnavailable, args.Target))
	}

	return nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	provider, err := w.loadCorpus(args.CorpusSource)
	if err != nil {
		return phaseError(PhaseCorpusLoad, err)
	}

	return w.DisplayCases(ctx, provider.ListCases())
}

func (w *workflow) Guide(ctx context.Context, args GuideCommandArgs) error {
	provider, err := w.loadCorpus(args.CorpusSource)
	if err != nil {
		return phaseError(PhaseCorpusLoad, err)
	}

	guide := w.Render(GuideArgs{Target: args.Target, CorpusDir: args.CorpusDir, Cases: provider.ListCases()})

	if args.HTML == "" {
		return phaseError(PhaseGuide, w.DisplayGuide(ctx, guide))
	}

	if err := w.ExportHTML(ctx, GuideTitle, guide, args.HTML); err != nil {
		return phaseError(PhaseGuide, err)
	}

	w.DisplayGuideExported(ctx, args.HTML)

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(ctx, args.Report)
	if err != nil {
		return phaseError(PhaseView, err)
	}

	return phaseError(PhaseView, w.DisplayStoredReport(ctx, args.Report, report))
}

// loadCorpus reads the built-in corpus, or the fixture directory at source
// when one is configured.
func (w *workflow) loadCorpus(source m.Path) (Corpus, error) {
	var fsys fs.FS

	if source == "" {
		fsys = corpus.Default()
	} else {
		fsys = os.DirFS(string(source))
	}

	cases, err := w.Load(fsys)
	if err != nil {
		if source != "" {
			return nil, fmt.Errorf("load corpus from %s: %w", source, err)
		}

		return nil, fmt.Errorf("load built-in corpus: %w", err)
	}

	return NewCorpus(cases, w.SourceFSAdapter)
}

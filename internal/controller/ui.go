// Package controller provides the console front ends for frontcheck.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

// UI defines how pipeline progress and results reach the operator.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayBanner(ctx context.Context)
	DisplayAvailability(ctx context.Context, availability m.Availability)
	DisplayMaterialized(ctx context.Context, count int, dir m.Path)
	DisplayReport(ctx context.Context, report m.Report) error
	DisplayReportSaved(ctx context.Context, path m.Path)
	DisplayGuide(ctx context.Context, guide string) error
	DisplayGuideExported(ctx context.Context, path m.Path)
	DisplayCases(ctx context.Context, cases []m.TestCase) error
	DisplayStoredReport(ctx context.Context, path m.Path, report m.Report) error
	DisplayCompletion(ctx context.Context, report m.Report)
}

// NewUI returns a TUI when writing to a terminal and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// terminalSize returns the size of w, or zeros when w is not a terminal.
func terminalSize(w io.Writer) (width, height int) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

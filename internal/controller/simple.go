package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

const separator = "=================================================="

// SimpleUI implements UI with plain text written to the cobra command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayBanner prints the run header.
func (s *SimpleUI) DisplayBanner(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("frontcheck: compiler frontend test harness\n%s\n", separator)
}

// DisplayAvailability prints the outcome of the target check. Missing and
// non-executable targets get different lines.
func (s *SimpleUI) DisplayAvailability(ctx context.Context, availability m.Availability) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", availabilityLine(availability))

	if !availability.OK() {
		s.printf("Target check failed, run stopped.\n")
	}
}

func availabilityLine(availability m.Availability) string {
	switch availability.State {
	case m.TargetAvailable:
		return fmt.Sprintf("Target check passed: %s", availability.Path)
	case m.TargetMissing:
		return fmt.Sprintf("Error: target does not exist: %s", availability.Path)
	case m.TargetNotExecutable:
		return fmt.Sprintf("Error: target is not executable: %s", availability.Path)
	default:
		return fmt.Sprintf("Error: target check failed: %s: %v", availability.Path, availability.Err)
	}
}

// DisplayMaterialized prints how many snippet files were created.
func (s *SimpleUI) DisplayMaterialized(ctx context.Context, count int, dir m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Created %d test case file(s) in %s\n", count, dir)
}

// DisplayReport prints the report summary and one line per result.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s\nTest report\n%s\n", separator, separator)
	s.printf("%s", renderSummary(report, plainStatus))

	return nil
}

// DisplayReportSaved prints where the report document was written.
func (s *SimpleUI) DisplayReportSaved(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\nDetailed report saved to: %s\n", path)
}

// DisplayGuide prints the verification guide.
func (s *SimpleUI) DisplayGuide(ctx context.Context, guide string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s\n%s", separator, guide)

	return nil
}

// DisplayGuideExported prints where the guide was exported.
func (s *SimpleUI) DisplayGuideExported(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Guide exported to: %s\n", path)
}

// DisplayCases prints the corpus as a table.
func (s *SimpleUI) DisplayCases(ctx context.Context, cases []m.TestCase) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderCasesTable(cases))

	return nil
}

// DisplayStoredReport prints a report loaded from disk.
func (s *SimpleUI) DisplayStoredReport(ctx context.Context, path m.Path, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", storedReportHeader(path, report))
	s.printf("%s", renderSummary(report, plainStatus))

	return nil
}

// DisplayCompletion prints the final line of a completed run.
func (s *SimpleUI) DisplayCompletion(ctx context.Context, report m.Report) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s\n", completionLine(report))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func completionLine(report m.Report) string {
	return fmt.Sprintf("Run complete: %d case(s) need manual verification, %d skipped. "+
		"Paste each snippet into the target and follow the guide above.",
		report.Count(m.StatusManual), report.Count(m.StatusSkip))
}

func storedReportHeader(path m.Path, report m.Report) string {
	return fmt.Sprintf("Report %s\nRun %s, generated %s\nTarget %s, corpus %s\n",
		path, report.RunID, report.GeneratedAt.Format("2006-01-02 15:04:05 MST"), report.Target, report.CorpusDir)
}

func plainStatus(status m.Status) string {
	return status.Symbol()
}

// renderSummary lists the totals followed by a table with one row per result.
// decorate renders the status marker column.
func renderSummary(report m.Report, decorate func(m.Status) string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Total: %d\n", report.Total)

	for _, status := range m.TerminalStatuses() {
		fmt.Fprintf(&b, "  %s %-7s %d\n", decorate(status), status, report.Count(status))
	}

	if len(report.Results) == 0 {
		b.WriteString("\nNo results.\n")
		return b.String()
	}

	b.WriteString("\nResults:\n")

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"", "Case", "Status", "File", "Message"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, result := range report.Results {
		table.Append([]string{
			decorate(result.Status),
			result.CaseID,
			string(result.Status),
			string(result.File),
			result.Message,
		})
	}

	table.Render()
	b.WriteString(tableBuffer.String())

	return b.String()
}

func renderCasesTable(cases []m.TestCase) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Case", "File", "Category", "Focus"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	for _, tc := range cases {
		table.Append([]string{tc.ID, tc.FileName(), string(tc.Category), tc.Focus})
	}

	table.SetFooter([]string{fmt.Sprintf("Total cases %d", len(cases)), "", "", ""})
	table.Render()

	return tableBuffer.String()
}

package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

// TUI implements UI for terminals: styled output, and stored reports shown
// in a scrollable pager.
type TUI struct {
	*SimpleUI
	output io.Writer
	size   func() (width, height int)
}

// NewTUI creates a new TUI writing to the command's output.
func NewTUI(cmd *cobra.Command) *TUI {
	output := cmd.OutOrStdout()

	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		output:   output,
		size:     func() (int, int) { return terminalSize(output) },
	}
}

// DisplayBanner prints a boxed header.
func (t *TUI) DisplayBanner(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.printf("%s\n", titleStyle.Render("frontcheck: compiler frontend test harness"))
}

// DisplayAvailability prints the target check outcome in color.
func (t *TUI) DisplayAvailability(ctx context.Context, availability m.Availability) {
	if err := ctx.Err(); err != nil {
		return
	}

	if availability.OK() {
		t.printf("%s\n", okStyle.Render("✓ "+availabilityLine(availability)))
		return
	}

	t.printf("%s\n", errorStyle.Render("✗ "+availabilityLine(availability)))
	t.printf("Target check failed, run stopped.\n")
}

// DisplayReport prints the summary with colored status markers.
func (t *TUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.printf("\n%s\n", headingStyle.Render("Test report"))
	t.printf("%s", renderSummary(report, styledStatus))

	return nil
}

// DisplayGuide renders the guide Markdown for the terminal and prints it in
// full. The guide is never paged; it must stay in the scrollback.
func (t *TUI) DisplayGuide(ctx context.Context, guide string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	width, _ := t.size()

	t.printf("\n")

	_, err := fmt.Fprint(t.output, renderMarkdown(guide, width))

	return err
}

const defaultWrapWidth = 80

// renderMarkdown styles markdown with glamour. The raw text is returned when
// rendering fails.
func renderMarkdown(markdown string, width int) string {
	if width <= 0 {
		width = defaultWrapWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		slog.Warn("Failed to create markdown renderer", "error", err)
		return markdown
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		slog.Warn("Failed to render markdown", "error", err)
		return markdown
	}

	return rendered
}

// DisplayStoredReport pages a report loaded from disk.
func (t *TUI) DisplayStoredReport(ctx context.Context, path m.Path, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content := storedReportHeader(path, report) + renderSummary(report, styledStatus)

	return t.page(string(path), content)
}

// DisplayCompletion prints the final line in color.
func (t *TUI) DisplayCompletion(ctx context.Context, report m.Report) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.printf("\n%s\n", okStyle.Render(completionLine(report)))
}

// page prints content directly when it fits, otherwise runs a pager.
func (t *TUI) page(title, content string) error {
	width, height := t.size()

	model := newPagerModel(title, content, width, height)
	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, content)
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// pagerChrome is the number of lines taken by the pager header and footer.
const pagerChrome = 3

// pagerModel is the Bubble Tea model for scrolling a long document.
type pagerModel struct {
	title    string
	lines    int
	height   int
	viewport viewport.Model
	quitting bool
}

func newPagerModel(title, content string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-pagerChrome, 1))
	vp.SetContent(content)

	return pagerModel{
		title:    title,
		lines:    strings.Count(content, "\n") + 1,
		height:   height,
		viewport: vp,
	}
}

// needsPagination returns true if the content is taller than the terminal.
func (pm pagerModel) needsPagination() bool {
	return pm.height > 0 && pm.lines > pm.height-pagerChrome
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-pagerChrome, 1)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(headingStyle.Render(pm.title))
	b.WriteString("\n")
	b.WriteString(pm.viewport.View())
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s", helpStyle.Render(fmt.Sprintf(
		"%3.f%%  ↑/↓ scroll • pgup/pgdn page • g/G top/bottom • q quit",
		pm.viewport.ScrollPercent()*100)))

	return b.String()
}

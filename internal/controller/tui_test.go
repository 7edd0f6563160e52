package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	_, isTUI := NewUI(cmd, true).(*TUI)
	assert.True(t, isTUI)

	_, isSimple := NewUI(cmd, false).(*SimpleUI)
	assert.True(t, isSimple)
}

func TestIsTTY_Buffer(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}

func TestTUI_DisplayGuideWithoutTerminalPrintsDirectly(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	guide := "# Manual verification guide\n\n" + strings.Repeat("- [ ] step\n", 200)
	require.NoError(t, NewTUI(cmd).DisplayGuide(context.Background(), guide))

	assert.Contains(t, buf.String(), "Manual verification guide")
	assert.Equal(t, 200, strings.Count(buf.String(), "step"))
}

func TestTUI_DisplayGuideOnTerminalIsNotPaged(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewTUI(cmd)
	ui.size = func() (int, int) { return 100, 24 }

	ctx := context.Background()
	guide := "# Manual verification guide\n\n" + strings.Repeat("- [ ] paste the snippet\n", 60)

	require.NoError(t, ui.DisplayGuide(ctx, guide))
	ui.DisplayCompletion(ctx, testReport())

	got := buf.String()
	assert.NotContains(t, got, "\x1b[?1049h", "guide must not open the alternate screen")
	assert.Equal(t, 60, strings.Count(got, "paste the snippet"))

	guideAt := strings.Index(got, "Manual verification guide")
	completionAt := strings.Index(got, "follow the guide above")
	require.GreaterOrEqual(t, guideAt, 0)
	require.Greater(t, completionAt, guideAt)
}

func TestTUI_DisplayReport(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewTUI(cmd)
	ctx := context.Background()

	ui.DisplayAvailability(ctx, m.Availability{Path: "./CompilerFrontend", State: m.TargetMissing})
	require.NoError(t, ui.DisplayReport(ctx, testReport()))
	require.NoError(t, ui.DisplayStoredReport(ctx, "test_report.json", testReport()))

	got := buf.String()
	assert.Contains(t, got, "Error: target does not exist: ./CompilerFrontend")
	assert.Contains(t, got, "Test report")
	assert.Contains(t, got, "Total: 2")
	assert.Contains(t, got, "Report test_report.json")
}

func TestRenderMarkdown(t *testing.T) {
	rendered := renderMarkdown("# Guide\n\nPaste `errors.c` into the editor.\n", 0)

	assert.Contains(t, rendered, "Guide")
	assert.Contains(t, rendered, "errors.c")
	assert.Contains(t, rendered, "into the editor")
}

func TestPagerModel_NeedsPagination(t *testing.T) {
	content := strings.Repeat("line\n", 50)

	assert.False(t, newPagerModel("guide", content, 80, 0).needsPagination())
	assert.False(t, newPagerModel("guide", content, 80, 100).needsPagination())
	assert.True(t, newPagerModel("guide", content, 80, 20).needsPagination())
}

func TestPagerModel_Update(t *testing.T) {
	model := newPagerModel("guide", strings.Repeat("line\n", 50), 80, 20)

	updated, cmd := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Nil(t, cmd)

	pm := updated.(pagerModel)
	assert.Equal(t, 30, pm.height)
	assert.Equal(t, 100, pm.viewport.Width)
	assert.Equal(t, 30-pagerChrome, pm.viewport.Height)

	updated, _ = pm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	pm = updated.(pagerModel)
	assert.True(t, pm.viewport.AtBottom())

	updated, _ = pm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	pm = updated.(pagerModel)
	assert.True(t, pm.viewport.AtTop())

	updated, cmd = pm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	pm = updated.(pagerModel)
	require.NotNil(t, cmd)
	assert.True(t, pm.quitting)
	assert.Empty(t, pm.View())
}

func TestPagerModel_View(t *testing.T) {
	model := newPagerModel("Manual verification guide", "first line\nsecond line\n", 80, 20)

	view := model.View()
	assert.Contains(t, view, "Manual verification guide")
	assert.Contains(t, view, "first line")
	assert.Contains(t, view, "q quit")
}

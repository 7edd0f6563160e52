package controller

import (
	"github.com/charmbracelet/lipgloss"

	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 2)

	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	manualStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	skipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true)
)

// styledStatus colors a status marker by status.
func styledStatus(status m.Status) string {
	switch status {
	case m.StatusManual:
		return manualStyle.Render(status.Symbol())
	case m.StatusSkip:
		return skipStyle.Render(status.Symbol())
	default:
		return status.Symbol()
	}
}

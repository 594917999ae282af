package app

import (
	"strings"

	"msglint/internal/ui"
)

// View renders the application
func (m Model) View() string {
	if m.decision != DecisionNone || m.err != nil {
		return ""
	}

	var b strings.Builder
	switch m.screen {
	case ScreenHelp:
		b.WriteString(ui.Help())
	default:
		b.WriteString(ui.RenderReport(m.msg, m.warnings))
	}
	b.WriteString("\n")
	b.WriteString(ui.Prompt())
	return b.String()
}

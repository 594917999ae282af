package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"msglint/internal/rules"
)

// Update handles all messages and updates state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case editorDoneMsg:
		return m.handleEditorDone(msg)

	case reloadResult:
		return m.handleReloadResult(msg)
	}

	return m, nil
}

// handleKey processes the e/y/n/? choice. Matching is case-insensitive
// and anything unrecognized counts as a request for help.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
		m.decision = DecisionReject
		return m, tea.Quit
	}

	switch strings.ToLower(msg.String()) {
	case "e":
		return m, editCmd(m.config, m.path)
	case "y":
		m.decision = DecisionAccept
		return m, tea.Quit
	case "n":
		m.decision = DecisionReject
		return m, tea.Quit
	default:
		m.screen = ScreenHelp
		return m, nil
	}
}

// handleEditorDone runs after the external editor exits. Edits are not
// trusted: the file is reloaded and validated from scratch.
func (m Model) handleEditorDone(msg editorDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = fmt.Errorf("failed to run editor: %w", msg.err)
		m.decision = DecisionReject
		return m, tea.Quit
	}
	return m, reloadCmd(m.path, m.marker)
}

func (m Model) handleReloadResult(msg reloadResult) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		m.decision = DecisionReject
		return m, tea.Quit
	}

	m.msg = msg.msg
	m.warnings = rules.Validate(m.msg)
	if m.warnings.Empty() {
		m.decision = DecisionAccept
		return m, tea.Quit
	}

	m.screen = ScreenReport
	return m, nil
}

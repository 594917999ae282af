// Package app drives the interactive decision loop: present the warnings,
// prompt for edit/accept/abort/help, and re-validate the message file
// after every edit.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"msglint/internal/config"
	"msglint/internal/message"
	"msglint/internal/rules"
)

// Model is the interactive session state. It is only constructed when the
// first validation pass found warnings; a clean message never prompts.
type Model struct {
	config *config.Config
	path   string
	marker string

	msg      message.Message
	warnings *rules.WarningSet

	screen   Screen
	decision Decision
	err      error
}

// New creates the session model from the already-validated message.
func New(cfg *config.Config, path, marker string, msg message.Message, warnings *rules.WarningSet) Model {
	return Model{
		config:   cfg,
		path:     path,
		marker:   marker,
		msg:      msg,
		warnings: warnings,
		screen:   ScreenReport,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Accepted reports whether the user chose to proceed with the commit,
// either explicitly or by editing the message until it passed.
func (m Model) Accepted() bool {
	return m.decision == DecisionAccept
}

// Err returns the fatal error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

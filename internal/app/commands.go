package app

import (
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"msglint/internal/config"
	"msglint/internal/message"
)

// Message types for async operations

type editorDoneMsg struct {
	err error
}

type reloadResult struct {
	msg message.Message
	err error
}

// editCmd launches the external editor on the commit-message file.
// ExecProcess releases the terminal to the editor and blocks until it
// exits; the callback delivers the result back into the update loop.
func editCmd(cfg *config.Config, path string) tea.Cmd {
	cmd := exec.Command("sh", "-c", resolveEditor(cfg)+" "+shellQuote(path))
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorDoneMsg{err: err}
	})
}

// reloadCmd re-reads the commit-message file after an edit.
func reloadCmd(path, marker string) tea.Cmd {
	return func() tea.Msg {
		msg, err := message.Read(path, marker)
		return reloadResult{msg: msg, err: err}
	}
}

// resolveEditor picks the editor: config override first, then git's
// environment convention, then vi.
func resolveEditor(cfg *config.Config) string {
	if cfg != nil && cfg.Editor.Command != "" {
		return cfg.Editor.Command
	}
	for _, v := range []string{"GIT_EDITOR", "VISUAL", "EDITOR"} {
		if e := os.Getenv(v); e != "" {
			return e
		}
	}
	return "vi"
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

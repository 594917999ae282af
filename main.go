package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "msglint/internal/termfix"

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"msglint/internal/app"
	"msglint/internal/config"
	"msglint/internal/git"
	"msglint/internal/message"
	"msglint/internal/rules"
	"msglint/internal/ui"
)

var colorFlag string

func main() {
	rootCmd := &cobra.Command{
		Use:           "msglint <commit-msg-file>",
		Short:         "Commit-message style linter for the commit-msg hook",
		Args:          cobra.ExactArgs(1),
		Version:       "1.0.0",
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVar(&colorFlag, "color", "", "Color output: auto, always or never")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	path := args[0]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The repository is optional context: without it we fall back to the
	// default comment marker and auto color detection.
	repo, _ := git.FindRepo(filepath.Dir(path))
	marker := git.CommentChar(repo)
	ui.ApplyColorMode(ui.ResolveColorMode(colorFlag, git.ColorUI(repo), cfg.Color.Mode))

	msg, err := message.Read(path, marker)
	if err != nil {
		return err
	}

	warnings := rules.Validate(msg)
	if warnings.Empty() {
		return nil
	}

	opts := []tea.ProgramOption{tea.WithOutput(os.Stdout)}

	// Read choices from the controlling terminal, not stdin: git owns
	// stdin during the commit flow.
	if tty, err := os.Open("/dev/tty"); err == nil {
		defer tty.Close()
		opts = append(opts, tea.WithInput(tty))
	}

	final, err := tea.NewProgram(app.New(cfg, path, marker, msg, warnings), opts...).Run()
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	m := final.(app.Model)
	if m.Err() != nil {
		return m.Err()
	}
	if !m.Accepted() {
		os.Exit(1)
	}
	return nil
}

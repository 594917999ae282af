// Package git reads the small slice of repository configuration the linter
// honors: the comment marker and the color preference.
package git

import (
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	"msglint/internal/message"
)

// IsRepo checks if the path is a git repository.
func IsRepo(path string) bool {
	_, err := gogit.PlainOpen(path)
	return err == nil
}

// FindRepo walks up from start until it finds the enclosing repository.
// The commit-message file lives in .git/, so the walk normally stops one
// level up; it still handles hooks pointed at files elsewhere.
func FindRepo(start string) (*gogit.Repository, error) {
	path := start
	for {
		if repo, err := gogit.PlainOpen(path); err == nil {
			return repo, nil
		}
		parent := filepath.Dir(path)
		if parent == path {
			return nil, gogit.ErrRepositoryNotExists
		}
		path = parent
	}
}

// CommentChar returns the repository's core.commentChar, or git's default
// "#" when unset or the repository is nil.
func CommentChar(repo *gogit.Repository) string {
	if repo == nil {
		return message.DefaultCommentMarker
	}
	cfg, err := repo.Config()
	if err != nil {
		return message.DefaultCommentMarker
	}
	if c := cfg.Raw.Section("core").Option("commentChar"); c != "" {
		return c
	}
	return message.DefaultCommentMarker
}

// ColorUI returns the repository's color.ui value, "" when unset.
func ColorUI(repo *gogit.Repository) string {
	if repo == nil {
		return ""
	}
	cfg, err := repo.Config()
	if err != nil {
		return ""
	}
	return cfg.Raw.Section("color").Option("ui")
}

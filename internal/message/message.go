// Package message loads a commit message file into the line sequence the
// rule checks operate on.
package message

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultCommentMarker is git's default core.commentChar.
const DefaultCommentMarker = "#"

// Message is a commit message as an ordered sequence of lines, comment
// lines removed and trailing whitespace stripped. Lines are 0-indexed
// here and 1-indexed everywhere the user sees them.
type Message []string

// Read loads the commit message at path. Comment lines (first
// non-indentation character is the marker) are dropped, trailing tabs and
// spaces are stripped, blank lines are kept. Each call returns a fresh
// Message; re-reading after an edit replaces prior state wholly.
func Read(path, marker string) (Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read commit message: %w", err)
	}
	defer f.Close()

	if marker == "" {
		marker = DefaultCommentMarker
	}

	var msg Message
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), marker) {
			continue
		}
		msg = append(msg, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read commit message: %w", err)
	}

	return msg, nil
}

// Subject returns the first line, or "" for an empty message.
func (m Message) Subject() string {
	if len(m) == 0 {
		return ""
	}
	return m[0]
}

// Line returns the 1-indexed line n, or "" if out of range.
func (m Message) Line(n int) string {
	if n < 1 || n > len(m) {
		return ""
	}
	return m[n-1]
}

// IsEmpty reports whether the message has no content at all, counting
// whitespace-only lines as no content.
func (m Message) IsEmpty() bool {
	for _, line := range m {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}

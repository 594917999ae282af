// Package rules validates a commit message against a fixed set of style
// checks and collects the violations per line.
package rules

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"msglint/internal/message"
)

const (
	subjectLimit = 50
	bodyLimit    = 72
)

var (
	// Uppercase word or a run of digits, after any leading blank or
	// punctuation, terminated by whitespace, punctuation or end of line.
	capitalizedRe = regexp.MustCompile(`^[[:blank:][:punct:]]*([[:upper:]][[:lower:]]*|[[:digit:]]+)([[:space:][:punct:]]|$)`)

	// A line that is nothing but a URL is exempt from the body limit.
	urlLineRe = regexp.MustCompile(`^(https?|ftp|file)://[-A-Za-z0-9+&@#/%?=~_|!:,.;]*$`)
)

// Finding is a single rule violation tied to a 1-indexed line.
type Finding struct {
	Line int
	Text string
}

// Check inspects a message and reports zero or more findings. Checks are
// stateless; their order only decides display order when several flag the
// same line.
type Check func(message.Message) []Finding

var checks = []Check{
	checkSubjectBodySeparator,
	checkSubjectLength,
	checkSubjectCapitalized,
	checkSubjectTrailingPeriod,
	checkImperativeMood,
	checkBodyLineLength,
	checkExplainsWhatAndWhy,
	checkSingleWordSubject,
	checkSubjectLeadingWhitespace,
}

// Validate runs every check against msg and returns a fresh WarningSet.
// Messages with no content skip validation entirely; whether an empty
// commit message is allowed at all is git's decision, not ours.
func Validate(msg message.Message) *WarningSet {
	ws := NewWarningSet()
	if msg.IsEmpty() {
		return ws
	}
	for _, check := range checks {
		for _, f := range check(msg) {
			ws.Add(f.Line, f.Text)
		}
	}
	return ws
}

// WarningSet maps 1-indexed line numbers to the warnings raised for them,
// preserving attachment order per line. A line is present only if at least
// one check flagged it.
type WarningSet struct {
	byLine map[int][]string
}

func NewWarningSet() *WarningSet {
	return &WarningSet{byLine: make(map[int][]string)}
}

// Add appends a warning to the given line.
func (ws *WarningSet) Add(line int, text string) {
	ws.byLine[line] = append(ws.byLine[line], text)
}

// Empty reports whether no line was flagged.
func (ws *WarningSet) Empty() bool {
	return len(ws.byLine) == 0
}

// Lines returns the flagged line numbers in ascending order.
func (ws *WarningSet) Lines() []int {
	lines := make([]int, 0, len(ws.byLine))
	for n := range ws.byLine {
		lines = append(lines, n)
	}
	sort.Ints(lines)
	return lines
}

// For returns the warnings attached to a line, in attachment order.
func (ws *WarningSet) For(line int) []string {
	return ws.byLine[line]
}

// Count returns the total number of warnings across all lines.
func (ws *WarningSet) Count() int {
	total := 0
	for _, msgs := range ws.byLine {
		total += len(msgs)
	}
	return total
}

// Rule 1: a message with a body needs a blank line after the subject.
// Single-line messages have no body and pass.
func checkSubjectBodySeparator(msg message.Message) []Finding {
	if len(msg) >= 2 && msg.Line(2) != "" {
		return []Finding{{Line: 2, Text: "Separate subject from body with a blank line"}}
	}
	return nil
}

// Rule 2: subject at most 50 characters.
func checkSubjectLength(msg message.Message) []Finding {
	n := utf8.RuneCountInString(msg.Subject())
	if n > subjectLimit {
		return []Finding{{
			Line: 1,
			Text: fmt.Sprintf("Limit the subject line to %d characters (%d characters)", subjectLimit, n),
		}}
	}
	return nil
}

// Rule 3: subject starts with a capitalized word or a number.
func checkSubjectCapitalized(msg message.Message) []Finding {
	if !capitalizedRe.MatchString(msg.Subject()) {
		return []Finding{{Line: 1, Text: "Capitalize the subject line"}}
	}
	return nil
}

// Rule 4: no trailing period on the subject.
func checkSubjectTrailingPeriod(msg message.Message) []Finding {
	if strings.HasSuffix(msg.Subject(), ".") {
		return []Finding{{Line: 1, Text: "Do not end the subject line with a period"}}
	}
	return nil
}

// Rule 5: subject uses the imperative mood. The blacklist holds past and
// gerund forms of common verbs; the first hit flags the subject once.
func checkImperativeMood(msg message.Message) []Finding {
	subject := strings.ToLower(msg.Subject())
	for _, word := range imperativeMoodBlacklist {
		if strings.Contains(subject, word) {
			return []Finding{{
				Line: 1,
				Text: fmt.Sprintf("Use the imperative mood in the subject line (found %q)", word),
			}}
		}
	}
	return nil
}

// Rule 6: every line wraps at 72 characters. Lines that are a bare URL
// are exempt, since URLs cannot be wrapped.
func checkBodyLineLength(msg message.Message) []Finding {
	var findings []Finding
	for i, line := range msg {
		n := utf8.RuneCountInString(line)
		if n <= bodyLimit || urlLineRe.MatchString(line) {
			continue
		}
		findings = append(findings, Finding{
			Line: i + 1,
			Text: fmt.Sprintf("Wrap the body at %d characters (%d characters)", bodyLimit, n),
		})
	}
	return findings
}

// Rule 7: the body should explain what and why, not how. There is no
// mechanical check for that, so this always passes.
func checkExplainsWhatAndWhy(message.Message) []Finding {
	return nil
}

// Rule 8: more than one word in the subject.
func checkSingleWordSubject(msg message.Message) []Finding {
	if len(strings.Fields(msg.Subject())) <= 1 {
		return []Finding{{Line: 1, Text: "Do not write single-word commits"}}
	}
	return nil
}

// Rule 9: no leading whitespace on the subject.
func checkSubjectLeadingWhitespace(msg message.Message) []Finding {
	subject := msg.Subject()
	if subject == "" {
		return nil
	}
	if r, _ := utf8.DecodeRuneInString(subject); unicode.IsSpace(r) {
		return []Finding{{Line: 1, Text: "Do not start the subject line with whitespace"}}
	}
	return nil
}

package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"msglint/internal/message"
	"msglint/internal/rules"
)

// lineColumnWidth is the column the [line N] tags line up at. Subjects and
// wrapped body lines fit well inside it; overlong lines push their tag out
// instead of being truncated.
const lineColumnWidth = 56

// RenderReport renders every flagged line followed by its warnings:
//
//	Fixed the thing.                     [line 1]
//	  Use the imperative mood in the subject line (found "fixed")
//	  Do not end the subject line with a period
func RenderReport(msg message.Message, ws *rules.WarningSet) string {
	var b strings.Builder
	for _, n := range ws.Lines() {
		text := runewidth.FillRight(msg.Line(n), lineColumnWidth)
		b.WriteString(lineStyle.Render(text))
		b.WriteString(" ")
		b.WriteString(tagStyle.Render(fmt.Sprintf("[line %d]", n)))
		b.WriteString("\n")
		for _, warning := range ws.For(n) {
			b.WriteString("  ")
			b.WriteString(warningStyle.Render(warning))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Prompt renders the decision prompt shown under the report or help text.
func Prompt() string {
	return promptStyle.Render("Proceed with commit? [e/y/n/?]") + " "
}

// Help renders the explanation of the prompt choices.
func Help() string {
	choices := []struct{ key, desc string }{
		{"e", "edit the commit message and check it again"},
		{"y", "proceed with the commit anyway"},
		{"n", "abort the commit"},
		{"?", "show this help"},
	}

	var b strings.Builder
	for _, c := range choices {
		b.WriteString(keyStyle.Render(c.key))
		b.WriteString(helpStyle.Render(" - " + c.desc))
		b.WriteString("\n")
	}
	return b.String()
}

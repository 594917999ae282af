package rules

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msglint/internal/message"
)

func warningsFor(ws *WarningSet, line int) string {
	return strings.Join(ws.For(line), "; ")
}

func TestValidateEmptyMessage(t *testing.T) {
	tests := []struct {
		name string
		msg  message.Message
	}{
		{"nil", nil},
		{"single blank", message.Message{""}},
		{"blank lines", message.Message{"", "", ""}},
		{"whitespace only", message.Message{"   ", "\t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Validate(tt.msg).Empty())
		})
	}
}

func TestSubjectLength(t *testing.T) {
	ok := "Polish " + strings.Repeat("x", 43) // exactly 50
	long := "Polish " + strings.Repeat("x", 44)
	require.Len(t, ok, 50)
	require.Len(t, long, 51)

	ws := Validate(message.Message{ok})
	assert.NotContains(t, warningsFor(ws, 1), "Limit the subject line")

	ws = Validate(message.Message{long})
	assert.Contains(t, warningsFor(ws, 1), "Limit the subject line to 50 characters (51 characters)")
}

func TestSubjectCapitalization(t *testing.T) {
	tests := []struct {
		subject string
		flagged bool
	}{
		{"Polish the docs", false},
		{"polish the docs", true},
		{"POLISH the docs", true},
		{"123 things to do", false},
		{"'Quoted' subject here", false},
		{"  Polish the docs", false},
	}

	for _, tt := range tests {
		t.Run(tt.subject, func(t *testing.T) {
			ws := Validate(message.Message{tt.subject})
			got := strings.Contains(warningsFor(ws, 1), "Capitalize the subject line")
			assert.Equal(t, tt.flagged, got)
		})
	}
}

func TestSubjectTrailingPeriod(t *testing.T) {
	ws := Validate(message.Message{"Polish the docs."})
	assert.Contains(t, warningsFor(ws, 1), "Do not end the subject line with a period")

	ws = Validate(message.Message{"Polish the docs"})
	assert.NotContains(t, warningsFor(ws, 1), "period")
}

func TestImperativeMood(t *testing.T) {
	tests := []struct {
		subject string
		found   string
	}{
		{"Fixed the build", "fixed"},
		{"FIXES the build", "fixes"},
		{"fixing the build", "fixing"},
		{"Updating deps again", "updating"},
		{"Polish the docs", ""},
	}

	for _, tt := range tests {
		t.Run(tt.subject, func(t *testing.T) {
			ws := Validate(message.Message{tt.subject})

			hits := 0
			for _, w := range ws.For(1) {
				if strings.Contains(w, "imperative mood") {
					hits++
					assert.Contains(t, w, fmt.Sprintf("%q", tt.found))
				}
			}

			if tt.found == "" {
				assert.Zero(t, hits)
			} else {
				// First match flags once, then scanning stops.
				assert.Equal(t, 1, hits)
			}
		})
	}
}

func TestBodyLineLength(t *testing.T) {
	subject := "Polish the docs"

	t.Run("72 characters passes", func(t *testing.T) {
		ws := Validate(message.Message{subject, "", strings.Repeat("y", 72)})
		assert.Empty(t, ws.For(3))
	})

	t.Run("73 characters flagged with count", func(t *testing.T) {
		ws := Validate(message.Message{subject, "", strings.Repeat("y", 73)})
		assert.Contains(t, warningsFor(ws, 3), "Wrap the body at 72 characters (73 characters)")
	})

	t.Run("long subject flagged on line 1 too", func(t *testing.T) {
		ws := Validate(message.Message{"Polish " + strings.Repeat("y", 70)})
		assert.Contains(t, warningsFor(ws, 1), "Wrap the body at 72 characters")
	})

	t.Run("bare URL exempt", func(t *testing.T) {
		url := "https://example.com/" + strings.Repeat("a/", 40)
		require.Greater(t, len(url), 72)
		ws := Validate(message.Message{subject, "", url})
		assert.Empty(t, ws.For(3))
	})

	t.Run("URL with prefix text not exempt", func(t *testing.T) {
		line := "see https://example.com/" + strings.Repeat("a/", 40)
		ws := Validate(message.Message{subject, "", line})
		assert.Contains(t, warningsFor(ws, 3), "Wrap the body")
	})
}

func TestSingleWordSubject(t *testing.T) {
	ws := Validate(message.Message{"Polish"})
	assert.Contains(t, warningsFor(ws, 1), "single-word")

	ws = Validate(message.Message{"Polish the docs"})
	assert.NotContains(t, warningsFor(ws, 1), "single-word")
}

func TestSubjectLeadingWhitespace(t *testing.T) {
	ws := Validate(message.Message{" Polish the docs"})
	assert.Contains(t, warningsFor(ws, 1), "Do not start the subject line with whitespace")

	ws = Validate(message.Message{"Polish the docs"})
	assert.NotContains(t, warningsFor(ws, 1), "whitespace")
}

func TestSubjectBodySeparator(t *testing.T) {
	t.Run("missing blank line flags line 2", func(t *testing.T) {
		ws := Validate(message.Message{"Polish the docs", "body right away"})
		assert.Contains(t, warningsFor(ws, 2), "Separate subject from body with a blank line")
	})

	t.Run("single-line message needs no separator", func(t *testing.T) {
		ws := Validate(message.Message{"Polish the docs"})
		assert.True(t, ws.Empty())
	})

	t.Run("blank separator passes", func(t *testing.T) {
		ws := Validate(message.Message{"Polish the docs", "", "body"})
		assert.Empty(t, ws.For(2))
	})
}

func TestScenarioFixTheThing(t *testing.T) {
	ws := Validate(message.Message{"Fix the thing.", "", "More details here."})

	line1 := warningsFor(ws, 1)
	assert.Contains(t, line1, "Do not end the subject line with a period")
	assert.Contains(t, line1, "imperative mood")
	assert.Empty(t, ws.For(2))
	assert.Empty(t, ws.For(3))
}

func TestScenarioBareUpdate(t *testing.T) {
	ws := Validate(message.Message{"update"})

	line1 := warningsFor(ws, 1)
	assert.Contains(t, line1, "Capitalize the subject line")
	assert.Contains(t, line1, "imperative mood")
	assert.Contains(t, line1, "single-word")
	assert.Equal(t, 3, ws.Count())
}

func TestScenarioLongBodyLine(t *testing.T) {
	ws := Validate(message.Message{"Add support for feature X", "", strings.Repeat("z", 80)})

	assert.Equal(t, []int{1, 3}, ws.Lines())
	assert.Contains(t, warningsFor(ws, 1), "imperative mood")
	assert.Equal(t, 1, len(ws.For(1)))
	assert.Contains(t, warningsFor(ws, 3), "Wrap the body at 72 characters (80 characters)")
}

func TestValidateIsDeterministic(t *testing.T) {
	msg := message.Message{"fixed everything.", "body without separator", strings.Repeat("z", 90)}

	first := Validate(msg)
	second := Validate(msg)

	require.Equal(t, first.Lines(), second.Lines())
	for _, n := range first.Lines() {
		assert.Equal(t, first.For(n), second.For(n))
	}
}

func TestWarningSetPreservesAttachmentOrder(t *testing.T) {
	ws := NewWarningSet()
	ws.Add(1, "first")
	ws.Add(3, "third line")
	ws.Add(1, "second")

	assert.Equal(t, []int{1, 3}, ws.Lines())
	assert.Equal(t, []string{"first", "second"}, ws.For(1))
	assert.Equal(t, 3, ws.Count())
	assert.False(t, ws.Empty())
}

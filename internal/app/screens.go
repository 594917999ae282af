package app

// Screen represents the current view in the application
type Screen int

const (
	// ScreenReport shows the warning report above the prompt.
	ScreenReport Screen = iota
	// ScreenHelp shows the choice help instead of re-rendering the
	// report. Entered on any unrecognized input, left on the next
	// validation pass after an edit.
	ScreenHelp
)

func (s Screen) String() string {
	names := []string{
		"Report",
		"Help",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// Decision is the outcome the controller reaches before quitting.
type Decision int

const (
	DecisionNone Decision = iota
	DecisionAccept
	DecisionReject
)

package entities

// PresenceState classifies a file across the current commit and its parent.
type PresenceState int

const (
	PresentInNeither PresenceState = iota
	PresentOnlyInPrevious
	PresentOnlyInCurrent
	PresentInBoth
)

// NewPresenceState combines the two existence probes into a PresenceState.
func NewPresenceState(inCurrent, inPrevious bool) PresenceState {
	switch {
	case inCurrent && inPrevious:
		return PresentInBoth
	case inCurrent:
		return PresentOnlyInCurrent
	case inPrevious:
		return PresentOnlyInPrevious
	default:
		return PresentInNeither
	}
}

// InCurrent reports whether the file exists in the current commit.
func (s PresenceState) InCurrent() bool {
	return s == PresentInBoth || s == PresentOnlyInCurrent
}

// InPrevious reports whether the file exists in the parent commit.
func (s PresenceState) InPrevious() bool {
	return s == PresentInBoth || s == PresentOnlyInPrevious
}

func (s PresenceState) String() string {
	switch s {
	case PresentInNeither:
		return "present-in-neither"
	case PresentOnlyInPrevious:
		return "present-only-in-previous"
	case PresentOnlyInCurrent:
		return "present-only-in-current"
	case PresentInBoth:
		return "present-in-both"
	default:
		return "unknown"
	}
}

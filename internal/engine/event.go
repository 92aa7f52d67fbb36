package engine

// EventKind tags an input event.
type EventKind int

const (
	// EventTextChanged carries the in-progress input of the active word.
	EventTextChanged EventKind = iota
	// EventWordSubmitted carries the final input of the active word.
	EventWordSubmitted
	// EventWordCleared asks to reopen the previous word.
	EventWordCleared
)

func (k EventKind) String() string {
	switch k {
	case EventTextChanged:
		return "text-changed"
	case EventWordSubmitted:
		return "word-submitted"
	case EventWordCleared:
		return "word-cleared"
	default:
		return "unknown"
	}
}

// Event is a single input event from the presentation layer.
type Event struct {
	Kind  EventKind
	Input string
}

// TextChanged builds an EventTextChanged.
func TextChanged(input string) Event {
	return Event{Kind: EventTextChanged, Input: input}
}

// WordSubmitted builds an EventWordSubmitted.
func WordSubmitted(input string) Event {
	return Event{Kind: EventWordSubmitted, Input: input}
}

// WordCleared builds an EventWordCleared.
func WordCleared() Event {
	return Event{Kind: EventWordCleared}
}

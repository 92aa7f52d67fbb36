package engine

// WordView is the render state of one word.
type WordView struct {
	Text      string
	Verdicts  []Verdict
	Active    bool
	Submitted bool
}

// RowView is the render state of one row.
type RowView struct {
	Index int
	Words []WordView
}

// Snapshot is a read-only projection of the session for display.
type Snapshot struct {
	State       State
	Cursor      Position
	Input       string
	WindowStart int
	WindowEnd   int
	Rows        []RowView

	Remaining  int
	Duration   int
	TimerState TimerState

	CorrectChars int
	CorrectWords int
	TotalWords   int
	TotalChars   int
	MatchedChars int
}

// Elapsed returns the number of ticks consumed by the countdown. The
// expiring tick takes Remaining from 0 to -1, so an expired timer reports
// Duration+1.
func (s Snapshot) Elapsed() int {
	if s.TimerState == TimerIdle {
		return 0
	}
	return s.Duration - s.Remaining
}

// Snapshot projects the visible window with per-character verdicts. Reopened
// words show as pending since they are editable again.
func (s *Session) Snapshot() Snapshot {
	pos := s.cursor.Position()
	start, end := s.buf.Layout().VisibleWindow(pos.Row)
	if end > s.buf.Len() {
		end = s.buf.Len()
	}
	snap := Snapshot{
		State:        s.state,
		Cursor:       pos,
		Input:        s.input,
		WindowStart:  start,
		WindowEnd:    end,
		Rows:         make([]RowView, 0, end-start),
		Remaining:    s.timer.Remaining(),
		Duration:     s.timer.Duration(),
		TimerState:   s.timer.State(),
		CorrectChars: s.log.CorrectCharCount(),
		CorrectWords: s.log.CorrectWordCount(),
		TotalWords:   s.log.TotalWordCount(),
		TotalChars:   s.log.TotalCharCount(),
		MatchedChars: s.log.MatchedCharCount(),
	}
	for r := start; r < end; r++ {
		words, err := s.buf.Row(r)
		if err != nil {
			continue
		}
		row := RowView{Index: r, Words: make([]WordView, 0, len(words))}
		for c, word := range words {
			at := Position{Row: r, Column: c}
			view := WordView{Text: word}
			switch cmp, ok := s.finals[at]; {
			case at == pos:
				view.Active = true
				view.Verdicts = s.live.Verdicts
			case ok:
				view.Submitted = true
				view.Verdicts = cmp.Verdicts
			default:
				view.Verdicts = Compare(word, "", Typing).Verdicts
			}
			row.Words = append(row.Words, view)
		}
		snap.Rows = append(snap.Rows, row)
	}
	return snap
}

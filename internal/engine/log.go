package engine

import "unicode/utf8"

// Outcome records one submitted word.
type Outcome struct {
	Word         string
	FullyCorrect bool
	CorrectChars int
}

// Log is an append-only record of submitted words with single-step undo.
type Log struct {
	entries []Outcome
}

// Append records an outcome.
func (l *Log) Append(o Outcome) {
	l.entries = append(l.entries, o)
}

// RemoveLast drops and returns the newest outcome.
func (l *Log) RemoveLast() (Outcome, error) {
	if len(l.entries) == 0 {
		return Outcome{}, ErrEmptyLog
	}
	last := l.entries[len(l.entries)-1]
	l.entries = l.entries[:len(l.entries)-1]
	return last, nil
}

// Clear empties the log.
func (l *Log) Clear() {
	l.entries = nil
}

// Len returns the number of recorded outcomes.
func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the recorded outcomes in submission order.
func (l *Log) Entries() []Outcome {
	out := make([]Outcome, len(l.entries))
	copy(out, l.entries)
	return out
}

// CorrectCharCount sums correct characters of fully correct words only.
func (l *Log) CorrectCharCount() int {
	total := 0
	for _, e := range l.entries {
		if e.FullyCorrect {
			total += e.CorrectChars
		}
	}
	return total
}

// CorrectWordCount counts fully correct words.
func (l *Log) CorrectWordCount() int {
	count := 0
	for _, e := range l.entries {
		if e.FullyCorrect {
			count++
		}
	}
	return count
}

// TotalWordCount counts all submitted words.
func (l *Log) TotalWordCount() int {
	return len(l.entries)
}

// TotalCharCount sums the lengths of all submitted target words.
func (l *Log) TotalCharCount() int {
	total := 0
	for _, e := range l.entries {
		total += utf8.RuneCountInString(e.Word)
	}
	return total
}

// MatchedCharCount sums correct characters over all words, partial ones
// included.
func (l *Log) MatchedCharCount() int {
	total := 0
	for _, e := range l.entries {
		total += e.CorrectChars
	}
	return total
}

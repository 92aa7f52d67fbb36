package engine

import (
	"errors"
	"testing"
	"time"
)

func newTestSession(t *testing.T, src WordSource) (*Session, *manualScheduler) {
	t.Helper()
	sched := &manualScheduler{}
	cfg := Config{
		Layout:   Layout{WordsPerRow: 3, VisibleRows: 3},
		Duration: 5,
		Interval: time.Second,
	}
	s, err := NewSession(cfg, src, sched)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s, sched
}

func TestNewSessionWithoutWords(t *testing.T) {
	sched := &manualScheduler{}
	cfg := Config{Layout: Layout{WordsPerRow: 3, VisibleRows: 3}, Duration: 5, Interval: time.Second}
	if _, err := NewSession(cfg, &fixedSource{}, sched); !errors.Is(err, ErrNoWordsAvailable) {
		t.Fatalf("expected ErrNoWordsAvailable, got %v", err)
	}
	if _, err := NewSession(cfg, &fixedSource{words: []string{""}}, sched); !errors.Is(err, ErrNoWordsAvailable) {
		t.Fatalf("expected ErrNoWordsAvailable for empty word, got %v", err)
	}
}

func TestFirstKeystrokeStartsClock(t *testing.T) {
	s, sched := newTestSession(t, &fixedSource{words: []string{"cat"}})
	if s.State() != NotStarted {
		t.Fatalf("expected not started, got %s", s.State())
	}
	if err := s.Handle(TextChanged("c")); err != nil {
		t.Fatalf("text changed: %v", err)
	}
	if s.State() != Active || s.Timer().State() != TimerRunning {
		t.Fatalf("expected active session with running timer")
	}
	if sched.live() != 1 {
		t.Fatalf("expected one pending tick, got %d", sched.live())
	}
	if s.Log().Len() != 0 {
		t.Fatalf("text changes must not touch the log")
	}
	snap := s.Snapshot()
	active := snap.Rows[0].Words[0]
	if !active.Active || active.Verdicts[0] != Correct || active.Verdicts[1] != Pending {
		t.Fatalf("unexpected live verdicts: %+v", active)
	}
}

func TestSubmitRecordsOutcomeAndAdvances(t *testing.T) {
	s, _ := newTestSession(t, &fixedSource{words: []string{"cat"}})
	if err := s.Handle(WordSubmitted("ca")); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.Cursor() != (Position{Row: 0, Column: 1}) {
		t.Fatalf("expected cursor at (0,1), got %+v", s.Cursor())
	}
	entries := s.Log().Entries()
	if len(entries) != 1 || entries[0].FullyCorrect || entries[0].CorrectChars != 2 {
		t.Fatalf("unexpected outcome: %+v", entries)
	}
	snap := s.Snapshot()
	first := snap.Rows[0].Words[0]
	if !first.Submitted || first.Verdicts[2] != Incorrect {
		t.Fatalf("expected finalized verdicts, got %+v", first)
	}
	if snap.CorrectChars != 0 || snap.CorrectWords != 0 || snap.TotalWords != 1 || snap.MatchedChars != 2 {
		t.Fatalf("unexpected counters: %+v", snap)
	}

	if err := s.Handle(WordSubmitted("cat")); err != nil {
		t.Fatalf("submit: %v", err)
	}
	snap = s.Snapshot()
	if snap.CorrectChars != 3 || snap.CorrectWords != 1 || snap.TotalChars != 6 {
		t.Fatalf("unexpected counters: %+v", snap)
	}
}

func TestUnsubmitRoundTrip(t *testing.T) {
	s, _ := newTestSession(t, &fixedSource{words: []string{"cat", "dog"}})
	for _, in := range []string{"cat", "dog", "cat"} {
		if err := s.Handle(WordSubmitted(in)); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	before := s.Cursor()
	logLen := s.Log().Len()
	if err := s.Handle(WordSubmitted("xx")); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := s.Handle(WordCleared()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if s.Cursor() != before {
		t.Fatalf("expected cursor %+v, got %+v", before, s.Cursor())
	}
	if s.Log().Len() != logLen {
		t.Fatalf("expected log length %d, got %d", logLen, s.Log().Len())
	}
	snap := s.Snapshot()
	reopened := snap.Rows[1].Words[0]
	if !reopened.Active || reopened.Submitted {
		t.Fatalf("expected reopened word to be active: %+v", reopened)
	}
	for i, v := range reopened.Verdicts {
		if v != Pending {
			t.Fatalf("expected pending verdict at %d, got %s", i, v)
		}
	}
}

func TestUnsubmitAtOriginIsNoop(t *testing.T) {
	s, _ := newTestSession(t, &fixedSource{words: []string{"cat"}})
	if err := s.Handle(WordCleared()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if s.Cursor() != (Position{}) || s.State() != NotStarted {
		t.Fatalf("expected untouched session")
	}
}

func TestExpiryStopsSession(t *testing.T) {
	s, sched := newTestSession(t, &fixedSource{words: []string{"cat"}})
	if err := s.Handle(WordSubmitted("cat")); err != nil {
		t.Fatalf("submit: %v", err)
	}
	for i := 1; i <= 6; i++ {
		sched.fire()
		if got := s.Snapshot().Elapsed(); got != i {
			t.Fatalf("after tick %d: elapsed %d", i, got)
		}
	}
	if s.State() != Stopped {
		t.Fatalf("expected stopped, got %s", s.State())
	}
	snap := s.Snapshot()
	if snap.Remaining != -1 || snap.Elapsed() != 6 {
		t.Fatalf("unexpected timer projection: remaining=%d elapsed=%d", snap.Remaining, snap.Elapsed())
	}
	for _, ev := range []Event{TextChanged("c"), WordSubmitted("cat"), WordCleared()} {
		if err := s.Handle(ev); err != nil {
			t.Fatalf("%s after stop: %v", ev.Kind, err)
		}
	}
	if s.Log().Len() != 1 || s.Cursor() != (Position{Row: 0, Column: 1}) {
		t.Fatalf("events after stop must be no-ops")
	}
	if err := s.Start(); err != nil {
		t.Fatalf("start after stop: %v", err)
	}
	if s.State() != Stopped {
		t.Fatalf("start must not revive a stopped session")
	}
}

func TestStartRequest(t *testing.T) {
	s, sched := newTestSession(t, &fixedSource{words: []string{"cat"}})
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	sched.fire()
	if err := s.Start(); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("expected ErrAlreadyRunning, got %v", err)
	}
	if s.Timer().Remaining() != 4 {
		t.Fatalf("start while running must not reset remaining, got %d", s.Timer().Remaining())
	}
}

func TestResetIdempotent(t *testing.T) {
	s, sched := newTestSession(t, &countingSource{})
	for i := 0; i < 7; i++ {
		if err := s.Handle(WordSubmitted("x")); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	sched.fire()

	type view struct {
		state     State
		cursor    Position
		logLen    int
		timer     TimerState
		remaining int
		rows      int
		input     string
	}
	capture := func() view {
		snap := s.Snapshot()
		return view{snap.State, snap.Cursor, s.Log().Len(), snap.TimerState, snap.Remaining, s.Buffer().Len(), snap.Input}
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	once := capture()
	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	twice := capture()
	if once != twice {
		t.Fatalf("expected idempotent reset: %+v vs %+v", once, twice)
	}
	want := view{NotStarted, Position{}, 0, TimerIdle, 5, 3, ""}
	if once != want {
		t.Fatalf("unexpected reset state %+v", once)
	}
	if sched.live() != 0 {
		t.Fatalf("expected no pending ticks after reset")
	}
}

func TestResetFailureKeepsSession(t *testing.T) {
	src := &countingSource{limit: 9}
	s, _ := newTestSession(t, src)
	if err := s.Handle(WordSubmitted("w1")); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := s.Reset(); !errors.Is(err, ErrNoWordsAvailable) {
		t.Fatalf("expected ErrNoWordsAvailable, got %v", err)
	}
	if s.Log().Len() != 1 || s.State() != Active {
		t.Fatalf("failed reset must not mutate the session")
	}
}

func TestSnapshotWindowFollowsCursor(t *testing.T) {
	s, _ := newTestSession(t, &countingSource{})
	for i := 0; i < 9; i++ {
		if err := s.Handle(WordSubmitted("")); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	snap := s.Snapshot()
	if snap.WindowStart != 2 || snap.WindowEnd != 5 || len(snap.Rows) != 3 {
		t.Fatalf("unexpected window [%d,%d) with %d rows", snap.WindowStart, snap.WindowEnd, len(snap.Rows))
	}
	if snap.Rows[1].Index != 3 || !snap.Rows[1].Words[0].Active {
		t.Fatalf("expected active word on second visible row")
	}
}

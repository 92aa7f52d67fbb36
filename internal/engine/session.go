package engine

import (
	"fmt"
	"time"
)

// State is the session lifecycle state.
type State int

const (
	// NotStarted is the state before the first keystroke or start request.
	NotStarted State = iota
	// Active is the state while the countdown runs.
	Active
	// Stopped is the state after expiry, until reset.
	Stopped
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Active:
		return "active"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Config fixes the session shape at construction.
type Config struct {
	Layout   Layout
	Duration int
	Interval time.Duration
}

// Session wires the buffer, cursor, statistics log and countdown timer and
// serializes every mutation through Handle, Start and Reset.
type Session struct {
	cfg Config
	src WordSource

	buf    *Buffer
	cursor *Cursor
	log    Log
	timer  *Timer
	state  State

	input  string
	live   Comparison
	finals map[Position]Comparison
}

// NewSession builds a session over src. Ticks are delivered through sched.
func NewSession(cfg Config, src WordSource, sched Scheduler) (*Session, error) {
	if cfg.Duration < 1 {
		return nil, fmt.Errorf("session duration must be >= 1, got %d", cfg.Duration)
	}
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("tick interval must be > 0, got %s", cfg.Interval)
	}
	s := &Session{
		cfg:   cfg,
		src:   src,
		timer: NewTimer(cfg.Duration, cfg.Interval, sched),
	}
	s.timer.OnExpire(s.expire)
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Timer exposes the countdown for read access.
func (s *Session) Timer() *Timer {
	return s.timer
}

// Log exposes the statistics log for read access.
func (s *Session) Log() *Log {
	return &s.log
}

// Cursor returns the active word position.
func (s *Session) Cursor() Position {
	return s.cursor.Position()
}

// Buffer exposes the word buffer for read access.
func (s *Session) Buffer() *Buffer {
	return s.buf
}

// Start begins the countdown without a keystroke. ErrAlreadyRunning is
// returned while active; a stopped session must be reset first.
func (s *Session) Start() error {
	switch s.state {
	case Active:
		return ErrAlreadyRunning
	case Stopped:
		return nil
	}
	return s.activate()
}

// Handle applies one input event. Events on a stopped session are ignored;
// the first text or submit event on a fresh session starts the countdown.
func (s *Session) Handle(ev Event) error {
	if s.state == Stopped {
		return nil
	}
	switch ev.Kind {
	case EventTextChanged:
		if err := s.ensureActive(); err != nil {
			return err
		}
		return s.textChanged(ev.Input)
	case EventWordSubmitted:
		if err := s.ensureActive(); err != nil {
			return err
		}
		return s.submit(ev.Input)
	case EventWordCleared:
		return s.unsubmit()
	default:
		return fmt.Errorf("unknown event kind %d", ev.Kind)
	}
}

// Reset discards the words, cursor and statistics, resets the countdown and
// returns to NotStarted. On error the session is left unchanged.
func (s *Session) Reset() error {
	buf, err := newBufferFrom(s.cfg.Layout, s.src)
	if err != nil {
		return err
	}
	s.timer.Reset()
	s.install(buf)
	return nil
}

func (s *Session) install(buf *Buffer) {
	s.buf = buf
	s.cursor = NewCursor(buf, s.src)
	s.log.Clear()
	s.state = NotStarted
	s.input = ""
	s.finals = map[Position]Comparison{}
	s.live = s.pending()
}

func (s *Session) ensureActive() error {
	if s.state == Active {
		return nil
	}
	return s.activate()
}

func (s *Session) activate() error {
	if err := s.timer.Start(); err != nil {
		return err
	}
	s.state = Active
	return nil
}

func (s *Session) expire() {
	s.state = Stopped
}

func (s *Session) textChanged(input string) error {
	word, err := s.cursor.Word()
	if err != nil {
		return err
	}
	s.input = input
	s.live = Compare(word, input, Typing)
	return nil
}

func (s *Session) submit(input string) error {
	pos := s.cursor.Position()
	word, err := s.cursor.Word()
	if err != nil {
		return err
	}
	cmp := Compare(word, input, Final)
	if err := s.cursor.Advance(); err != nil {
		return fmt.Errorf("failed to advance cursor: %w", err)
	}
	s.log.Append(Outcome{Word: word, FullyCorrect: cmp.FullyCorrect, CorrectChars: cmp.CorrectChars})
	s.finals[pos] = cmp
	s.input = ""
	s.live = s.pending()
	return nil
}

func (s *Session) unsubmit() error {
	if !s.cursor.Retreat() {
		return nil
	}
	if _, err := s.log.RemoveLast(); err != nil {
		return fmt.Errorf("statistics out of step with cursor at %+v: %w", s.cursor.Position(), err)
	}
	delete(s.finals, s.cursor.Position())
	s.input = ""
	s.live = s.pending()
	return nil
}

func (s *Session) pending() Comparison {
	word, err := s.cursor.Word()
	if err != nil {
		return Comparison{}
	}
	return Compare(word, "", Typing)
}

package engine

import (
	"fmt"
	"time"
)

// Scheduler runs fire once after d, serially with every other event the
// session handles. The returned function cancels a pending call.
type Scheduler interface {
	After(d time.Duration, fire func()) (cancel func())
}

// TimerState is the countdown state.
type TimerState int

const (
	// TimerIdle is the state before start and after reset.
	TimerIdle TimerState = iota
	// TimerRunning is the state while ticks are scheduled.
	TimerRunning
	// TimerExpired is the terminal state after the countdown passed zero.
	TimerExpired
)

func (s TimerState) String() string {
	switch s {
	case TimerIdle:
		return "idle"
	case TimerRunning:
		return "running"
	case TimerExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Timer counts down whole time units, one tick per interval. Remaining
// reaches -1 on expiry.
type Timer struct {
	duration int
	interval time.Duration
	sched    Scheduler

	state     TimerState
	remaining int
	cancel    func()

	onUpdate func(remaining int)
	onExpire func()
}

// NewTimer returns an idle timer of duration units of interval each.
func NewTimer(duration int, interval time.Duration, sched Scheduler) *Timer {
	return &Timer{
		duration:  duration,
		interval:  interval,
		sched:     sched,
		remaining: duration,
	}
}

// OnUpdate registers the callback invoked with the remaining units after
// every non-terminal tick.
func (t *Timer) OnUpdate(fn func(remaining int)) {
	t.onUpdate = fn
}

// OnExpire registers the callback invoked once when the countdown expires.
func (t *Timer) OnExpire(fn func()) {
	t.onExpire = fn
}

// State returns the timer state.
func (t *Timer) State() TimerState {
	return t.state
}

// Remaining returns the remaining time units, or -1 after expiry.
func (t *Timer) Remaining() int {
	return t.remaining
}

// Duration returns the configured countdown length.
func (t *Timer) Duration() int {
	return t.duration
}

// Start begins the countdown from the configured duration.
func (t *Timer) Start() error {
	return t.StartFrom(t.duration)
}

// StartFrom begins the countdown from units. It fails with
// ErrAlreadyRunning, leaving the running countdown untouched.
func (t *Timer) StartFrom(units int) error {
	if t.state == TimerRunning {
		return ErrAlreadyRunning
	}
	if units < 0 {
		return fmt.Errorf("timer duration must be >= 0, got %d", units)
	}
	t.remaining = units
	t.state = TimerRunning
	t.schedule()
	return nil
}

// Tick advances the countdown by one unit. It is a no-op unless running.
func (t *Timer) Tick() {
	if t.state != TimerRunning {
		return
	}
	t.stop()
	t.remaining--
	if t.remaining < 0 {
		t.remaining = -1
		t.state = TimerExpired
		if t.onExpire != nil {
			t.onExpire()
		}
		return
	}
	t.schedule()
	if t.onUpdate != nil {
		t.onUpdate(t.remaining)
	}
}

// Reset cancels any pending tick and returns to idle with a full duration.
func (t *Timer) Reset() {
	t.stop()
	t.state = TimerIdle
	t.remaining = t.duration
}

func (t *Timer) schedule() {
	t.stop()
	if t.sched == nil {
		return
	}
	t.cancel = t.sched.After(t.interval, t.Tick)
}

func (t *Timer) stop() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg struct {
	id int
}

// tickScheduler turns engine timer requests into tea.Tick commands so that
// ticks arrive through Update, serially with key presses. Cancelled ticks
// still arrive but find no callback.
type tickScheduler struct {
	next   int
	live   map[int]func()
	queued []tea.Cmd
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{live: map[int]func(){}}
}

func (s *tickScheduler) After(d time.Duration, fire func()) func() {
	s.next++
	id := s.next
	s.live[id] = fire
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	}))
	return func() { delete(s.live, id) }
}

func (s *tickScheduler) deliver(id int) {
	fire, ok := s.live[id]
	if !ok {
		return
	}
	delete(s.live, id)
	fire()
}

func (s *tickScheduler) drain() tea.Cmd {
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

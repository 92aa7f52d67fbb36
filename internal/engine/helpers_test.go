package engine

import (
	"errors"
	"fmt"
	"time"
)

type manualScheduler struct {
	pending []*scheduled
}

type scheduled struct {
	d         time.Duration
	fire      func()
	cancelled bool
}

func (m *manualScheduler) After(d time.Duration, fire func()) func() {
	s := &scheduled{d: d, fire: fire}
	m.pending = append(m.pending, s)
	return func() { s.cancelled = true }
}

func (m *manualScheduler) live() int {
	n := 0
	for _, s := range m.pending {
		if !s.cancelled {
			n++
		}
	}
	return n
}

// fire runs the oldest live callback and reports whether one existed.
func (m *manualScheduler) fire() bool {
	for len(m.pending) > 0 {
		s := m.pending[0]
		m.pending = m.pending[1:]
		if s.cancelled {
			continue
		}
		s.cancelled = true
		s.fire()
		return true
	}
	return false
}

type countingSource struct {
	n     int
	calls int
	limit int
}

func (c *countingSource) NextWord() (string, error) {
	if c.limit > 0 && c.calls >= c.limit {
		return "", errors.New("exhausted")
	}
	c.calls++
	c.n++
	return fmt.Sprintf("w%d", c.n), nil
}

type fixedSource struct {
	words []string
	i     int
}

func (f *fixedSource) NextWord() (string, error) {
	if len(f.words) == 0 {
		return "", errors.New("empty")
	}
	w := f.words[f.i%len(f.words)]
	f.i++
	return w, nil
}

func grid(rows, cols int) [][]string {
	out := make([][]string, rows)
	for r := range out {
		out[r] = make([]string, cols)
		for c := range out[r] {
			out[r][c] = fmt.Sprintf("r%dc%d", r, c)
		}
	}
	return out
}

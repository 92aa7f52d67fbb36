// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/speedcheck/internal/engine"
	"github.com/verte-zerg/speedcheck/internal/model"
	statsPkg "github.com/verte-zerg/speedcheck/internal/stats"
)

const title = "Typing Speed Check"

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	timerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	timerLowStyle    = timerStyle.Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	boardStyle       = lipgloss.NewStyle().
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
)

// Model implements the Bubble Tea typing UI.
type Model struct {
	config  model.Config
	session *engine.Session
	sched   *tickScheduler

	input textinput.Model
	keys  keyMap
	help  help.Model

	width  int
	height int

	err error
}

// NewModel constructs a typing TUI model over the given word source.
func NewModel(cfg model.Config, src engine.WordSource) (*Model, error) {
	sched := newTickScheduler()
	session, err := engine.NewSession(engine.Config{
		Layout: engine.Layout{
			WordsPerRow: cfg.WordsPerRow,
			VisibleRows: cfg.VisibleRows,
		},
		Duration: cfg.Duration,
		Interval: cfg.Tick,
	}, src, sched)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "start typing"
	input.Focus()

	return &Model{
		config:  cfg,
		session: session,
		sched:   sched,
		input:   input,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}, nil
}

// Err returns the error that aborted the session, if any.
func (m *Model) Err() error {
	return m.err
}

// Summary reports the session counters.
func (m *Model) Summary() model.Summary {
	snap := m.session.Snapshot()
	return model.Summary{
		Lang:         m.config.Lang,
		Duration:     snap.Duration,
		Elapsed:      snap.Elapsed(),
		Tick:         m.config.Tick,
		CorrectChars: snap.CorrectChars,
		CorrectWords: snap.CorrectWords,
		TotalWords:   snap.TotalWords,
		TotalChars:   snap.TotalChars,
		MatchedChars: snap.MatchedChars,
		Expired:      snap.State == engine.Stopped,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tickMsg:
		m.sched.deliver(msg.id)
		if m.session.State() == engine.Stopped {
			m.input.Blur()
		}
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	default:
		m.input, cmd = m.input.Update(msg)
	}
	if m.err != nil {
		return m, tea.Quit
	}
	return m, tea.Batch(cmd, m.sched.drain())
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Reset):
		m.reset()
		return nil
	case key.Matches(msg, m.keys.Start):
		if err := m.session.Start(); err != nil && !errors.Is(err, engine.ErrAlreadyRunning) {
			m.fail(err)
		}
		return nil
	}

	if m.session.State() == engine.Stopped {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		m.handle(engine.WordSubmitted(m.input.Value()))
		m.input.Reset()
		return nil
	case key.Matches(msg, m.keys.Back) && m.input.Value() == "":
		m.handle(engine.WordCleared())
		return nil
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	raw := m.input.Value()
	value := stripSpaces(raw)
	if value != raw {
		m.input.SetValue(value)
	}
	if value != prev {
		m.handle(engine.TextChanged(value))
	}
	return cmd
}

func (m *Model) handle(ev engine.Event) {
	if err := m.session.Handle(ev); err != nil {
		m.fail(fmt.Errorf("failed to handle %s: %w", ev.Kind, err))
	}
}

func (m *Model) reset() {
	if err := m.session.Reset(); err != nil {
		m.fail(fmt.Errorf("failed to reset session: %w", err))
		return
	}
	m.input.Reset()
	m.input.Focus()
}

func (m *Model) fail(err error) {
	m.err = err
}

// View implements tea.Model.
func (m *Model) View() string {
	snap := m.session.Snapshot()
	sections := []string{
		titleStyle.Render(title),
		renderTimer(snap),
		boardStyle.Render(renderRows(snap)),
		m.input.View(),
		renderFooter(snap, m.config),
		m.help.View(m.keys),
	}
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func renderTimer(snap engine.Snapshot) string {
	switch snap.State {
	case engine.Stopped:
		return timerLowStyle.Render("Time's up")
	case engine.NotStarted:
		return timerStyle.Render(fmt.Sprintf("%d", snap.Remaining))
	}
	if snap.Remaining <= snap.Duration/6 {
		return timerLowStyle.Render(fmt.Sprintf("%d", snap.Remaining))
	}
	return timerStyle.Render(fmt.Sprintf("%d", snap.Remaining))
}

func renderFooter(snap engine.Snapshot, cfg model.Config) string {
	segments := []string{
		fmt.Sprintf("Words %d/%d", snap.CorrectWords, snap.TotalWords),
		fmt.Sprintf("Chars %d", snap.CorrectChars),
	}
	if elapsed := snap.Elapsed(); elapsed > 0 {
		wpm, cpm := statsPkg.SessionMetrics(snap.CorrectWords, snap.CorrectChars, time.Duration(elapsed)*cfg.Tick)
		segments = append(segments, fmt.Sprintf("%.0f WPM · %.0f CPM", wpm, cpm))
	}
	if snap.TotalChars > 0 {
		acc := statsPkg.Accuracy(snap.MatchedChars, snap.TotalChars)
		segments = append(segments, fmt.Sprintf("Accuracy %.1f%%", acc*100))
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

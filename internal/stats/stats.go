// Package stats contains session metrics and the summary report.
package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/verte-zerg/speedcheck/internal/model"
)

var valueStyle = lipgloss.NewStyle().Align(lipgloss.Right).Padding(0, 1)

var labelStyle = lipgloss.NewStyle().Padding(0, 1)

// SessionMetrics scales the corrected word and character counts to
// per-minute rates over the elapsed time.
func SessionMetrics(correctWords, correctChars int, elapsed time.Duration) (wpm, cpm float64) {
	if elapsed <= 0 {
		return 0, 0
	}
	minutes := elapsed.Minutes()
	wpm = float64(correctWords) / minutes
	cpm = float64(correctChars) / minutes
	return wpm, cpm
}

// Accuracy returns matched over total characters, or 0 when nothing was typed.
func Accuracy(matched, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(matched) / float64(total)
}

// ElapsedTime converts elapsed time units to a duration.
func ElapsedTime(s model.Summary) time.Duration {
	return time.Duration(s.Elapsed) * s.Tick
}

// RenderSummary prints the counters and rates of a session.
func RenderSummary(w io.Writer, s model.Summary) error {
	if s.TotalWords == 0 {
		_, err := fmt.Fprintln(w, "No words submitted.")
		return err
	}
	wpm, cpm := SessionMetrics(s.CorrectWords, s.CorrectChars, ElapsedTime(s))
	status := "stopped early"
	if s.Expired {
		status = "time up"
	}

	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	rows := [][]string{
		{"Language", s.Lang},
		{"Status", status},
		{"Elapsed", fmt.Sprintf("%d ticks", s.Elapsed)},
		{"Correct words", fmt.Sprintf("%d/%d", s.CorrectWords, s.TotalWords)},
		{"Corrected chars", fmt.Sprintf("%d", s.CorrectChars)},
		{"WPM", fmt.Sprintf("%.1f", wpm)},
		{"CPM", fmt.Sprintf("%.1f", cpm)},
		{"Accuracy", fmt.Sprintf("%.2f%%", Accuracy(s.MatchedChars, s.TotalChars)*100)},
	}
	_, err := fmt.Fprintln(w, summaryTable(rows))
	return err
}

func summaryTable(rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Metric", "Value").
		Rows(rows...).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 1 {
				return valueStyle
			}
			return labelStyle
		}).
		String()
}

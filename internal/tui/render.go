package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/speedcheck/internal/engine"
)

const columnGap = 2

type styledRune struct {
	s     string
	width int
}

func buildStyledWord(view engine.WordView, cursorIndex int) []styledRune {
	out := make([]styledRune, 0, len(view.Verdicts))
	i := 0
	for _, r := range view.Text {
		verdict := engine.Pending
		if i < len(view.Verdicts) {
			verdict = view.Verdicts[i]
		}
		style := pendingStyle
		switch verdict {
		case engine.Correct:
			style = correctStyle
		case engine.Incorrect:
			style = incorrectStyle
		default:
			if view.Active {
				style = currentWordStyle
			}
		}
		if view.Active && i == cursorIndex {
			style = style.Underline(true)
		}
		out = append(out, styledRune{
			s:     style.Render(string(r)),
			width: runewidth.RuneWidth(r),
		})
		i++
	}
	return out
}

func renderWord(view engine.WordView, cursorIndex, width int) string {
	var b strings.Builder
	used := 0
	for _, item := range buildStyledWord(view, cursorIndex) {
		b.WriteString(item.s)
		used += item.width
	}
	if width > used {
		b.WriteString(strings.Repeat(" ", width-used))
	}
	return b.String()
}

func columnWidth(rows []engine.RowView) int {
	width := 0
	for _, row := range rows {
		for _, w := range row.Words {
			if n := runewidth.StringWidth(w.Text); n > width {
				width = n
			}
		}
	}
	return width + columnGap
}

func renderRows(snap engine.Snapshot) string {
	width := columnWidth(snap.Rows)
	cursorIndex := utf8.RuneCountInString(snap.Input)
	lines := make([]string, 0, len(snap.Rows))
	for _, row := range snap.Rows {
		var b strings.Builder
		for _, w := range row.Words {
			b.WriteString(renderWord(w, cursorIndex, width))
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

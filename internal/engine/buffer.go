package engine

import (
	"fmt"
	"strings"
	"unicode"
)

// Layout fixes the shape of the word matrix.
type Layout struct {
	WordsPerRow int
	VisibleRows int
}

// Validate checks that the layout can hold a visible window.
func (l Layout) Validate() error {
	if l.WordsPerRow < 1 {
		return fmt.Errorf("%w: words per row must be >= 1, got %d", ErrInvalidLayout, l.WordsPerRow)
	}
	if l.VisibleRows < 2 {
		return fmt.Errorf("%w: visible rows must be >= 2, got %d", ErrInvalidLayout, l.VisibleRows)
	}
	return nil
}

// VisibleWindow returns the half-open range of row indices to show while the
// cursor sits on row. The current row stays second from the top once the
// cursor has moved past the first window.
func (l Layout) VisibleWindow(row int) (start, end int) {
	if row < l.VisibleRows-1 {
		return 0, l.VisibleRows
	}
	return row - (l.VisibleRows - 2), row + 2
}

// Buffer is an append-only matrix of words.
type Buffer struct {
	layout Layout
	rows   [][]string
}

// NewBuffer initializes a buffer with exactly VisibleRows rows of
// WordsPerRow words each.
func NewBuffer(layout Layout, rows [][]string) (*Buffer, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if len(rows) != layout.VisibleRows {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidLayout, layout.VisibleRows, len(rows))
	}
	b := &Buffer{layout: layout, rows: make([][]string, 0, len(rows))}
	for _, words := range rows {
		if err := b.AppendRow(words); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Layout returns the buffer layout.
func (b *Buffer) Layout() Layout {
	return b.layout
}

// Len returns the number of rows.
func (b *Buffer) Len() int {
	return len(b.rows)
}

// LastRowIndex returns the index of the newest row.
func (b *Buffer) LastRowIndex() int {
	return len(b.rows) - 1
}

// Word returns the word at row, column.
func (b *Buffer) Word(row, column int) (string, error) {
	if row < 0 || row >= len(b.rows) {
		return "", fmt.Errorf("%w: row %d not in [0, %d)", ErrIndexOutOfRange, row, len(b.rows))
	}
	if column < 0 || column >= b.layout.WordsPerRow {
		return "", fmt.Errorf("%w: column %d not in [0, %d)", ErrIndexOutOfRange, column, b.layout.WordsPerRow)
	}
	return b.rows[row][column], nil
}

// Row returns a copy of the words in row.
func (b *Buffer) Row(row int) ([]string, error) {
	if row < 0 || row >= len(b.rows) {
		return nil, fmt.Errorf("%w: row %d not in [0, %d)", ErrIndexOutOfRange, row, len(b.rows))
	}
	out := make([]string, len(b.rows[row]))
	copy(out, b.rows[row])
	return out, nil
}

// AppendRow adds a row of WordsPerRow words at the end of the buffer.
func (b *Buffer) AppendRow(words []string) error {
	if len(words) != b.layout.WordsPerRow {
		return fmt.Errorf("%w: expected %d words per row, got %d", ErrInvalidLayout, b.layout.WordsPerRow, len(words))
	}
	for _, word := range words {
		if !validWord(word) {
			return fmt.Errorf("%w: invalid word %q", ErrInvalidLayout, word)
		}
	}
	row := make([]string, len(words))
	copy(row, words)
	b.rows = append(b.rows, row)
	return nil
}

func validWord(word string) bool {
	return word != "" && !strings.ContainsFunc(word, unicode.IsSpace)
}

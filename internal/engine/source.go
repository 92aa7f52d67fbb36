package engine

import "fmt"

// WordSource supplies random words on demand.
type WordSource interface {
	NextWord() (string, error)
}

func nextRow(src WordSource, n int) ([]string, error) {
	row := make([]string, 0, n)
	for i := 0; i < n; i++ {
		word, err := src.NextWord()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoWordsAvailable, err)
		}
		if word == "" {
			return nil, fmt.Errorf("%w: word source returned an empty word", ErrNoWordsAvailable)
		}
		row = append(row, word)
	}
	return row, nil
}

func newBufferFrom(layout Layout, src WordSource) (*Buffer, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	rows := make([][]string, 0, layout.VisibleRows)
	for i := 0; i < layout.VisibleRows; i++ {
		row, err := nextRow(src, layout.WordsPerRow)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return NewBuffer(layout, rows)
}

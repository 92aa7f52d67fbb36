// Package wordlist loads word lists from files.
package wordlist

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed words.txt
var defaultWords string

// ErrEmptyWordList is returned when a word list yields no usable words.
var ErrEmptyWordList = errors.New("word list is empty")

// Default returns the embedded English word list.
func Default() ([]string, error) {
	return parse(strings.NewReader(defaultWords), "embedded", FilterForLang("en"))
}

// LoadWords reads whitespace-separated words from the provided file path,
// keeping those accepted by filter. A nil filter keeps every word.
func LoadWords(path string, filter FilterFunc) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	return parse(file, path, filter)
}

func parse(r io.Reader, name string, filter FilterFunc) ([]string, error) {
	words, err := scan(bufio.NewScanner(r), filter)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s word list: %w", name, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyWordList)
	}
	return words, nil
}

func scan(scanner *bufio.Scanner, filter FilterFunc) ([]string, error) {
	var words []string
	for scanner.Scan() {
		for _, word := range strings.Fields(scanner.Text()) {
			if filter != nil && !filter(word) {
				continue
			}
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Package generator supplies random words for a typing session.
package generator

import (
	"errors"
	"math/rand"
	"time"
	"unicode"
)

// ErrEmptyWordList is returned when the generator has no words to draw from.
var ErrEmptyWordList = errors.New("word list is empty")

// Options controls word decoration.
type Options struct {
	CapsPct  float64
	PunctPct float64
	PunctSet []rune
}

// Generator draws words uniformly from a list and decorates them.
type Generator struct {
	rnd   *rand.Rand
	words []string
	opts  Options
}

// New returns a Generator seeded with the current time.
func New(words []string, opts Options) *Generator {
	return NewWithSeed(words, opts, time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(words []string, opts Options, seed int64) *Generator {
	return &Generator{
		rnd:   rand.New(rand.NewSource(seed)),
		words: words,
		opts:  opts,
	}
}

// NextWord returns one random, decorated word.
func (g *Generator) NextWord() (string, error) {
	if len(g.words) == 0 {
		return "", ErrEmptyWordList
	}
	word := g.words[g.rnd.Intn(len(g.words))]
	word = applyCaps(g.rnd, word, g.opts.CapsPct)
	word = applyPunct(g.rnd, word, g.opts.PunctPct, g.opts.PunctSet)
	return word, nil
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 {
		return word
	}
	if rnd.Float64() > punctPct {
		return word
	}
	punct := punctSet[rnd.Intn(len(punctSet))]
	return word + string(punct)
}

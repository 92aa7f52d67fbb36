// Package model defines shared data structures.
package model

import "time"

// Config defines practice settings.
type Config struct {
	Lang        string
	WordList    string
	WordsPerRow int
	VisibleRows int
	Duration    int
	Tick        time.Duration
	CapsPct     float64
	PunctPct    float64
	PunctSet    string
}

// Summary captures the counters of a finished or abandoned session.
type Summary struct {
	Lang         string
	Duration     int
	Elapsed      int
	Tick         time.Duration
	CorrectChars int
	CorrectWords int
	TotalWords   int
	TotalChars   int
	MatchedChars int
	Expired      bool
}

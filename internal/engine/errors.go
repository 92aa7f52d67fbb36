// Package engine implements the typing-test core: word buffer, cursor
// navigation, input comparison, statistics and the countdown timer.
package engine

import "errors"

var (
	// ErrInvalidLayout reports a malformed word matrix or layout.
	ErrInvalidLayout = errors.New("invalid word layout")
	// ErrIndexOutOfRange reports addressing outside the word buffer.
	ErrIndexOutOfRange = errors.New("word index out of range")
	// ErrEmptyLog reports an undo on an empty statistics log.
	ErrEmptyLog = errors.New("statistics log is empty")
	// ErrAlreadyRunning reports a start request while the timer runs.
	ErrAlreadyRunning = errors.New("timer already running")
	// ErrNoWordsAvailable reports a word source that cannot supply words.
	ErrNoWordsAvailable = errors.New("no words available")
)

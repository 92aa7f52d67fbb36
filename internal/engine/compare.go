package engine

// Verdict classifies one character of a target word.
type Verdict int

const (
	// Pending marks a position not typed yet.
	Pending Verdict = iota
	// Correct marks a position typed as expected.
	Correct
	// Incorrect marks a mistyped, missing or overtyped position.
	Incorrect
)

func (v Verdict) String() string {
	switch v {
	case Pending:
		return "pending"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// Mode selects how untyped positions are judged.
type Mode int

const (
	// Typing leaves untyped positions Pending.
	Typing Mode = iota
	// Final counts untyped positions as Incorrect.
	Final
)

// Comparison is the per-character judgement of an input against a word.
type Comparison struct {
	Verdicts     []Verdict
	FullyCorrect bool
	CorrectChars int
}

// Compare judges input against target rune by rune. Input longer than the
// target marks the whole word Incorrect. FullyCorrect is only set in Final
// mode.
func Compare(target, input string, mode Mode) Comparison {
	targetRunes := []rune(target)
	inputRunes := []rune(input)
	verdicts := make([]Verdict, len(targetRunes))

	if len(inputRunes) > len(targetRunes) {
		for i := range verdicts {
			verdicts[i] = Incorrect
		}
		return Comparison{Verdicts: verdicts}
	}

	correct := 0
	for i, want := range targetRunes {
		switch {
		case i < len(inputRunes) && inputRunes[i] == want:
			verdicts[i] = Correct
			correct++
		case i < len(inputRunes):
			verdicts[i] = Incorrect
		case mode == Final:
			verdicts[i] = Incorrect
		default:
			verdicts[i] = Pending
		}
	}
	return Comparison{
		Verdicts:     verdicts,
		FullyCorrect: mode == Final && input == target,
		CorrectChars: correct,
	}
}

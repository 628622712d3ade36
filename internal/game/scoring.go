package game

import (
	"fmt"
	"strings"
)

// Scoring selects how Present/Absent are decided for non-exact letters.
type Scoring string

const (
	// ScoringStandard is the two-pass Wordle algorithm: exact matches first,
	// then presents limited by the remaining letter counts of the answer.
	ScoringStandard Scoring = "standard"
	// ScoringLegacy scores each letter independently and treats a letter that
	// first occurs at index 0 of the answer as absent. Boards match the first
	// release of the client.
	ScoringLegacy Scoring = "legacy"
)

// DefaultScoring is used when no scoring mode is configured.
const DefaultScoring = ScoringStandard

// ParseScoring maps a configuration value to a Scoring mode.
func ParseScoring(s string) (Scoring, error) {
	switch Scoring(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultScoring, nil
	case ScoringStandard:
		return ScoringStandard, nil
	case ScoringLegacy:
		return ScoringLegacy, nil
	}
	return "", fmt.Errorf("unknown scoring mode %q", s)
}

// Score compares guess against answer. Both must be WordLength lowercase letters.
func Score(mode Scoring, guess Guess, answer string) Marks {
	if mode == ScoringLegacy {
		return scoreLegacy(string(guess), answer)
	}
	return scoreStandard(string(guess), answer)
}

// scoreStandard implements the standard Wordle two-pass scoring algorithm.
//
// Pass 1 marks exact matches and counts the answer letters left over.
// Pass 2 marks a non-hit guess letter Present while a count remains for it.
func scoreStandard(guess, answer string) Marks {
	var res Marks
	var counts [26]int

	for i := 0; i < WordLength; i++ {
		if guess[i] == answer[i] {
			res[i] = MarkCorrect
		} else {
			counts[idx(answer[i])]++
		}
	}

	for i := 0; i < WordLength; i++ {
		if res[i] == MarkCorrect {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}

// scoreLegacy keeps the `index <= 0` not-found test on purpose.
func scoreLegacy(guess, answer string) Marks {
	var res Marks
	for i := 0; i < WordLength; i++ {
		switch {
		case guess[i] == answer[i]:
			res[i] = MarkCorrect
		case strings.IndexByte(answer, guess[i]) <= 0:
			res[i] = MarkAbsent
		default:
			res[i] = MarkPresent
		}
	}
	return res
}

// idx maps a lowercase ASCII letter to 0..25.
func idx(b byte) int { return int(b) - 'a' }

// AllCorrect reports whether every position is MarkCorrect.
func (m Marks) AllCorrect() bool {
	for _, x := range m {
		if x != MarkCorrect {
			return false
		}
	}
	return true
}

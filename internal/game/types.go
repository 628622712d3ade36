// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Mark: per-letter result of a guess (correct/present/absent).
//   - State: where a session is in the guess loop.
//   - Guess: a validated, lowercase 5-letter word.
//   - Game: state for a single terminal game session.

package game

const (
	// WordLength is the number of letters in both the secret word and every guess.
	WordLength = 5
	// MaxAttempts is the number of scored guesses a player gets.
	MaxAttempts = 6
)

// Mark represents the evaluation result for a single letter in a guess.
type Mark int

const (
	MarkAbsent  Mark = iota // letter is not in the secret word
	MarkPresent             // letter is in the secret word, different position
	MarkCorrect             // letter is in the correct position
)

func (m Mark) String() string {
	switch m {
	case MarkCorrect:
		return "correct"
	case MarkPresent:
		return "present"
	default:
		return "absent"
	}
}

// Marks is the scored result of one guess, one Mark per position.
type Marks [WordLength]Mark

// State is the position of a session in the guess loop.
type State string

const (
	StateAwaitingGuess State = "awaiting_guess"
	StateScoring       State = "scoring"
	StateWon           State = "won"
	StateLost          State = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (s State) Terminal() bool { return s == StateWon || s == StateLost }

// Guess is a syntactically valid guess. Only ParseGuess produces one.
type Guess string

// Game holds the state of a single Wordle game session.
type Game struct {
	ID        string  // Session identifier (uuid), used to correlate log lines.
	Answer    string  // The secret word (always lowercase).
	Remaining int     // Attempts left; never negative.
	Guesses   []Guess // Scored guesses so far.
	State     State
	scoring   Scoring
}

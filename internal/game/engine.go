// internal/game/engine.go
//
// Core game engine for a single terminal Wordle session.
// Responsibilities:
//   - Create new games (6 attempts, 5 letters) around a secret word.
//   - Validate guesses (length, alphabetic) without consuming attempts.
//   - Score guesses with the configured Scoring mode.
//   - Track state transitions: awaiting_guess → scoring → won/lost.
package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	// ErrInvalidGuessFormat is matched by every validation failure.
	ErrInvalidGuessFormat = errors.New("invalid guess format")
	ErrGuessLength        = fmt.Errorf("%w: guess must be %d letters", ErrInvalidGuessFormat, WordLength)
	ErrGuessLetters       = fmt.Errorf("%w: guess must only contain letters", ErrInvalidGuessFormat)

	ErrGameOver = errors.New("game finished")
)

// Option configures a Game.
type Option func(*Game)

// WithScoring overrides DefaultScoring.
func WithScoring(s Scoring) Option {
	return func(g *Game) { g.scoring = s }
}

// New constructs a game for answer, which must itself be a valid 5-letter word.
func New(answer string, opts ...Option) (*Game, error) {
	secret, err := ParseGuess(answer)
	if err != nil {
		return nil, fmt.Errorf("secret word %q: %w", answer, err)
	}
	g := &Game{
		ID:        uuid.NewString(),
		Answer:    string(secret),
		Remaining: MaxAttempts,
		Guesses:   []Guess{},
		State:     StateAwaitingGuess,
		scoring:   DefaultScoring,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// ParseGuess lowercases raw and checks it is exactly WordLength letters a–z.
// Length is counted in characters, so five accented letters fail the letter
// check rather than the length check.
// It is pure: the same input always yields the same result.
func ParseGuess(raw string) (Guess, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if utf8.RuneCountInString(s) != WordLength {
		return "", ErrGuessLength
	}
	if !IsAlpha(s) {
		return "", ErrGuessLetters
	}
	return Guess(s), nil
}

// IsAlpha reports whether s consists only of lowercase a–z.
func IsAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Scoring returns the mode this game scores with.
func (g *Game) Scoring() Scoring { return g.scoring }

// Apply scores a validated guess and advances the state machine.
//
// State transitions:
//   - guess == answer → StateWon.
//   - otherwise, no attempts left → StateLost.
//   - otherwise → StateAwaitingGuess.
func (g *Game) Apply(guess Guess) (Marks, error) {
	if g.State.Terminal() {
		return Marks{}, ErrGameOver
	}
	g.State = StateScoring

	marks := Score(g.scoring, guess, g.Answer)
	g.Guesses = append(g.Guesses, guess)
	g.Remaining--

	switch {
	case string(guess) == g.Answer:
		g.State = StateWon
	case g.Remaining == 0:
		g.State = StateLost
	default:
		g.State = StateAwaitingGuess
	}
	return marks, nil
}

// internal/session/session.go
//
// The interactive game loop.
// Responsibilities:
//   - Fetch candidate words once and pick the secret word.
//   - Prompt for guesses until the game is won or lost.
//   - Re-prompt on malformed guesses without spending an attempt.
//   - Render a marker row per scored guess and the final message.

package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
	"github.com/robalobadob/wordle/apps/go-cli/internal/wordsource"
)

const (
	Prompt = "Guess: "

	MsgWrongLength = "Your guess should be a 5-letter word."
	MsgNotLetters  = "Your guess should only contain letters."
	MsgWon         = "Well done!"
	MsgLostPrefix  = "Good tries! The answer was: "
)

// ErrInputClosed is returned when input ends before the game does.
var ErrInputClosed = errors.New("input closed before the game ended")

// Terminal is where the game is played.
type Terminal interface {
	ReadLine(prompt string) (string, error)
	Marks(marks game.Marks)
	Success(msg string)
	Failure(msg string)
	Warn(msg string)
}

// WordSource supplies candidate secret words.
type WordSource interface {
	FetchCandidateWords(ctx context.Context) ([]string, error)
}

// Picker chooses the secret word among candidates.
type Picker interface {
	Pick(candidates []string) (string, error)
}

// NewGame fetches the candidates once and starts a game on the picked word.
// Source errors are returned unchanged so callers can match them. A store
// holding no usable word is reported as wordsource.ErrNoDocuments.
func NewGame(ctx context.Context, src WordSource, picker Picker, opts ...game.Option) (*game.Game, error) {
	candidates, err := src.FetchCandidateWords(ctx)
	if err != nil {
		return nil, err
	}
	secret, err := picker.Pick(candidates)
	if errors.Is(err, words.ErrNoCandidates) {
		return nil, fmt.Errorf("%w: %w", wordsource.ErrNoDocuments, err)
	}
	if err != nil {
		return nil, fmt.Errorf("pick secret word: %w", err)
	}
	return game.New(secret, opts...)
}

// Session drives one game on one terminal.
type Session struct {
	game *game.Game
	term Terminal
}

func New(g *game.Game, term Terminal) *Session {
	return &Session{game: g, term: term}
}

// Run plays until the game reaches a terminal state and returns it.
func (s *Session) Run(ctx context.Context) (game.State, error) {
	g := s.game
	log.Info().Str("game", g.ID).Str("scoring", string(g.Scoring())).Msg("game started")

	for !g.State.Terminal() {
		if err := ctx.Err(); err != nil {
			return g.State, err
		}
		line, err := s.term.ReadLine(Prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return g.State, ErrInputClosed
			}
			return g.State, fmt.Errorf("read guess: %w", err)
		}

		guess, err := game.ParseGuess(line)
		if err != nil {
			s.term.Warn(validationMessage(err))
			continue
		}

		marks, err := g.Apply(guess)
		if err != nil {
			return g.State, err
		}
		s.term.Marks(marks)
		log.Debug().Str("game", g.ID).Int("remaining", g.Remaining).Str("state", string(g.State)).Msg("guess scored")
	}

	switch g.State {
	case game.StateWon:
		s.term.Success(MsgWon)
	case game.StateLost:
		s.term.Failure(MsgLostPrefix + g.Answer)
	}
	log.Info().Str("game", g.ID).Str("state", string(g.State)).Int("guesses", len(g.Guesses)).Msg("game finished")
	return g.State, nil
}

func validationMessage(err error) string {
	if errors.Is(err, game.ErrGuessLetters) {
		return MsgNotLetters
	}
	return MsgWrongLength
}

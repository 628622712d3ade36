package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/console"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/session"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
	"github.com/robalobadob/wordle/apps/go-cli/internal/wordsource"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "wordle:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "wordle",
		Short:         "Guess the five-letter word in six tries",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context())
		},
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogging(cfg.LogLevel)

	scoring, err := game.ParseScoring(cfg.Scoring)
	if err != nil {
		return err
	}
	picker, err := newPicker(cfg)
	if err != nil {
		return err
	}
	src, err := wordsource.New(cfg)
	if err != nil {
		return err
	}

	g, err := session.NewGame(ctx, src, picker, game.WithScoring(scoring))
	if err != nil {
		if errors.Is(err, wordsource.ErrSourceUnavailable) {
			log.Error().Err(err).Str("source", src.Name()).Msg("cannot load words")
			return fmt.Errorf("could not load a secret word: %w", err)
		}
		return err
	}

	_, err = session.New(g, console.New(os.Stdin, os.Stdout)).Run(ctx)
	return err
}

func newPicker(cfg config.Config) (*words.Picker, error) {
	sel, err := words.ParseSelection(cfg.Selection)
	if err != nil {
		return nil, err
	}
	if sel == words.SelectDaily {
		return words.NewDailyPicker(cfg.DailySalt, nil), nil
	}
	return words.NewRandomPicker(nil), nil
}

// setupLogging sends logs to stderr so they never mix with the board.
func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}

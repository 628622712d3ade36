// internal/wordsource/source.go
//
// The word source hands the game a list of candidate secret words.
//
// Every backend reads the first document of a collection and returns the
// `word` field of each record in it:
//   - soda:   ORDS SODA REST collection (Oracle JSON database).
//   - mongo:  MongoDB collection, document field `words`.
//   - sqlite: table with a JSON `content` column.
//   - file:   plain word list, one per line.
//
// Failures are wrapped in ErrSourceUnavailable. Fetcher adds the per-attempt
// timeout and one bounded retry on top of any backend.

package wordsource

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
)

var (
	// ErrSourceUnavailable is matched by every fetch failure.
	ErrSourceUnavailable = errors.New("word source unavailable")
	// ErrNoDocuments means the store answered but holds no words. It is not retried.
	ErrNoDocuments = fmt.Errorf("%w: no documents", ErrSourceUnavailable)
)

// Source returns the candidate words of one store.
type Source interface {
	// Name identifies the backend in logs and errors.
	Name() string
	// FetchCandidateWords returns a non-empty list of words or an error
	// matching ErrSourceUnavailable.
	FetchCandidateWords(ctx context.Context) ([]string, error)
}

// Record is one entry of a word document: {"word": "apple"}.
type Record struct {
	Word string `json:"word" bson:"word"`
}

// wordsOf extracts the words of records, failing on an empty document.
func wordsOf(name string, records []Record) ([]string, error) {
	out := make([]string, 0, len(records))
	for _, r := range records {
		if r.Word != "" {
			out = append(out, r.Word)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s document has no words", ErrNoDocuments, name)
	}
	return out, nil
}

// unavailable tags err with the backend name and ErrSourceUnavailable.
func unavailable(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, name, err)
}

// Fetcher bounds every attempt of a Source with a timeout and retries
// transient failures a fixed number of times.
type Fetcher struct {
	src     Source
	timeout time.Duration
	retries uint
	delay   time.Duration
}

// NewFetcher wraps src. retries is the number of extra attempts after the first.
func NewFetcher(src Source, timeout time.Duration, retries uint, delay time.Duration) *Fetcher {
	return &Fetcher{src: src, timeout: timeout, retries: retries, delay: delay}
}

func (f *Fetcher) Name() string { return f.src.Name() }

// FetchCandidateWords runs the wrapped source until it succeeds, fails
// permanently, or runs out of attempts.
func (f *Fetcher) FetchCandidateWords(ctx context.Context) ([]string, error) {
	attempt := 0
	words, err := backoff.Retry(ctx, func() ([]string, error) {
		attempt++
		actx, cancel := context.WithTimeout(ctx, f.timeout)
		defer cancel()

		words, err := f.src.FetchCandidateWords(actx)
		if err != nil {
			log.Warn().Err(err).Str("source", f.src.Name()).Int("attempt", attempt).Msg("word fetch failed")
			if errors.Is(err, ErrNoDocuments) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		return words, nil
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(f.delay)),
		backoff.WithMaxTries(f.retries+1),
	)
	if err != nil {
		if !errors.Is(err, ErrSourceUnavailable) {
			err = unavailable(f.src.Name(), err)
		}
		return nil, err
	}
	log.Info().Str("source", f.src.Name()).Int("attempt", attempt).Int("words", len(words)).Msg("fetched candidate words")
	return words, nil
}

// New builds the configured backend wrapped in a Fetcher.
func New(cfg config.Config) (*Fetcher, error) {
	var src Source
	switch cfg.Source {
	case config.SourceSODA:
		src = NewSODA(cfg.SODA, &http.Client{})
	case config.SourceMongo:
		src = NewMongo(cfg.Mongo)
	case config.SourceSQLite:
		s, err := NewSQLite(cfg.SQLite)
		if err != nil {
			return nil, err
		}
		src = s
	case config.SourceFile:
		src = NewFile(cfg.File)
	default:
		return nil, fmt.Errorf("unknown word source %q", cfg.Source)
	}
	return NewFetcher(src, cfg.FetchTimeout, cfg.FetchRetries, cfg.FetchRetryDelay), nil
}

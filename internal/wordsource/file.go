package wordsource

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cenkalti/backoff/v5"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
)

// File reads one word per line. Blank lines and lines starting with # are skipped.
type File struct {
	path string
}

func NewFile(cfg config.File) *File { return &File{path: cfg.Path} }

func (f *File) Name() string { return "file" }

func (f *File) FetchCandidateWords(ctx context.Context) ([]string, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		err = unavailable(f.Name(), err)
		if errors.Is(err, os.ErrNotExist) {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}
	defer fh.Close()

	var out []string
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, unavailable(f.Name(), err)
		}
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	if err := sc.Err(); err != nil {
		return nil, unavailable(f.Name(), err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s has no words", ErrNoDocuments, f.path)
	}
	return out, nil
}

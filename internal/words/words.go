// internal/words/words.go
//
// Candidate word handling for the game engine.
//
// Responsibilities:
//   - Normalise candidate lists fetched from a word source (trim, lowercase,
//     keep only 5-letter alphabetic words, drop duplicates).
//   - Choose the secret word: uniformly at random, or deterministically per day.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z).
//   • Lists are normalized to lowercase.

package words

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// ErrNoCandidates is returned when a list holds no usable word.
var ErrNoCandidates = errors.New("words: no valid candidates")

// Normalize lowercases and trims every entry and keeps the valid 5-letter
// words in their original order. Duplicates after the first are dropped.
func Normalize(list []string) []string {
	out := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	skipped := 0
	for _, raw := range list {
		w := strings.TrimSpace(strings.ToLower(raw))
		if len(w) != game.WordLength || !game.IsAlpha(w) {
			log.Debug().Str("word", raw).Msg("skipping invalid candidate")
			skipped++
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Int("kept", len(out)).Msg("dropped invalid candidates")
	}
	return out
}

// Selection names a secret-word selection policy.
type Selection string

const (
	SelectRandom Selection = "random"
	SelectDaily  Selection = "daily"
)

// ParseSelection maps a configuration value to a Selection.
func ParseSelection(s string) (Selection, error) {
	switch Selection(strings.ToLower(strings.TrimSpace(s))) {
	case "", SelectRandom:
		return SelectRandom, nil
	case SelectDaily:
		return SelectDaily, nil
	}
	return "", fmt.Errorf("unknown selection %q", s)
}

// Picker chooses the secret word from a candidate list.
type Picker struct {
	selection Selection
	salt      string
	rng       *rand.Rand
	now       func() time.Time
}

// NewRandomPicker picks uniformly from the candidates. A nil rng uses a
// generator seeded from the runtime's entropy source.
func NewRandomPicker(rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Picker{selection: SelectRandom, rng: rng, now: time.Now}
}

// NewDailyPicker picks the same word for everyone on a given UTC date.
func NewDailyPicker(salt string, now func() time.Time) *Picker {
	if now == nil {
		now = time.Now
	}
	return &Picker{selection: SelectDaily, salt: salt, now: now}
}

// Pick normalises candidates and returns the secret word.
func (p *Picker) Pick(candidates []string) (string, error) {
	list := Normalize(candidates)
	if len(list) == 0 {
		return "", ErrNoCandidates
	}
	var i int
	switch p.selection {
	case SelectDaily:
		i = dailyIndex(p.now(), p.salt, len(list))
	default:
		i = p.rng.IntN(len(list))
	}
	log.Debug().Int("index", i).Int("candidates", len(list)).Str("selection", string(p.selection)).Msg("picked secret word")
	return list[i], nil
}

// dailyIndex maps the UTC day of t onto [0, n). n must be positive.
func dailyIndex(t time.Time, salt string, n int) int {
	mac := hmac.New(sha256.New, []byte(salt))
	io.WriteString(mac, t.UTC().Format(time.DateOnly))
	return int(binary.BigEndian.Uint64(mac.Sum(nil)) % uint64(n))
}

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	C = MarkCorrect
	P = MarkPresent
	A = MarkAbsent
)

func TestScoreStandard(t *testing.T) {
	tests := []struct {
		name   string
		guess  Guess
		answer string
		want   Marks
	}{
		{name: "exact", guess: "apple", answer: "apple", want: Marks{C, C, C, C, C}},
		{name: "disjoint", guess: "mound", answer: "apple", want: Marks{A, A, A, A, A}},
		{name: "first letter of answer is present", guess: "eaple", answer: "apple", want: Marks{A, P, C, C, C}},
		{name: "extra copy of a hit letter is absent", guess: "lolly", answer: "hello", want: Marks{A, P, C, C, A}},
		{name: "second copy of a single letter is absent", guess: "speed", answer: "abide", want: Marks{A, A, P, A, P}},
		{name: "all present", guess: "elppa", answer: "apple", want: Marks{P, P, C, P, P}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(ScoringStandard, tt.guess, tt.answer))
		})
	}
}

func TestScoreLegacy(t *testing.T) {
	tests := []struct {
		name   string
		guess  Guess
		answer string
		want   Marks
	}{
		{name: "exact", guess: "apple", answer: "apple", want: Marks{C, C, C, C, C}},
		{name: "disjoint", guess: "mound", answer: "apple", want: Marks{A, A, A, A, A}},
		{name: "letter at answer index 0 reads as absent", guess: "eaple", answer: "apple", want: Marks{P, A, C, C, C}},
		{name: "duplicates are not budgeted", guess: "lolly", answer: "hello", want: Marks{P, P, C, C, A}},
		{name: "every extra copy is present", guess: "ppppp", answer: "apple", want: Marks{P, C, C, P, P}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(ScoringLegacy, tt.guess, tt.answer))
		})
	}
}

func TestScoreProperties(t *testing.T) {
	words := []string{"apple", "crane", "hello", "zesty", "mummy"}
	for _, mode := range []Scoring{ScoringStandard, ScoringLegacy} {
		for _, w := range words {
			got := Score(mode, Guess(w), w)
			assert.Len(t, got, WordLength)
			assert.True(t, got.AllCorrect(), "%s: %s against itself", mode, w)
		}
	}
}

func TestDefaultScoringFixesFirstIndexDefect(t *testing.T) {
	require.Equal(t, ScoringStandard, DefaultScoring)

	g, err := New("apple")
	require.NoError(t, err)
	marks, err := g.Apply("eaple")
	require.NoError(t, err)
	assert.Equal(t, MarkPresent, marks[1], "'a' occurs at index 0 of the answer")
}

func TestParseScoring(t *testing.T) {
	for in, want := range map[string]Scoring{
		"":         DefaultScoring,
		"standard": ScoringStandard,
		" Legacy ": ScoringLegacy,
		"STANDARD": ScoringStandard,
	} {
		got, err := ParseScoring(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseScoring("canonical")
	assert.Error(t, err)
}

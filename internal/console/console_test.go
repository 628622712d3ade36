package console

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

func TestRow(t *testing.T) {
	row := Row(game.Marks{game.MarkCorrect, game.MarkPresent, game.MarkAbsent, game.MarkCorrect, game.MarkAbsent})
	assert.Equal(t, "🟩🟨⬛🟩⬛", row)
	assert.Equal(t, game.WordLength, utf8.RuneCountInString(row))
}

func TestReadLine(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("apple\ncrane\n"), &out)

	line, err := c.ReadLine("Guess: ")
	require.NoError(t, err)
	assert.Equal(t, "apple", line)

	line, err = c.ReadLine("Guess: ")
	require.NoError(t, err)
	assert.Equal(t, "crane", line)

	_, err = c.ReadLine("Guess: ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 3, strings.Count(out.String(), "Guess: "))
}

func TestReadLineOversized(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(strings.Repeat("a", 70000)+"\napple\r\nlast"), &out)

	line, err := c.ReadLine("Guess: ")
	require.NoError(t, err)
	assert.Len(t, line, maxLine)

	line, err = c.ReadLine("Guess: ")
	require.NoError(t, err)
	assert.Equal(t, "apple", line)

	line, err = c.ReadLine("Guess: ")
	require.NoError(t, err)
	assert.Equal(t, "last", line, "final line without newline")

	_, err = c.ReadLine("Guess: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestMessages(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	c.Marks(game.Marks{})
	c.Success("Well done!")
	c.Failure("Good tries! The answer was: apple")
	c.Warn("Your guess should be a 5-letter word.")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "⬛⬛⬛⬛⬛", lines[0])
	assert.Contains(t, lines[1], "Well done!")
	assert.Contains(t, lines[2], "apple")
	assert.Contains(t, lines[3], "5-letter")
}

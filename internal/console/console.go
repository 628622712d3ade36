// Package console is the terminal the game is played on: it reads one guess
// per line and renders marker rows and messages.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// Marker glyphs, one per game.Mark.
const (
	GlyphCorrect = "🟩"
	GlyphPresent = "🟨"
	GlyphAbsent  = "⬛"
)

// Glyph returns the marker for m.
func Glyph(m game.Mark) string {
	switch m {
	case game.MarkCorrect:
		return GlyphCorrect
	case game.MarkPresent:
		return GlyphPresent
	default:
		return GlyphAbsent
	}
}

// Row renders marks as a single line of WordLength glyphs.
func Row(marks game.Marks) string {
	var b strings.Builder
	for _, m := range marks {
		b.WriteString(Glyph(m))
	}
	return b.String()
}

// maxLine is how much of one input line is kept; the rest is discarded so an
// oversized line still reads as one (invalid) guess.
const maxLine = 256

// Console reads from in and writes to out. Colors are only emitted when out
// is a terminal.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	prompt  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	warn    lipgloss.Style
}

func New(in io.Reader, out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		prompt:  r.NewStyle().Bold(true),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// ReadLine shows prompt and returns the next input line without its line
// ending, truncated to maxLine bytes. It returns io.EOF once the input is
// exhausted.
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, c.prompt.Render(prompt))

	var line []byte
	for {
		chunk, err := c.in.ReadSlice('\n')
		if room := maxLine - len(line); room > 0 {
			line = append(line, chunk[:min(len(chunk), room)]...)
		}
		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF) && len(line) > 0:
			return trimEOL(line), nil
		case errors.Is(err, io.EOF):
			fmt.Fprintln(c.out)
			return "", io.EOF
		case err != nil:
			return "", err
		}
		return trimEOL(line), nil
	}
}

func trimEOL(b []byte) string {
	return strings.TrimRight(string(b), "\r\n")
}

// Marks prints one row of marker glyphs.
func (c *Console) Marks(marks game.Marks) {
	fmt.Fprintln(c.out, Row(marks))
}

func (c *Console) Success(msg string) { fmt.Fprintln(c.out, c.success.Render(msg)) }

func (c *Console) Failure(msg string) { fmt.Fprintln(c.out, c.failure.Render(msg)) }

func (c *Console) Warn(msg string) { fmt.Fprintln(c.out, c.warn.Render(msg)) }

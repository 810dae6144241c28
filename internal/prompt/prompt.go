// Package prompt reads answers from an interactive user one line at a time.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/readlater-labs/readlater/internal/readlater"
)

// maxAttempts bounds how often Required re-asks after an empty answer.
const maxAttempts = 3

// ErrNoInput is returned when input ends before an answer is given.
var ErrNoInput = errors.New("no input")

// Prompter asks questions on w and reads answers from r.
type Prompter struct {
	reader *bufio.Reader
	w      io.Writer
	echo   bool
}

// New returns a Prompter. Questions are written only when r is a terminal,
// so piped answers don't litter the output with prompts.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(r),
		w:      w,
		echo:   IsTerminal(r),
	}
}

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Line asks question and returns the trimmed answer, which may be empty.
func (p *Prompter) Line(question string) (string, error) {
	if p.echo {
		fmt.Fprint(p.w, question)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Required asks question until a non-empty answer is given.
func (p *Prompter) Required(question string) (string, error) {
	for range maxAttempts {
		answer, err := p.Line(question)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		if p.echo {
			fmt.Fprintln(p.w, "A value is required.")
		}
	}
	return "", fmt.Errorf("no answer after %d attempts", maxAttempts)
}

// Tags asks question and splits the answer into comma-separated tags. An
// empty answer yields no tags.
func (p *Prompter) Tags(question string) ([]string, error) {
	answer, err := p.Line(question)
	if err != nil {
		if errors.Is(err, ErrNoInput) {
			return nil, nil
		}
		return nil, err
	}
	return readlater.SplitTags(answer), nil
}

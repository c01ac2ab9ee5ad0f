package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrCancelled is returned when the user backs out of a prompt.
var ErrCancelled = errors.New("operation cancelled")

// ErrInvalidSelection is returned by Select when the answer is not one of
// the offered numbers. The input stream is still usable.
var ErrInvalidSelection = errors.New("invalid selection")

// Prompter asks the user for choices.
type Prompter interface {
	// Select shows items under title and returns the chosen index.
	Select(title string, items []string) (int, error)
	// Confirm asks a yes/no question; an empty answer yields def.
	Confirm(prompt string, def bool) (bool, error)
	// Input asks for a line of text; an empty answer yields def.
	Input(prompt, def string) (string, error)
}

// New returns a TUI prompter when in and out are both terminals, and a
// line prompter otherwise.
func New(in io.Reader, out io.Writer) Prompter {
	if isInputTTY(in) && IsTTY(out) {
		return NewTUIPrompter(in, out)
	}
	return NewLinePrompter(in, out)
}

// LinePrompter prompts with numbered menus and plain text lines.
type LinePrompter struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewLinePrompter creates a line prompter reading from r and writing to w.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(r), w: w}
}

// Select presents a numbered list and returns the selected index.
func (p *LinePrompter) Select(title string, items []string) (int, error) {
	if len(items) == 0 {
		return 0, errors.New("nothing to select")
	}

	fmt.Fprintf(p.w, "\n%s\n", title)
	for i, item := range items {
		fmt.Fprintf(p.w, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(p.w, "Enter number [1-%d]: ", len(items))

	line, err := p.readLine()
	if err != nil {
		return 0, err
	}

	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(items) {
		return 0, fmt.Errorf("%w %q: choose 1-%d", ErrInvalidSelection, line, len(items))
	}

	return num - 1, nil
}

// Confirm asks a yes/no question.
func (p *LinePrompter) Confirm(prompt string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(p.w, "%s [%s]: ", prompt, hint)

	line, err := p.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(line) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid answer %q: expected y or n", line)
	}
}

// Input asks for a line of text.
func (p *LinePrompter) Input(prompt, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.w, "%s [%s]: ", prompt, def)
	} else {
		fmt.Fprintf(p.w, "%s: ", prompt)
	}

	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// readLine reads one trimmed line. End of input with nothing typed counts
// as a cancel.
func (p *LinePrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.w)
			return "", ErrCancelled
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

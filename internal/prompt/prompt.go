// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package prompt reads operator input for the interactive workflows.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"hostcheck/cli/internal/terminal"
)

// Prompter asks the operator for values. Returned strings are trimmed.
// End of input is reported as an empty answer, not an error.
type Prompter interface {
	Line(prompt string) (string, error)
	Secret(prompt string) (string, error)
}

// Console is a Prompter over a reader/writer pair, normally stdin/stdout.
type Console struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer

	isTerminal func(any) bool
	width      func(any) int
}

// NewConsole creates a Console. When in is a terminal, Secret disables echo.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:         in,
		reader:     bufio.NewReader(in),
		out:        out,
		isTerminal: terminal.IsTerminal,
		width:      terminal.Width,
	}
}

// Stdio returns a Console on the process's standard streams.
func Stdio() *Console { return NewConsole(os.Stdin, os.Stdout) }

// Line prints prompt and reads one line.
func (c *Console) Line(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	return c.readLine()
}

// Secret prints prompt and reads one line without echoing it when possible.
// If echo cannot be disabled but the output is a terminal, the prompt line is
// wiped from the screen afterwards. Piped input is never echoed, so only the
// prompt occupies the screen.
func (c *Console) Secret(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	if f, ok := c.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(c.out)
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}

	v, err := c.readLine()
	if err != nil {
		return "", err
	}
	if c.isTerminal(c.out) {
		terminal.ClearPreviousLines(c.out, runewidth.StringWidth(prompt), c.width(c.out))
	}
	return v, nil
}

func (c *Console) readLine() (string, error) {
	s, err := c.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(s), nil
}

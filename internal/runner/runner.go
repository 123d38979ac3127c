// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package runner executes external collaborator commands (saml2aws, aws, kubectl,
// ssh) on behalf of a workflow and reports the outcome uniformly.
//
// Commands are always run from an argument vector; nothing is passed through a
// local shell. A failed command never surfaces as a Go error from Run: it is
// printed for the operator and returned as a Result with OK set to false, which
// the caller must check.
package runner

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/alessio/shellescape"

	"hostcheck/cli/internal/logging"
	"hostcheck/cli/internal/terminal"
)

// Mode selects how a command is attached to the terminal.
type Mode int

const (
	// Capture waits for the command and returns its standard output.
	Capture Mode = iota
	// Interactive attaches the command to the operator's terminal so prompts
	// (passwords, MFA codes, shells) work. No output is captured.
	Interactive
	// Quiet runs the command for its side effect only. Output is shown
	// only when the command fails.
	Quiet
)

func (m Mode) String() string {
	switch m {
	case Capture:
		return "capture"
	case Interactive:
		return "interactive"
	case Quiet:
		return "quiet"
	default:
		return "unknown"
	}
}

// Command is a program and its arguments.
type Command struct {
	Name string
	Args []string
}

// New builds a Command.
func New(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// Argv returns the full argument vector including the program name.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// String renders the command as a copy-pasteable shell line.
// It is not masked; print it through a logging.Printer.
func (c Command) String() string {
	return shellescape.QuoteCommand(c.Argv())
}

// Result is the outcome of one command.
type Result struct {
	OK     bool
	Stdout string
	Stderr string
	Err    error
}

// Runner runs commands. Implementations must not return until the command exits.
type Runner interface {
	Run(ctx context.Context, c Command, mode Mode) Result
}

// Exec is the os/exec backed Runner.
type Exec struct {
	Printer *logging.Printer
	// Terminal streams used by Interactive mode.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Spinner shows an inline spinner while Capture and Quiet commands run.
	Spinner bool
}

// NewExec returns an Exec attached to the process's standard streams.
// The spinner is enabled only when stdout is a terminal.
func NewExec(p *logging.Printer) *Exec {
	return &Exec{
		Printer: p,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Spinner: terminal.IsTerminal(os.Stdout),
	}
}

// display masks each argument before quoting so a secret is never split by
// shell quoting before the redactor sees it.
func (e *Exec) display(c Command) string {
	r := e.Printer.Redactor()
	argv := c.Argv()
	for i, a := range argv {
		argv[i] = r.Redact(a)
	}
	return shellescape.QuoteCommand(argv)
}

// Run executes c in the given mode and blocks until it exits. No timeout is
// applied; only ctx cancellation stops a running command.
func (e *Exec) Run(ctx context.Context, c Command, mode Mode) Result {
	e.Printer.Step("Running: %s", e.display(c))

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)

	if mode == Interactive {
		cmd.Stdin = e.Stdin
		cmd.Stdout = e.Stdout
		cmd.Stderr = e.Stderr
		if err := cmd.Run(); err != nil {
			e.Printer.Fail("Command failed: %v", err)
			return Result{Err: err}
		}
		return Result{OK: true}
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	stop := func() {}
	if e.Spinner {
		stop = terminal.StartSpinner("waiting for " + c.Name)
	}
	err := cmd.Run()
	stop()

	res := Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
	if err != nil {
		e.Printer.Fail("Command failed: %v", err)
		e.Printer.Block("STDOUT", res.Stdout)
		e.Printer.Block("STDERR", res.Stderr)
		return res
	}
	res.OK = true
	if mode == Quiet {
		res.Stdout, res.Stderr = "", ""
	}
	return res
}

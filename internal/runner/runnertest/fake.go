// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package runnertest provides a scripted runner.Runner for workflow tests.
package runnertest

import (
	"context"
	"strings"

	"hostcheck/cli/internal/runner"
)

// Call records one Run invocation.
type Call struct {
	Command runner.Command
	Mode    runner.Mode
}

// Line returns the call's argv joined by spaces.
func (c Call) Line() string { return strings.Join(c.Command.Argv(), " ") }

// Response is returned for the first command whose joined argv contains Match.
type Response struct {
	Match  string
	Result runner.Result
}

// Fake answers commands from Responses. Unmatched commands succeed with no output.
type Fake struct {
	Responses []Response
	Calls     []Call
}

// On appends a response and returns f for chaining.
func (f *Fake) On(match string, res runner.Result) *Fake {
	f.Responses = append(f.Responses, Response{Match: match, Result: res})
	return f
}

// Run implements runner.Runner.
func (f *Fake) Run(_ context.Context, c runner.Command, mode runner.Mode) runner.Result {
	call := Call{Command: c, Mode: mode}
	f.Calls = append(f.Calls, call)
	line := call.Line()
	for _, r := range f.Responses {
		if strings.Contains(line, r.Match) {
			return r.Result
		}
	}
	return runner.Result{OK: true}
}

// Ran reports whether any recorded call contains match.
func (f *Fake) Ran(match string) bool {
	_, ok := f.Find(match)
	return ok
}

// Find returns the first recorded call containing match.
func (f *Fake) Find(match string) (Call, bool) {
	for _, c := range f.Calls {
		if strings.Contains(c.Line(), match) {
			return c, true
		}
	}
	return Call{}, false
}

// OK is a successful result with stdout.
func OK(stdout string) runner.Result { return runner.Result{OK: true, Stdout: stdout} }

// Failed is a failed result.
func Failed(stderr string) runner.Result {
	return runner.Result{Stderr: stderr, Err: errExit}
}

type exitError string

func (e exitError) Error() string { return string(e) }

const errExit = exitError("exit status 1")

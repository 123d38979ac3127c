// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package errors defines typed errors with categories for user-friendly reporting.
// Every workflow failure carries a machine-readable Kind so the command layer can
// decide which hint to show without parsing message text.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// InvalidInput indicates empty or out-of-range operator input.
	InvalidInput Kind = "invalid_input"
	// UnsupportedRegion indicates a region selector outside the fixed set.
	UnsupportedRegion Kind = "unsupported_region"
	// CommandFailed indicates an external command exited nonzero.
	CommandFailed Kind = "command_failed"
	// MissingValue indicates a required value was still absent after fallback.
	MissingValue Kind = "missing_value"
	// QueryFailed indicates the diagnostic query could not be run.
	QueryFailed Kind = "query_failed"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the Kind of the first *E in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

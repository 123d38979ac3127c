// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package terminal

import (
	"golang.org/x/term"
)

type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether v is an *os.File (or anything with Fd) attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the width of the terminal behind v, or 80.
func Width(v any) int {
	if f, ok := v.(fder); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

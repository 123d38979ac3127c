// Package terminal provides utilities for terminal operations such as clearing
// echoed input, spinners and TTY detection.
package terminal

import (
	"fmt"
	"io"
	"math"
)

// ClearPreviousLines clears text from the terminal that was previously printed.
// It calculates how many lines were used by the provided text based on the
// given terminal width, then moves up and clears each line.
//
// This is used to wipe a secret the operator typed when echo could not be
// disabled (stdin is not a terminal but stdout is).
//
// The function:
//  1. Calculates how many lines the text occupied at width columns
//  2. Moves up and clears each line using ANSI escape sequences
//  3. Adds +1 to account for the extra line created when user presses Enter
func ClearPreviousLines(w io.Writer, textLength, width int) {
	if width <= 0 {
		width = 80
	}

	totalLines := int(math.Ceil(float64(textLength) / float64(width)))
	if totalLines < 1 {
		totalLines = 1
	}

	// After Enter, cursor is on a NEW line below the input.
	linesToClear := totalLines + 1

	for i := 0; i < linesToClear; i++ {
		fmt.Fprint(w, "\r\x1b[2K") // Move to start and clear entire line
		if i < linesToClear-1 {
			fmt.Fprint(w, "\x1b[1A") // Move up one line (don't move up on last iteration)
		}
	}
}

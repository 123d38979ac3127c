// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package table renders whitespace-delimited command output (a header line
// followed by data lines, as printed by the mysql client in batch mode) as an
// aligned text grid.
package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// NoRows is rendered when the input has no data lines.
const NoRows = "(no rows)"

const (
	cellSep   = " | "
	headerSep = "-+-"
)

// Result is a parsed header row plus data rows. Every row has exactly
// len(Headers) cells.
type Result struct {
	Headers []string
	Rows    [][]string
}

// Parse splits raw into a Result. It returns false when raw has fewer than two
// non-empty lines.
//
// Rows shorter than the header are padded with empty cells. Surplus fields on a
// row are joined with a single space into the last column, so values that
// contain spaces are kept rather than dropped.
func Parse(raw string) (Result, bool) {
	var lines []string
	for _, l := range strings.Split(raw, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) < 2 {
		return Result{}, false
	}

	headers := strings.Fields(lines[0])
	res := Result{Headers: headers, Rows: make([][]string, 0, len(lines)-1)}
	for _, l := range lines[1:] {
		res.Rows = append(res.Rows, normalize(strings.Fields(l), len(headers)))
	}
	return res, true
}

func normalize(fields []string, n int) []string {
	row := make([]string, n)
	if len(fields) > n {
		copy(row, fields[:n-1])
		row[n-1] = strings.Join(fields[n-1:], " ")
		return row
	}
	copy(row, fields)
	return row
}

// Widths returns the display width of each column: the widest of the header
// and every cell in that column.
func (r Result) Widths() []int {
	widths := make([]int, len(r.Headers))
	for i, h := range r.Headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range r.Rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// Render returns the header line, the dash separator, then one line per row.
// Cells are left-justified and joined by " | ". There is no trailing newline.
func (r Result) Render() string {
	widths := r.Widths()

	var b strings.Builder
	b.WriteString(formatRow(r.Headers, widths))
	b.WriteByte('\n')

	dashes := make([]string, len(widths))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	b.WriteString(strings.Join(dashes, headerSep))

	for _, row := range r.Rows {
		b.WriteByte('\n')
		b.WriteString(formatRow(row, widths))
	}
	return b.String()
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = c + strings.Repeat(" ", widths[i]-runewidth.StringWidth(c))
	}
	return strings.Join(padded, cellSep)
}

// Format renders raw as a grid, or NoRows when it has no data lines.
func Format(raw string) string {
	res, ok := Parse(raw)
	if !ok {
		return NoRows
	}
	return res.Render()
}

// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package table

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "empty input",
			raw:  "",
			want: NoRows,
		},
		{
			name: "header only",
			raw:  "id\thostname\tresponding\n",
			want: NoRows,
		},
		{
			name: "blank lines only",
			raw:  "\n   \n\t\n",
			want: NoRows,
		},
		{
			name: "single row",
			raw:  "id\thostname\tresponding\nh-1\tnode01.example\t1\n",
			want: "id  | hostname       | responding\n" +
				"----+----------------+-----------\n" +
				"h-1 | node01.example | 1         ",
		},
		{
			name: "blank lines between rows are skipped",
			raw:  "a b\n\n1 2\n\n333 4\n",
			want: "a   | b\n" +
				"----+--\n" +
				"1   | 2\n" +
				"333 | 4",
		},
		{
			name: "short row is padded",
			raw:  "a b c\n1 2\n",
			want: "a | b | c\n" +
				"--+---+--\n" +
				"1 | 2 |  ",
		},
		{
			name: "wide characters align by display width",
			raw:  "id name\n1 主机\nh-22 db\n",
			want: "id   | name\n" +
				"-----+-----\n" +
				"1    | 主机\n" +
				"h-22 | db  ",
		},
		{
			name: "long row folds into last column",
			raw:  "id name\n1 two words\n",
			want: "id | name     \n" +
				"---+----------\n" +
				"1  | two words",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.raw)
			if got != tt.want {
				t.Errorf("Format() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestFormatPreservesRowCount(t *testing.T) {
	raw := "id hostname responding\n" +
		"1 alpha 1\n" +
		"2 beta 0\n" +
		"3 gamma-longer-name 1\n"

	lines := strings.Split(Format(raw), "\n")
	// header + separator + 3 rows
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), strings.Join(lines, "\n"))
	}

	widths := []int{2, len("gamma-longer-name"), len("responding")}
	for _, l := range append([]string{lines[0]}, lines[2:]...) {
		cells := strings.Split(l, cellSep)
		if len(cells) != 3 {
			t.Fatalf("line %q has %d cells", l, len(cells))
		}
		for i, c := range cells {
			if len(c) != widths[i] {
				t.Errorf("cell %q width %d, want %d", c, len(c), widths[i])
			}
			if strings.HasPrefix(c, " ") {
				t.Errorf("cell %q is not left-justified", c)
			}
		}
	}
}

func TestParse(t *testing.T) {
	res, ok := Parse("id hostname\nh-1 node\nh-2\n")
	if !ok {
		t.Fatal("Parse() ok = false")
	}
	if len(res.Headers) != 2 || res.Headers[0] != "id" || res.Headers[1] != "hostname" {
		t.Errorf("Headers = %v", res.Headers)
	}
	if len(res.Rows) != 2 {
		t.Fatalf("Rows = %v", res.Rows)
	}
	if res.Rows[1][0] != "h-2" || res.Rows[1][1] != "" {
		t.Errorf("short row = %v, want [h-2 \"\"]", res.Rows[1])
	}
}

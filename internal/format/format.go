// Package format renders key matrices and letter sequences as fixed-width text.
package format

import (
	"fmt"
	"strings"

	"github.com/idelchi/gohill/internal/hill"
)

const (
	// FieldWidth is the default column width of a key matrix entry.
	FieldWidth = 4
	// LineWidth is the default number of letters per line of a text block.
	LineWidth = 80
)

// Matrix renders key one row per line, each entry right-aligned in a field of width.
// Entries wider than the field are printed in full.
func Matrix(key *hill.Key, width int) string {
	rows := key.Rows()
	lines := make([]string, len(rows))

	for i, row := range rows {
		var line strings.Builder

		for _, v := range row {
			fmt.Fprintf(&line, "%*d", width, v)
		}

		lines[i] = line.String()
	}

	return strings.Join(lines, "\n")
}

// Wrap splits text into lines of exactly width characters, the last may be shorter.
// Lines are joined by newlines without a trailing one.
func Wrap(text string, width int) string {
	if width < 1 || len(text) <= width {
		return text
	}

	chunks := make([]string, 0, (len(text)+width-1)/width)

	for start := 0; start < len(text); start += width {
		chunks = append(chunks, text[start:min(start+width, len(text))])
	}

	return strings.Join(chunks, "\n")
}

// Package table pads rows of cells into aligned columns. Cells may carry
// ANSI styling; widths are measured on printable runes only.
package table

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const columnGap = "  "

// Format pads the rows so every column is as wide as its widest cell.
// Short rows are allowed; missing cells render empty.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = formatRow(row, widths, alignments)
	}
	return out
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			for len(widths) <= c {
				widths = append(widths, 0)
			}
			if w := ansi.PrintableRuneWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

func formatRow(row []string, widths []int, alignments []Alignment) string {
	var b strings.Builder
	for c, width := range widths {
		if c > 0 {
			b.WriteString(columnGap)
		}
		var cell string
		if c < len(row) {
			cell = row[c]
		}
		pad := width - ansi.PrintableRuneWidth(cell)
		if pad < 0 {
			pad = 0
		}
		if c < len(alignments) && alignments[c] == AlignRight {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(cell)
		} else {
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	return strings.TrimRight(b.String(), " ")
}

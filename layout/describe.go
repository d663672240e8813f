package layout

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

type alignment int

const (
	alignLeft alignment = iota
	alignRight
)

var describeHeader = []string{"#", "FIELD", "ENCODING", "OFFSET", "BOUND"}

var describeAligns = []alignment{alignRight, alignLeft, alignLeft, alignRight, alignRight}

// Describe writes a table of the layout's fields to w: position, name,
// encoding, the most bytes written before the field, and the field's
// bound. The title line carries the record bound.
//
//	access (bound 38)
//	+---+---------+------------------------------+--------+-------+
//	| # | FIELD   | ENCODING                     | OFFSET | BOUND |
//	+---+---------+------------------------------+--------+-------+
//	| 1 | status  | word16_dec                   |      0 |     5 |
//	| 2 |         | literal " "                  |      5 |     1 |
//	| 3 | elapsed | union(word32_dec|double_dec) |      6 |    32 |
//	+---+---------+------------------------------+--------+-------+
func (l *Layout) Describe(w io.Writer) error {
	rows := make([][]string, len(l.fields))
	for i, f := range l.fields {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			f.Name,
			f.Encoding,
			strconv.Itoa(f.Offset),
			strconv.Itoa(f.Bound),
		}
	}
	widths := computeWidths(describeHeader, rows)

	title := l.name
	if title == "" {
		title = "layout"
	}
	if _, err := fmt.Fprintf(w, "%s (bound %d)\n", title, l.bound); err != nil {
		return err
	}
	if err := drawHLine(w, widths); err != nil {
		return err
	}
	if err := drawRow(w, describeHeader, widths, nil); err != nil {
		return err
	}
	if err := drawHLine(w, widths); err != nil {
		return err
	}
	for _, row := range rows {
		if err := drawRow(w, row, widths, describeAligns); err != nil {
			return err
		}
	}
	return drawHLine(w, widths)
}

func computeWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func drawHLine(w io.Writer, widths []int) error {
	var sb strings.Builder
	sb.WriteString("+")
	for _, width := range widths {
		sb.WriteString(strings.Repeat("-", width+2))
		sb.WriteString("+")
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawRow(w io.Writer, cells []string, widths []int, aligns []alignment) error {
	var sb strings.Builder
	sb.WriteString("|")
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		align := alignLeft
		if i < len(aligns) {
			align = aligns[i]
		}
		sb.WriteString(" ")
		sb.WriteString(alignCell(cell, width, align))
		sb.WriteString(" |")
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func alignCell(s string, width int, align alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	if align == alignRight {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}

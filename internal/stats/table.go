package stats

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/casedrill/internal/model"
)

// styleColumns heads the per-style table. Every column after the style name
// is numeric and right-aligned.
var styleColumns = styleRow{"Style", "Accuracy", "Correct", "Incorrect"}

type styleRow [4]string

func newStyleRow(agg model.StyleAggregate) styleRow {
	return styleRow{
		agg.Style,
		fmt.Sprintf("%.2f%%", Accuracy(agg.Correct, agg.Incorrect)*100),
		fmt.Sprintf("%d", agg.Correct),
		fmt.Sprintf("%d", agg.Incorrect),
	}
}

// formatStyleTable lays out the header and rows with columns sized to the
// widest cell, measured in terminal cells.
func formatStyleTable(rows []styleRow) []string {
	var widths [len(styleColumns)]int
	for _, row := range append([]styleRow{styleColumns}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, styleColumns.format(widths))
	for _, row := range rows {
		lines = append(lines, row.format(widths))
	}
	return lines
}

func (r styleRow) format(widths [len(styleColumns)]int) string {
	cells := make([]string, len(r))
	for i, cell := range r {
		pad := strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell))
		if i == 0 {
			cells[i] = cell + pad
		} else {
			cells[i] = pad + cell
		}
	}
	return strings.Join(cells, " ")
}

package widgets

import "strings"

// Grid lays cells out in rows of Columns equal-width cells. Zero Columns
// means every cell on one row. Columns shrink until each cell is at least
// MinCellWidth wide, down to a single column.
type Grid struct {
	Cells        []Widget
	Columns      int
	Gap          int
	MinCellWidth int
}

// Fit returns how many columns the grid uses at the given width.
func (g Grid) Fit(width int) int {
	n := len(g.Cells)
	if n == 0 {
		return 0
	}
	cols := g.Columns
	if cols <= 0 || cols > n {
		cols = n
	}
	for cols > 1 {
		cell := (width - g.Gap*(cols-1)) / cols
		if cell >= g.MinCellWidth {
			break
		}
		cols--
	}
	return cols
}

func (g Grid) Render(width int) string {
	if width <= 0 || len(g.Cells) == 0 {
		return ""
	}
	cols := g.Fit(width)
	rows := make([]string, 0, (len(g.Cells)+cols-1)/cols)
	for start := 0; start < len(g.Cells); start += cols {
		row := make([]Widget, cols)
		for i := range row {
			if start+i < len(g.Cells) {
				row[i] = g.Cells[start+i]
			} else {
				row[i] = Lines{""}
			}
		}
		rows = append(rows, HStack{Widgets: row, Gap: g.Gap}.Render(width))
	}
	return strings.Join(rows, "\n")
}

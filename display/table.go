package display

const tableGap = 2

// WriteTable renders a tuple-list as a table: rows is a matrix of
// already-formatted cell strings (one row per tuple, one column per
// tuple element). Column widths are the max over rows of each column's
// measured width; every cell is padded to width+gap.
func WriteTable(p Printer, rows [][]string, measureWidth func(string) int) {
	if len(rows) == 0 {
		return
	}

	cols := len(rows[0])
	widths := make([]int, cols)
	for _, row := range rows {
		for j, cell := range row {
			if w := measureWidth(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}

	for _, row := range rows {
		for j, cell := range row {
			p.WriteString(cell)
			padding := widths[j] + tableGap - measureWidth(cell)
			if padding > 0 {
				p.WriteString(spaces(padding))
			}
		}
		p.WriteString("\n")
	}
}

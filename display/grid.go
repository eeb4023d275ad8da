package display

// GridLayout computes the down-columns-first placement of N entries of
// uniform column width colWidth into a terminal of width termWidth:
// columns = max(1, floor(termWidth / (colWidth+gap))), rows =
// ceil(N/columns), and entry (row, col) is index row+col*rows.
type GridLayout struct {
	Columns int
	Rows    int
}

const gridGap = 2

// ComputeGrid returns the layout for n entries whose rendered column
// width (including the widest entry but not the gap) is colWidth.
func ComputeGrid(n, colWidth, termWidth int) GridLayout {
	cellWidth := colWidth + gridGap
	columns := termWidth / cellWidth
	if columns < 1 {
		columns = 1
	}
	rows := (n + columns - 1) / columns
	return GridLayout{Columns: columns, Rows: rows}
}

// Index returns the entry index that belongs at (row, col), or -1 if
// that cell is a blank tail cell.
func (g GridLayout) Index(row, col, n int) int {
	i := row + col*g.Rows
	if i >= n {
		return -1
	}
	return i
}

// WriteGrid renders entries (already-formatted, possibly ANSI-styled
// strings) into p as a grid, each entry followed by enough padding to
// reach colWidth+gap. widths holds each entry's unstyled display width
// (measured before any ANSI styling was applied, since escape codes are
// invisible but not zero-length to a naive measurer).
func WriteGrid(p Printer, entries []string, widths []int, colWidth int) {
	n := len(entries)
	if n == 0 {
		return
	}
	termWidth, _ := p.ScreenSize()
	layout := ComputeGrid(n, colWidth, termWidth)

	for row := 0; row < layout.Rows; row++ {
		for col := 0; col < layout.Columns; col++ {
			i := layout.Index(row, col, n)
			if i < 0 {
				break
			}
			p.WriteString(entries[i])
			padding := colWidth + gridGap - widths[i]
			if padding > 0 {
				p.WriteString(spaces(padding))
			}
		}
		p.WriteString("\n")
	}
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeGridBasic(t *testing.T) {
	// 10 entries, width 8 (+2 gap = 10), term width 40 -> 4 columns, 3 rows.
	g := ComputeGrid(10, 8, 40)
	assert.Equal(t, 4, g.Columns)
	assert.Equal(t, 3, g.Rows)
}

func TestComputeGridAtLeastOneColumn(t *testing.T) {
	g := ComputeGrid(5, 100, 10)
	assert.Equal(t, 1, g.Columns)
	assert.Equal(t, 5, g.Rows)
}

func TestGridIndexFillsDownColumnsFirst(t *testing.T) {
	g := ComputeGrid(5, 8, 40) // columns=4, rows=2
	assert.Equal(t, 2, g.Rows)
	assert.Equal(t, 0, g.Index(0, 0, 5))
	assert.Equal(t, 1, g.Index(1, 0, 5))
	assert.Equal(t, 2, g.Index(0, 1, 5))
	assert.Equal(t, 3, g.Index(1, 1, 5))
	assert.Equal(t, 4, g.Index(0, 2, 5))
	assert.Equal(t, -1, g.Index(1, 2, 5))
}

func TestWriteGridProducesOneLinePerRow(t *testing.T) {
	p := NewBufferPrinter()
	entries := []string{"a", "bb", "ccc", "d"}
	widths := []int{1, 2, 3, 1}
	WriteGrid(p, entries, widths, 3)
	out := p.String()
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "ccc")
	// Width 3 (+2 gap = 5) in the buffer printer's 80 columns: 16 columns,
	// so all 4 entries fit in one row.
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

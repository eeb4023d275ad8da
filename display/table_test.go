package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteTablePadsColumnsToMaxWidth(t *testing.T) {
	p := NewBufferPrinter()
	rows := [][]string{
		{"a", "100"},
		{"bb", "2"},
	}
	WriteTable(p, rows, func(s string) int { return len(s) })

	lines := strings.Split(strings.TrimRight(p.String(), "\n"), "\n")
	require := assert.New(t)
	require.Len(lines, 2)
	// column 0 max width 2 + gap 2 = 4
	require.True(strings.HasPrefix(lines[0], "a   "))
	require.True(strings.HasPrefix(lines[1], "bb  "))
}

func TestWriteTableEmptyIsNoop(t *testing.T) {
	p := NewBufferPrinter()
	WriteTable(p, nil, func(s string) int { return len(s) })
	assert.Equal(t, "", p.String())
}

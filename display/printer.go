// Package display implements gosh's type-directed result display engine:
// given a Value and its inferred Type, pick and render a presentation
// (scalar, grid, table, nested list, string), through a Printer
// collaborator over the output terminal or buffer.
package display

import (
	"io"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/crypto/ssh/terminal"
)

// Printer is a superset of io.Writer used throughout the display engine.
// It deliberately carries no pagination prompt and no pipe/HTML sinks:
// every value the evaluator produces is already fully materialized in
// memory before display runs, so there are no streamed rows to page
// through.
type Printer interface {
	io.Writer

	WriteString(s string)
	WriteInt(v int64)

	// ScreenSize returns the terminal's (width, height) in characters.
	ScreenSize() (int, int)

	Close()
}

type batchPrinter struct {
	out io.Writer
}

// NewBatchPrinter creates a Printer that writes to out without any
// interactive paging, using a fixed 80-column default screen width.
func NewBatchPrinter(out io.Writer) Printer {
	return &batchPrinter{out: out}
}

func (p *batchPrinter) Write(data []byte) (int, error) { return p.out.Write(data) }
func (p *batchPrinter) WriteString(s string)            { io.WriteString(p.out, s) }
func (p *batchPrinter) WriteInt(v int64)                { io.WriteString(p.out, strconv.FormatInt(v, 10)) }
func (p *batchPrinter) ScreenSize() (int, int)          { return 80, 25 }
func (p *batchPrinter) Close()                          {}

// BufferPrinter is a batchPrinter over an in-memory buffer, used by
// tests to capture rendered output as a string.
type BufferPrinter struct {
	batchPrinter
	buf strings.Builder
}

// NewBufferPrinter creates an empty BufferPrinter.
func NewBufferPrinter() *BufferPrinter {
	b := &BufferPrinter{}
	b.batchPrinter.out = &b.buf
	return b
}

// String returns everything written so far.
func (p *BufferPrinter) String() string { return p.buf.String() }

// terminalPrinter is a Printer over a real terminal, sizing its grid and
// table layouts to the actual window.
type terminalPrinter struct {
	batchPrinter
}

// NewTerminalPrinter creates a Printer over out (normally os.Stdout),
// querying the real terminal size for grid/table layout.
func NewTerminalPrinter(out io.Writer) Printer {
	return &terminalPrinter{batchPrinter{out: out}}
}

func (p *terminalPrinter) ScreenSize() (int, int) {
	w, h, err := terminal.GetSize(syscall.Stdout)
	if err != nil {
		return 80, 25
	}
	return w, h
}

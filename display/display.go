package display

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/fedjmike/gosh/lang"
	"github.com/fedjmike/gosh/types"
)

var directoryStyle = color.New(color.FgBlue)

// measureWidth is the Unicode-aware display-width measurement every
// layout routine uses, so wide runes and combining marks don't throw
// off grid/table column alignment.
func measureWidth(s string) int { return runewidth.StringWidth(s) }

// Display renders result (of inferred type t) to p, choosing a
// presentation by type-directed dispatch: auto-apply nullary, then
// Invalid, then List sub-cases, then Str, then scalar (with a File
// detail).
func Display(ctx context.Context, p Printer, result lang.Value, t *types.Type) {
	if types.UnitAppliesToFn(t) {
		p.WriteString(fmt.Sprintf("(A value of %s has been automatically applied.)\n", t))
		result = lang.Call(ctx, result, lang.Unit)
		t = types.FnResult(t)
	}

	switch {
	case result.Kind() == lang.InvalidValue:
		displayRegular(p, result, t)

	case types.IsList(t):
		displayList(ctx, p, result, t)

	case types.KindOf(t) == types.Str:
		displayStr(p, result, t)

	case types.KindOf(t) == types.File:
		displayFileScalar(p, result, t)

	default:
		displayRegular(p, result, t)
	}
}

// displayFileScalar renders a bare File result: its name (styled and
// slash-suffixed if it's a directory, the same treatment a file-list grid
// entry gets), its type, and its file detail annotation.
func displayFileScalar(p Printer, v lang.Value, t *types.Type) {
	name := v.Filename()
	p.WriteString(styledFilename(name, name))
	p.WriteString(fmt.Sprintf(" :: %s\n", t))
	displayFileDetail(p, name)
}

func displayRegular(p Printer, v lang.Value, t *types.Type) {
	p.WriteString(v.String())
	p.WriteString(fmt.Sprintf(" :: %s\n", t))
}

func displayList(ctx context.Context, p Printer, result lang.Value, t *types.Type) {
	elem := types.ListElement(t)
	vec := result.Vector()

	switch {
	case types.IsList(elem):
		p.WriteString(displayNestedList(result, t, 0))
		p.WriteString(fmt.Sprintf(" :: %s\n", t))

	case len(vec) <= 1:
		displayRegular(p, result, t)

	case types.KindOf(elem) == types.File:
		displayFileList(p, vec, t)

	case types.KindOf(elem) == types.Tuple:
		displayTupleList(p, vec, t)

	default:
		displayRegular(p, result, t)
	}
}

// displayFileList renders a [File] as an autocomplete-style grid of
// names, directories styled distinctly.
func displayFileList(p Printer, vec []lang.Value, t *types.Type) {
	names := make([]string, len(vec))
	widths := make([]int, len(vec))
	colWidth := 0
	for i, v := range vec {
		names[i] = v.Filename()
		widths[i] = measureWidth(names[i])
		if widths[i] > colWidth {
			colWidth = widths[i]
		}
	}

	entries := make([]string, len(names))
	for i, name := range names {
		entries[i] = styledFilename(name, name)
	}

	WriteGrid(p, entries, widths, colWidth)
	p.WriteString(fmt.Sprintf(" :: %s\n", t))
}

// displayTupleList renders a [(t1, ..., tm)] as a table.
func displayTupleList(p Printer, vec []lang.Value, t *types.Type) {
	rows := make([][]string, len(vec))
	for i, row := range vec {
		cells := row.Vector()
		strs := make([]string, len(cells))
		for j, c := range cells {
			strs[j] = c.String()
		}
		rows[i] = strs
	}
	WriteTable(p, rows, measureWidth)
	p.WriteString(fmt.Sprintf(" :: %s\n", t))
}

// displayNestedList renders a list of lists: braces move to their own
// line, indented by depth, only when recursing into another list of
// lists (element type is itself List(List(_))).
func displayNestedList(v lang.Value, t *types.Type, depth int) string {
	elemType := types.ListElement(t)
	recursing := types.IsList(elemType) && types.IsList(types.ListElement(elemType))

	indent := spaces(depth + 1)
	out := "["

	if recursing {
		out += "\n" + indent
	}

	vec := v.Vector()
	for i, elem := range vec {
		if i != 0 {
			out += spaces(depth + 1)
		}
		if recursing {
			out += displayNestedList(elem, elemType, depth+1)
		} else {
			out += elem.String()
		}
		if i < len(vec)-1 {
			out += ",\n"
		}
	}

	if recursing {
		out += "\n" + spaces(depth)
	}
	out += "]"

	if depth == 0 && !recursing {
		out += "\n"
	}

	return out
}

// displayStr special-cases multiline strings: print verbatim without
// quotes, the type on its own line, and a missing-EOL warning if the
// final character isn't a newline. Single-line strings fall through to
// the scalar path.
func displayStr(p Printer, v lang.Value, t *types.Type) {
	s := v.Str()

	hasNewline := false
	for _, r := range s {
		if r == '\n' {
			hasNewline = true
			break
		}
	}

	if !hasNewline {
		displayRegular(p, v, t)
		return
	}

	missingEOL := len(s) == 0 || s[len(s)-1] != '\n'

	p.WriteString(s)
	if missingEOL {
		p.WriteString("\n")
	}
	p.WriteString(fmt.Sprintf(" :: %s\n", t))

	if missingEOL {
		p.WriteString("(This string was missing a final end of line character.)\n")
	}
}

// displayFileDetail prints the "(...)" annotation a bare File value
// gets: its size if a regular file, its mode description otherwise, an
// explanatory message on stat failure, and, if it's a directory, a
// grid listing of its children.
func displayFileDetail(p Printer, filename string) {
	info, err := os.Stat(filename)

	p.WriteString("(")
	switch {
	case os.IsNotExist(err):
		p.WriteString("This file does not exist")
	case os.IsPermission(err):
		p.WriteString("You do not have permission to access this path")
	case err != nil:
		// Better to say nothing than say something wrong.
	case info.IsDir():
		p.WriteString("A Dir")
	case info.Mode().IsRegular():
		p.WriteString(FormatSize(info.Size()))
	default:
		p.WriteString("A " + info.Mode().String())
	}
	p.WriteString(")\n")

	if err == nil && info.IsDir() {
		displayDirectory(p, filename)
	}
}

func displayDirectory(p Printer, dirname string) {
	entries, err := os.ReadDir(dirname)
	if err != nil {
		return
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	sort.Strings(names)

	colWidth := 0
	for _, name := range names {
		if w := measureWidth(name); w > colWidth {
			colWidth = w
		}
	}

	widths := make([]int, len(names))
	rendered := make([]string, len(names))
	for i, name := range names {
		widths[i] = measureWidth(name)
		rendered[i] = styledFilename(name, dirname+"/"+name)
	}

	WriteGrid(p, rendered, widths, colWidth)
}

// styledFilename renders displayName, styling it (suffixed "/") in blue
// if statPath is a directory. displayName and statPath differ for
// directory listings, where entries
// are displayed by their bare basename but must be stat'd relative to
// the directory being listed.
func styledFilename(displayName, statPath string) string {
	info, err := os.Stat(statPath)
	if err == nil && info.IsDir() {
		return directoryStyle.Sprint(displayName + "/")
	}
	return displayName
}

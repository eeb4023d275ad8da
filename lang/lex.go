package lang

import (
	"strconv"
	"strings"
	"text/scanner"

	"github.com/fedjmike/gosh/diag"
)

// tokKind tags a lexical token.
type tokKind int

const (
	tokEOF tokKind = iota
	tokStr               // a bareword or a quoted string; see Quoted.
	tokPunct             // one of '[', ']', ','
)

// token is one lexical unit. For tokStr, Quoted distinguishes a quoted
// string literal (which the parser turns into a StrLit/File) from a bare
// identifier (which becomes a SymbolLit) — the lexer, not the parser, is
// what knows whether the source text was quoted, so it must carry that
// bit forward.
type token struct {
	kind   tokKind
	text   string
	quoted bool
	pos    scanner.Position
	end    int // byte offset just past the token, for source-span tracking.
	punct  rune
}

// lexer is the state kept during lexical scanning of gosh source.
//
// It is restartable only by reinitialization (newLexer), matching the
// spec's note that lexerInit/lexerDestroy pair off one scan.
type lexer struct {
	sc   scanner.Scanner
	sink *diag.Sink
}

func newLexer(text string, sink *diag.Sink) *lexer {
	lx := &lexer{sink: sink}
	lx.sc.Init(strings.NewReader(text))
	lx.sc.Mode = scanner.ScanIdents | scanner.ScanStrings | scanner.ScanRawStrings
	lx.sc.Whitespace = 1<<'\t' | 1<<'\n' | 1<<'\r' | 1<<' '
	lx.sc.Error = func(s *scanner.Scanner, msg string) {
		sink.Errorf(s.Pos(), "%s", msg)
	}
	return lx
}

// next reads and returns the next token from the source.
func (lx *lexer) next() token {
	tok := lx.sc.Scan()
	pos := lx.sc.Position
	end := lx.sc.Pos().Offset

	switch tok {
	case scanner.EOF:
		return token{kind: tokEOF, pos: pos, end: end}
	case scanner.Ident:
		return token{kind: tokStr, text: lx.sc.TokenText(), quoted: false, pos: pos, end: end}
	case scanner.String, scanner.RawString:
		text, err := strconv.Unquote(lx.sc.TokenText())
		if err != nil {
			lx.sink.Errorf(pos, "malformed string literal: %v", err)
		}
		return token{kind: tokStr, text: text, quoted: true, pos: pos, end: end}
	case '[', ']', ',':
		return token{kind: tokPunct, punct: tok, pos: pos, end: end}
	default:
		lx.sink.Errorf(pos, "unexpected character %q", tok)
		// Keep making progress: skip the bad character and return the
		// token after it, so the parser never sees it.
		return lx.next()
	}
}

package lang

import (
	"github.com/fedjmike/gosh/diag"
)

// parser is a hand-rolled recursive-descent parser over the lexer's token
// stream, implementing the grammar:
//
//	expr := app
//	app  := atom atom*
//	atom := str | symbol | '[' list ']'
//	list := ε | expr (',' expr)*
//
// Juxtaposition (app) is left-associative function application: "f a b"
// parses as FnApp{L: f, Children: [a, b]}, evaluated as ((f a) b).
type parser struct {
	lx     *lexer
	tok    token
	sink   *diag.Sink
	errors int
}

// Parse lexes and parses text as a single gosh expression, reporting
// lex/syntax errors to sink. It always returns a non-nil Node: on any
// unrecoverable error it returns an ErrorNode rather than nil, so callers
// never need a nil check. The second return is the number of syntax
// errors encountered (0 means a clean parse).
func Parse(text string, sink *diag.Sink) (Node, int) {
	p := &parser{lx: newLexer(text, sink), sink: sink}
	p.advance()

	if p.tok.kind == tokEOF {
		return &ErrorNode{node: node{pos: p.tok.pos}}, p.errors
	}

	n := p.parseExpr()

	if p.tok.kind != tokEOF {
		p.errorf("unexpected trailing input at %q", p.tok.text)
	}

	return n, p.errors
}

func (p *parser) advance() {
	p.tok = p.lx.next()
}

func (p *parser) errorf(format string, args ...interface{}) {
	p.errors++
	p.sink.Errorf(p.tok.pos, format, args...)
}

// parseExpr parses one application expression. There is currently only
// one precedence level (juxtaposition), so expr and app coincide.
func (p *parser) parseExpr() Node {
	return p.parseApp()
}

// parseApp parses a head atom followed by zero or more argument atoms.
func (p *parser) parseApp() Node {
	head := p.parseAtom()

	var args []Node
	for p.startsAtom() {
		args = append(args, p.parseAtom())
	}

	if len(args) == 0 {
		return head
	}
	return &FnApp{node: node{pos: head.Pos()}, L: head, Children: args}
}

// startsAtom reports whether the current token can begin an atom, i.e.
// whether parseApp should keep consuming arguments.
func (p *parser) startsAtom() bool {
	switch p.tok.kind {
	case tokStr:
		return true
	case tokPunct:
		return p.tok.punct == '['
	default:
		return false
	}
}

// parseAtom parses a single str, symbol, or bracketed list.
func (p *parser) parseAtom() Node {
	switch {
	case p.tok.kind == tokStr && p.tok.quoted:
		n := &StrLit{node: node{pos: p.tok.pos}, Text: p.tok.text}
		p.advance()
		return n

	case p.tok.kind == tokStr:
		n := &SymbolLit{node: node{pos: p.tok.pos}, Name: p.tok.text}
		p.advance()
		return n

	case p.tok.kind == tokPunct && p.tok.punct == '[':
		return p.parseListLit()

	default:
		pos := p.tok.pos
		p.errorf("expected a value, got %s", p.describeTok())
		// Don't consume tokEOF, so callers can detect end of input; do
		// consume anything else to make progress.
		if p.tok.kind != tokEOF {
			p.advance()
		}
		return &ErrorNode{node: node{pos: pos}}
	}
}

// parseListLit parses "[" list "]" where list is an empty, or a
// comma-separated sequence of expressions. The opening '[' is current.
func (p *parser) parseListLit() Node {
	open := p.tok.pos
	p.advance() // consume '['

	var children []Node

	if p.tok.kind == tokPunct && p.tok.punct == ']' {
		p.advance()
		return &ListLit{node: node{pos: open}, Children: children}
	}

	for {
		children = append(children, p.parseExpr())

		if p.tok.kind == tokPunct && p.tok.punct == ',' {
			p.advance()
			// A trailing comma before ']' is a syntax error: the grammar
			// requires another expr after every comma.
			if p.tok.kind == tokPunct && p.tok.punct == ']' {
				p.errorf("unexpected trailing comma before ']'")
				break
			}
			continue
		}
		break
	}

	if p.tok.kind == tokPunct && p.tok.punct == ']' {
		p.advance()
	} else {
		p.errorf("expected ']', got %s", p.describeTok())
	}

	return &ListLit{node: node{pos: open}, Children: children}
}

func (p *parser) describeTok() string {
	switch p.tok.kind {
	case tokEOF:
		return "end of input"
	case tokPunct:
		return "'" + string(p.tok.punct) + "'"
	default:
		return "\"" + p.tok.text + "\""
	}
}

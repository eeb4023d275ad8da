package lang

import (
	"strings"
	"text/scanner"

	"github.com/fedjmike/gosh/symbol"
	"github.com/fedjmike/gosh/types"
)

// Node is an AST node. Every node carries a derived-type slot (dt, see
// Dt/SetDt) that starts Invalid and is filled in by the analyzer, and a
// source position for diagnostics.
type Node interface {
	// Pos reports the location of this node in the source text.
	Pos() scanner.Position

	// Dt returns the node's derived (inferred) type. Before analysis it is
	// types.NewInvalid(); the analyzer sets it on every node, including
	// nodes that end up Invalid.
	Dt() *types.Type

	// SetDt is called exactly once per node, by the analyzer.
	SetDt(*types.Type)

	// String produces a human-readable (not necessarily round-trippable)
	// description, used by the ":ast" REPL command and in diagnostics.
	String() string
}

// node is embedded by every concrete node type to share the dt slot and
// position.
type node struct {
	pos scanner.Position
	dt  *types.Type
}

func (n *node) Pos() scanner.Position { return n.pos }
func (n *node) Dt() *types.Type {
	if n.dt == nil {
		return types.NewInvalid()
	}
	return n.dt
}
func (n *node) SetDt(t *types.Type) { n.dt = t }

// FnApp is a function application by juxtaposition: "f a1 a2 ...". L is
// the head expression; Children are the arguments in order. Curried
// application folds left: ((f a1) a2) ...
type FnApp struct {
	node
	L        Node
	Children []Node
}

func (n *FnApp) String() string {
	parts := make([]string, len(n.Children)+1)
	parts[0] = n.L.String()
	for i, c := range n.Children {
		parts[i+1] = c.String()
	}
	return strings.Join(parts, " ")
}

// StrLit is a quoted string literal. The analyzer gives it type File: a
// quoted atom denotes a path.
type StrLit struct {
	node
	Text string
}

func (n *StrLit) String() string { return `"` + n.Text + `"` }

// ListLit is a bracketed, comma-separated list of expressions.
type ListLit struct {
	node
	Children []Node
}

func (n *ListLit) String() string {
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// SymbolLit is a bareword identifier reference. Sym is filled in by the
// analyzer once the name is resolved against the symbol table; the
// evaluator only ever looks at Sym, never at Name, since resolution
// belongs solely to the analyzer.
type SymbolLit struct {
	node
	Name string
	Sym  *Symbol // resolved by the analyzer; nil means unresolved/unbound.
}

func (n *SymbolLit) String() string { return n.Name }

// ErrorNode is the parser's recovery node: produced when nothing else can
// be built (e.g. empty input, or a parse error with no usable prefix). It
// keeps the invariant that the parser always returns a non-nil tree.
type ErrorNode struct {
	node
}

func (n *ErrorNode) String() string { return "<error>" }

var _ Node = (*FnApp)(nil)
var _ Node = (*StrLit)(nil)
var _ Node = (*ListLit)(nil)
var _ Node = (*SymbolLit)(nil)
var _ Node = (*ErrorNode)(nil)

// Symbol is a named binding: a type and an optional value, as spec.md's
// symbol table component describes. Symbols live in a Scope.
type Symbol struct {
	Name string
	ID   symbol.ID
	Type *types.Type
	// Value is set for builtins (and, in the future, for "name := expr"
	// global bindings); it is the zero Value for symbols that exist only
	// at the type level.
	Value    Value
	HasValue bool
}

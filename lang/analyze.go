package lang

import (
	"github.com/fedjmike/gosh/diag"
	"github.com/fedjmike/gosh/types"
)

// analyzer walks an untyped AST and sets dt on every node, resolving
// SymbolLit references against a Scope along the way. The evaluator never
// re-resolves a name: all lookup happens here, once, per the design note
// that symbol resolution belongs solely to the analyzer.
type analyzer struct {
	scope *Scope
	sink  *diag.Sink
}

// Analyze type-checks root against scope, setting dt on every node
// (visiting children before parents, never short-circuiting) and
// reporting diagnostics to sink. It returns the number of errors newly
// added to sink during analysis.
func Analyze(root Node, scope *Scope, sink *diag.Sink) int {
	before := sink.Snapshot()
	a := &analyzer{scope: scope, sink: sink}
	a.analyze(root)
	return int(sink.Snapshot() - before)
}

func (a *analyzer) analyze(n Node) {
	switch node := n.(type) {
	case *StrLit:
		node.SetDt(types.NewFile())

	case *SymbolLit:
		a.analyzeSymbolLit(node)

	case *ListLit:
		a.analyzeListLit(node)

	case *FnApp:
		a.analyzeFnApp(node)

	case *ErrorNode:
		node.SetDt(types.NewInvalid())

	default:
		n.SetDt(types.NewInvalid())
	}
}

func (a *analyzer) analyzeSymbolLit(n *SymbolLit) {
	sym, ok := a.scope.Lookup(n.Name)
	if !ok {
		a.sink.Errorf(n.Pos(), "unknown symbol %q", n.Name)
		n.SetDt(types.NewInvalid())
		return
	}
	n.Sym = sym
	n.SetDt(sym.Type)
}

func (a *analyzer) analyzeListLit(n *ListLit) {
	for _, c := range n.Children {
		a.analyze(c)
	}

	if len(n.Children) == 0 {
		n.SetDt(types.NewList(types.NewInvalid()))
		return
	}

	elemType := n.Children[0].Dt()
	for _, c := range n.Children[1:] {
		if !types.Equal(c.Dt(), elemType) {
			a.sink.Errorf(n.Pos(), "list element mismatch: %s vs %s", elemType, c.Dt())
			n.SetDt(types.NewInvalid())
			return
		}
	}
	n.SetDt(types.NewList(elemType))
}

func (a *analyzer) analyzeFnApp(n *FnApp) {
	a.analyze(n.L)
	for _, c := range n.Children {
		a.analyze(c)
	}

	t := n.L.Dt()
	if types.KindOf(t) == types.Invalid {
		n.SetDt(types.NewInvalid())
		return
	}
	if types.KindOf(t) != types.Fn {
		a.sink.Errorf(n.Pos(), "not a function: %s", n.L.Dt())
		n.SetDt(types.NewInvalid())
		return
	}

	for i, c := range n.Children {
		if types.KindOf(t) == types.Invalid {
			n.SetDt(types.NewInvalid())
			return
		}
		if types.KindOf(t) != types.Fn {
			a.sink.Errorf(n.Pos(), "too many arguments: %s has no parameter for argument %d", n.L.Dt(), i+1)
			n.SetDt(types.NewInvalid())
			return
		}

		param, result := types.FnParam(t), types.FnResult(t)
		if types.KindOf(c.Dt()) == types.Invalid {
			// The argument's own error was already reported where it was
			// analyzed; don't re-diagnose it here, but an invalid child
			// still makes the whole application Invalid.
			n.SetDt(types.NewInvalid())
			return
		}
		if !types.Equal(c.Dt(), param) {
			a.sink.Errorf(c.Pos(), "argument %d type mismatch: expected %s, got %s", i+1, param, c.Dt())
			n.SetDt(types.NewInvalid())
			return
		}
		t = result
	}

	n.SetDt(t)
}

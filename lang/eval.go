package lang

import (
	"context"

	"github.com/fedjmike/gosh/diag"
)

// Env is the opaque context threaded through evaluation. The core carries
// no mutable state beyond the symbol table; it is the extension point for
// future scoped bindings (e.g. "name := expr").
type Env struct {
	Scope *Scope
}

// NewEnv creates an Env rooted at scope.
func NewEnv(scope *Scope) *Env {
	return &Env{Scope: scope}
}

// Eval runs node to a Value under env. It dispatches by AST kind and is
// total on well-typed input: ill-typed nodes (dt Invalid) propagate
// Invalid rather than panicking. Callers should first snapshot sink and
// check ErrorsSince to decide whether to call Eval at all — Eval itself
// does not consult diagnostics, since by this phase they have already
// been reported.
func Eval(ctx context.Context, env *Env, node Node) Value {
	switch n := node.(type) {
	case *StrLit:
		return NewFile(n.Text)

	case *SymbolLit:
		if n.Sym == nil || !n.Sym.HasValue {
			return Invalid
		}
		return n.Sym.Value

	case *ListLit:
		vals := make([]Value, len(n.Children))
		for i, c := range n.Children {
			vals[i] = Eval(ctx, env, c)
		}
		return NewVector(vals)

	case *FnApp:
		result := Eval(ctx, env, n.L)
		for _, c := range n.Children {
			arg := Eval(ctx, env, c)
			Debugf(n, "applying %s to %s", result, arg)
			result = Call(ctx, result, arg)
		}
		return result

	default:
		return Invalid
	}
}

// Run is the pipeline entry point: parse, analyze, and — only if no
// errors were reported during those phases — evaluate. It returns the
// resulting value (Invalid if the pipeline stopped short), the analyzed
// tree (for ":ast"/":type"), and whether evaluation actually ran.
func Run(ctx context.Context, env *Env, text string, sink *diag.Sink) (Value, Node, bool) {
	snapshot := sink.Snapshot()

	tree, _ := Parse(text, sink)
	Analyze(tree, env.Scope, sink)

	if sink.ErrorsSince(snapshot) {
		return Invalid, tree, false
	}

	var result Value
	if err := recoverEval(func() { result = Eval(ctx, env, tree) }); err != nil {
		Errorf(tree, "internal error during evaluation: %v", err)
		return Invalid, tree, false
	}

	return result, tree, true
}

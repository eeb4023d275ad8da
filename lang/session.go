package lang

import (
	"context"

	"github.com/fedjmike/gosh/diag"
)

// Session owns the state that must persist across an entire REPL
// lifetime rather than being rebuilt per line: the global scope (so a
// symbol added on one line, e.g. a future "name := expr" binding, is
// visible on the next) and one diag.Sink, whose monotonic error count is
// the evaluator's run guard. The package-level type intern pool is
// already process-global and needs no session wrapper.
//
// A one-shot CLI invocation (gosh evaluating a single argument) uses a
// Session exactly the same way, just discarded after one call to Eval.
type Session struct {
	Env  *Env
	Sink *diag.Sink
}

// NewSession creates a Session with a fresh global scope populated with
// the core's builtins, and a fresh diagnostic sink.
func NewSession() *Session {
	scope := NewGlobalScope()
	RegisterBuiltins(scope)
	return &Session{
		Env:  NewEnv(scope),
		Sink: diag.NewSink(),
	}
}

// Eval runs text through the full pipeline (parse, analyze, evaluate)
// under this session's persistent scope and sink, returning the
// resulting value, the analyzed tree, and whether evaluation actually
// ran (false if lex/parse/analysis reported any error).
func (s *Session) Eval(ctx context.Context, text string) (Value, Node, bool) {
	return Run(ctx, s.Env, text, s.Sink)
}

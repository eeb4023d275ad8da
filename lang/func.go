package lang

import (
	"context"
	"os"

	"github.com/fedjmike/gosh/symbol"
	"github.com/fedjmike/gosh/types"
)

// RegisterBuiltins populates scope with the core's built-in symbols,
// called once at session startup.
func RegisterBuiltins(scope *Scope) {
	scope.Add(&Symbol{
		Name:     "size",
		ID:       symbol.Size,
		Type:     types.NewFn(types.NewFile(), types.NewInt()),
		Value:    NewFn(&Func{Name: "size", Call: implSize}),
		HasValue: true,
	})
}

// implSize is size :: File -> Int: stat the named file and report its
// size in bytes, or Invalid on any failure to stat it.
func implSize(_ context.Context, arg Value) Value {
	if arg.Kind() != FileValue {
		return Invalid
	}
	info, err := os.Stat(arg.Filename())
	if err != nil {
		return Invalid
	}
	return NewInt(info.Size())
}

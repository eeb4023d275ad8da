package lang

import (
	"context"
	"fmt"

	"github.com/mattn/go-runewidth"
)

// ValueKind tags a Value's payload.
type ValueKind uint8

const (
	// InvalidValue is the sentinel for an ill-typed node or a failed
	// runtime operation (e.g. a stat failure).
	InvalidValue ValueKind = iota
	// UnitValue is the sole value of type Unit, passed to a Fn(Unit, _)
	// when the display engine auto-applies a nullary function.
	UnitValue
	IntValue
	StrValue
	FileValue
	VectorValue
	FnValue
)

// Value is gosh's unified runtime value representation: a tagged variant
// over Invalid, Int, Str, File, Vector and Fn. A Value is immutable from
// the caller's perspective once constructed.
type Value struct {
	kind ValueKind
	i    int64
	s    string  // Str or File payload
	vec  []Value // Vector payload
	fn   *Func   // Fn payload
}

// Invalid is the sentinel value for an ill-typed node or a failed runtime
// operation. It is also Value's zero value, so an uninitialized Value is
// already a legal Invalid.
var Invalid = Value{kind: InvalidValue}

// Kind returns the value's kind tag.
func (v Value) Kind() ValueKind { return v.kind }

// Unit is the sole value of type Unit.
var Unit = Value{kind: UnitValue}

// NewInt creates an Int value.
func NewInt(n int64) Value { return Value{kind: IntValue, i: n} }

// Int extracts an int64 payload.
//
// REQUIRES: v.Kind() == IntValue.
func (v Value) Int() int64 {
	if v.kind != IntValue {
		panic(fmt.Sprintf("lang: Int() of non-int value (kind %v)", v.kind))
	}
	return v.i
}

// NewStr creates a Str value.
func NewStr(s string) Value { return Value{kind: StrValue, s: s} }

// Str extracts a Str payload.
//
// REQUIRES: v.Kind() == StrValue.
func (v Value) Str() string {
	if v.kind != StrValue {
		panic(fmt.Sprintf("lang: Str() of non-str value (kind %v)", v.kind))
	}
	return v.s
}

// NewFile creates a File value from a filename. The filename need not
// refer to an existing path.
func NewFile(name string) Value { return Value{kind: FileValue, s: name} }

// Filename extracts a File payload.
//
// REQUIRES: v.Kind() == FileValue.
func (v Value) Filename() string {
	if v.kind != FileValue {
		panic(fmt.Sprintf("lang: Filename() of non-file value (kind %v)", v.kind))
	}
	return v.s
}

// NewVector creates a Vector value from an ordered sequence of elements.
func NewVector(elems []Value) Value { return Value{kind: VectorValue, vec: elems} }

// Vector extracts a Vector payload.
//
// REQUIRES: v.Kind() == VectorValue.
func (v Value) Vector() []Value {
	if v.kind != VectorValue {
		panic(fmt.Sprintf("lang: Vector() of non-vector value (kind %v)", v.kind))
	}
	return v.vec
}

// NewFn creates an Fn value wrapping a callable.
func NewFn(f *Func) Value { return Value{kind: FnValue, fn: f} }

// Func extracts the Fn payload.
//
// REQUIRES: v.Kind() == FnValue.
func (v Value) Func() *Func {
	if v.kind != FnValue {
		panic(fmt.Sprintf("lang: Func() of non-fn value (kind %v)", v.kind))
	}
	return v.fn
}

// Func is a first-class function value. It is either a host-provided
// builtin closure taking one argument, or a user-level partial
// application realized as a closure over an already-supplied argument —
// see Call.
type Func struct {
	Name string
	// Call invokes the function on a single argument. Builtins that take
	// more than one (curried) argument return a new Fn value closing over
	// the argument just supplied; that returned Fn *is* the partial
	// application, there is no separate accumulator type.
	Call func(ctx context.Context, arg Value) Value
}

// Call applies fn to arg. Calling a non-Fn value yields Invalid: ill-typed
// application must not crash the evaluator.
func Call(ctx context.Context, fn, arg Value) Value {
	if fn.kind != FnValue {
		return Invalid
	}
	return fn.fn.Call(ctx, arg)
}

// String renders a value's natural textual form, used both by the scalar
// display path and by width measurement.
func (v Value) String() string {
	switch v.kind {
	case InvalidValue:
		return "(invalid)"
	case UnitValue:
		return "()"
	case IntValue:
		return fmt.Sprintf("%d", v.i)
	case StrValue:
		return v.s
	case FileValue:
		return v.s
	case VectorValue:
		return fmt.Sprintf("<vector of %d>", len(v.vec))
	case FnValue:
		return "<fn " + v.fn.Name + ">"
	default:
		return "?"
	}
}

// DisplayWidth measures the on-screen width of v's natural textual form in
// terminal columns, using Unicode east-asian-width-aware measurement
// rather than a byte-length proxy.
func (v Value) DisplayWidth() int {
	return runewidth.StringWidth(v.String())
}

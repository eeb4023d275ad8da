// Package types implements gosh's small Hindley-Milner-flavored type
// system: base kinds (Unit, Int, Float, Bool, Str, File), compound kinds
// (Fn, List, Tuple), and the Invalid sentinel used for ill-typed nodes.
//
// Types are immutable once constructed and deduped through a package-level
// intern pool, so two types with the same shape are the same *Type value
// and can be compared with ==. This mirrors the interning discipline of
// package symbol, applied to composite type shapes instead of flat names.
package types

import (
	"fmt"
	"strings"
	"sync"
)

// Kind tags a Type as one of the base or compound kinds, or the Invalid
// sentinel.
type Kind uint8

const (
	// Invalid marks an ill-typed node. A compound type with an Invalid
	// component keeps its own kind (e.g. List(Invalid) is a List) and
	// mentions Invalid in its String form.
	Invalid Kind = iota
	Unit
	Int
	Float
	Bool
	Str
	File
	Fn
	List
	Tuple
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case Unit:
		return "Unit"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Bool:
		return "Bool"
	case Str:
		return "Str"
	case File:
		return "File"
	case Fn:
		return "Fn"
	case List:
		return "List"
	case Tuple:
		return "Tuple"
	default:
		return "?"
	}
}

// Type is a tagged variant over Kind. It is immutable after construction;
// callers always obtain a *Type through one of the constructors below,
// which intern the result.
type Type struct {
	kind Kind

	// Fn only.
	param  *Type
	result *Type

	// List only.
	elem *Type

	// Tuple only.
	elems []*Type
}

// KindOf returns t's top-level kind.
func KindOf(t *Type) Kind { return t.kind }

// IsList reports whether t is a List(...) type.
func IsList(t *Type) bool { return t.kind == List }

// IsKind reports whether t has the given kind.
func IsKind(k Kind, t *Type) bool { return t.kind == k }

// ListElement returns the element type of a List(...) type.
//
// REQUIRES: IsList(t).
func ListElement(t *Type) *Type {
	if t.kind != List {
		panic("types: ListElement of non-list " + t.String())
	}
	return t.elem
}

// TupleTypes returns the element types of a Tuple(...) type.
//
// REQUIRES: IsKind(Tuple, t).
func TupleTypes(t *Type) []*Type {
	if t.kind != Tuple {
		panic("types: TupleTypes of non-tuple " + t.String())
	}
	return t.elems
}

// FnParam returns the parameter type of an Fn(...) type.
//
// REQUIRES: IsKind(Fn, t).
func FnParam(t *Type) *Type {
	if t.kind != Fn {
		panic("types: FnParam of non-fn " + t.String())
	}
	return t.param
}

// FnResult returns the result type of an Fn(...) type.
//
// REQUIRES: IsKind(Fn, t).
func FnResult(t *Type) *Type {
	if t.kind != Fn {
		panic("types: FnResult of non-fn " + t.String())
	}
	return t.result
}

// UnitAppliesToFn reports whether t is Fn(Unit, _) — a nullary function —
// which drives the display engine's automatic evaluation of nullary
// functions at the top level.
func UnitAppliesToFn(t *Type) bool {
	return t.kind == Fn && t.param.kind == Unit
}

// String renders the type as tuples "(a, b, c)", lists "[e]", and
// functions right-associatively as "a -> b -> r".
func (t *Type) String() string {
	switch t.kind {
	case Invalid:
		return "Invalid"
	case Unit, Int, Float, Bool, Str, File:
		return t.kind.String()
	case List:
		return "[" + t.elem.String() + "]"
	case Tuple:
		parts := make([]string, len(t.elems))
		for i, e := range t.elems {
			parts[i] = e.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case Fn:
		paramStr := t.param.String()
		if t.param.kind == Fn {
			paramStr = "(" + paramStr + ")"
		}
		return paramStr + " -> " + t.result.String()
	default:
		return "?"
	}
}

// --- intern pool ---
//
// Structural equality on types is frequent (the analyzer unifies types on
// every list literal and every function argument). Rather than walking
// the structure on every comparison, we hash-cons: every constructor below
// looks up (or creates) a canonical *Type for its shape, keyed by the
// type's own String() form, so that two independently-built types of the
// same shape are the exact same pointer and == is a valid equality check.
var pool = struct {
	mu sync.Mutex
	m  map[string]*Type
}{m: map[string]*Type{}}

func intern(key string, build func() *Type) *Type {
	pool.mu.Lock()
	defer pool.mu.Unlock()
	if t, ok := pool.m[key]; ok {
		return t
	}
	t := build()
	pool.m[key] = t
	return t
}

var (
	invalidSingleton = &Type{kind: Invalid}
	unitSingleton    = &Type{kind: Unit}
	intSingleton     = &Type{kind: Int}
	floatSingleton   = &Type{kind: Float}
	boolSingleton    = &Type{kind: Bool}
	strSingleton     = &Type{kind: Str}
	fileSingleton    = &Type{kind: File}
)

// NewInvalid returns the Invalid sentinel.
func NewInvalid() *Type { return invalidSingleton }

// NewUnit returns the Unit type.
func NewUnit() *Type { return unitSingleton }

// NewInt returns the Int type.
func NewInt() *Type { return intSingleton }

// NewFloat returns the Float type.
func NewFloat() *Type { return floatSingleton }

// NewBool returns the Bool type.
func NewBool() *Type { return boolSingleton }

// NewStr returns the Str type.
func NewStr() *Type { return strSingleton }

// NewFile returns the File type.
func NewFile() *Type { return fileSingleton }

// NewFn builds (interning) Fn(param, result). Multi-argument functions are
// curried: NewFn(a, NewFn(b, r)) represents "a -> b -> r".
func NewFn(param, result *Type) *Type {
	key := "Fn(" + param.String() + "," + result.String() + ")"
	return intern(key, func() *Type {
		return &Type{kind: Fn, param: param, result: result}
	})
}

// NewList builds (interning) List(elem).
func NewList(elem *Type) *Type {
	key := "List(" + elem.String() + ")"
	return intern(key, func() *Type {
		return &Type{kind: List, elem: elem}
	})
}

// NewTuple builds (interning) Tuple(elems...).
func NewTuple(elems ...*Type) *Type {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = e.String()
	}
	key := fmt.Sprintf("Tuple(%s)", strings.Join(parts, ","))
	return intern(key, func() *Type {
		cp := make([]*Type, len(elems))
		copy(cp, elems)
		return &Type{kind: Tuple, elems: cp}
	})
}

// Equal reports whether two types are the same shape. Because every Type
// is interned, pointer equality already implies structural equality; Equal
// exists for callers that may hold a *Type obtained outside this package
// (e.g. round-tripped through a zero value) and want a safe comparison.
func Equal(a, b *Type) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.String() == b.String()
}

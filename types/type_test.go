package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fedjmike/gosh/types"
)

func TestBaseKindStrings(t *testing.T) {
	assert.Equal(t, "Int", types.NewInt().String())
	assert.Equal(t, "File", types.NewFile().String())
	assert.Equal(t, "Invalid", types.NewInvalid().String())
}

func TestListString(t *testing.T) {
	lt := types.NewList(types.NewFile())
	assert.Equal(t, "[File]", lt.String())
	assert.True(t, types.IsList(lt))
	assert.Equal(t, types.NewFile(), types.ListElement(lt))
}

func TestTupleString(t *testing.T) {
	tt := types.NewTuple(types.NewInt(), types.NewStr(), types.NewFile())
	assert.Equal(t, "(Int, Str, File)", tt.String())
	assert.Equal(t, 3, len(types.TupleTypes(tt)))
}

func TestFnStringIsRightAssociative(t *testing.T) {
	// a -> b -> r, curried as Fn(a, Fn(b, r))
	ft := types.NewFn(types.NewInt(), types.NewFn(types.NewStr(), types.NewFile()))
	assert.Equal(t, "Int -> Str -> File", ft.String())
}

func TestFnParamIsParenthesizedWhenItselfAFn(t *testing.T) {
	ft := types.NewFn(types.NewFn(types.NewInt(), types.NewInt()), types.NewBool())
	assert.Equal(t, "(Int -> Int) -> Bool", ft.String())
}

func TestUnitAppliesToFn(t *testing.T) {
	nullary := types.NewFn(types.NewUnit(), types.NewInt())
	assert.True(t, types.UnitAppliesToFn(nullary))

	unary := types.NewFn(types.NewFile(), types.NewInt())
	assert.False(t, types.UnitAppliesToFn(unary))
}

func TestDedupPoolReturnsIdenticalPointers(t *testing.T) {
	a := types.NewList(types.NewFile())
	b := types.NewList(types.NewFile())
	assert.True(t, a == b, "equal shapes should intern to the same pointer")

	c := types.NewFn(types.NewInt(), types.NewFile())
	d := types.NewFn(types.NewInt(), types.NewFile())
	assert.True(t, c == d)
}

func TestEmptyTuple(t *testing.T) {
	tt := types.NewTuple()
	assert.Equal(t, "()", tt.String())
	assert.Equal(t, 0, len(types.TupleTypes(tt)))
}

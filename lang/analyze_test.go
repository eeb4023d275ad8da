package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedjmike/gosh/diag"
	"github.com/fedjmike/gosh/types"
)

func newTestScope() *Scope {
	scope := NewGlobalScope()
	scope.Add(&Symbol{
		Name: "size",
		Type: types.NewFn(types.NewFile(), types.NewInt()),
	})
	return scope
}

func TestAnalyzeStrLitIsFile(t *testing.T) {
	sink := diag.NewSink()
	n, _ := Parse(`"a.txt"`, sink)
	errs := Analyze(n, newTestScope(), sink)
	require.Equal(t, 0, errs)
	assert.Equal(t, types.NewFile(), n.Dt())
}

func TestAnalyzeKnownSymbolInheritsType(t *testing.T) {
	sink := diag.NewSink()
	n, _ := Parse("size", sink)
	errs := Analyze(n, newTestScope(), sink)
	require.Equal(t, 0, errs)
	assert.Equal(t, types.NewFn(types.NewFile(), types.NewInt()), n.Dt())
}

func TestAnalyzeUnknownSymbolIsInvalid(t *testing.T) {
	sink := diag.NewSink()
	n, _ := Parse("bogus", sink)
	errs := Analyze(n, newTestScope(), sink)
	assert.Equal(t, 1, errs)
	assert.Equal(t, types.Invalid, types.KindOf(n.Dt()))
}

func TestAnalyzeFnApp(t *testing.T) {
	sink := diag.NewSink()
	n, _ := Parse(`size "a.txt"`, sink)
	errs := Analyze(n, newTestScope(), sink)
	require.Equal(t, 0, errs)
	assert.Equal(t, types.NewInt(), n.Dt())
}

func TestAnalyzeNotAFunction(t *testing.T) {
	sink := diag.NewSink()
	n, _ := Parse(`"a.txt" "b.txt"`, sink)
	errs := Analyze(n, newTestScope(), sink)
	assert.Equal(t, 1, errs)
	assert.Equal(t, types.Invalid, types.KindOf(n.Dt()))
}

func TestAnalyzeTooManyArguments(t *testing.T) {
	sink := diag.NewSink()
	n, _ := Parse(`size "a.txt" "b.txt"`, sink)
	errs := Analyze(n, newTestScope(), sink)
	assert.Equal(t, 1, errs)
	assert.Equal(t, types.Invalid, types.KindOf(n.Dt()))
}

func TestAnalyzeArgumentTypeMismatch(t *testing.T) {
	sink := diag.NewSink()
	n, _ := Parse(`size [a]`, sink)
	errs := Analyze(n, newTestScope(), sink)
	assert.Equal(t, 2, errs) // "a" unknown symbol, then mismatch
	assert.Equal(t, types.Invalid, types.KindOf(n.Dt()))
}

func TestAnalyzeBareInvalidArgumentPropagatesInvalid(t *testing.T) {
	sink := diag.NewSink()
	n, _ := Parse(`size bogus`, sink)
	errs := Analyze(n, newTestScope(), sink)
	assert.Equal(t, 1, errs) // only "bogus" unknown symbol, no extra mismatch diagnostic
	assert.Equal(t, types.Invalid, types.KindOf(n.Dt()))
}

func TestAnalyzeEmptyListIsListOfInvalid(t *testing.T) {
	sink := diag.NewSink()
	n, _ := Parse("[]", sink)
	errs := Analyze(n, newTestScope(), sink)
	require.Equal(t, 0, errs)
	assert.Equal(t, types.NewList(types.NewInvalid()), n.Dt())
}

func TestAnalyzeListOfFiles(t *testing.T) {
	sink := diag.NewSink()
	n, _ := Parse(`["a.txt", "b.txt"]`, sink)
	errs := Analyze(n, newTestScope(), sink)
	require.Equal(t, 0, errs)
	assert.Equal(t, types.NewList(types.NewFile()), n.Dt())
}

func TestAnalyzeListElementMismatch(t *testing.T) {
	sink := diag.NewSink()
	n, _ := Parse(`["a.txt", size]`, sink)
	errs := Analyze(n, newTestScope(), sink)
	assert.Equal(t, 1, errs)
	assert.Equal(t, types.Invalid, types.KindOf(n.Dt()))
}

func TestAnalyzeVisitsChildrenBeforeParents(t *testing.T) {
	sink := diag.NewSink()
	n, _ := Parse(`[bogus1, bogus2]`, sink)
	errs := Analyze(n, newTestScope(), sink)
	assert.Equal(t, 2, errs)
	lst := n.(*ListLit)
	for _, c := range lst.Children {
		assert.Equal(t, types.Invalid, types.KindOf(c.Dt()))
	}
}

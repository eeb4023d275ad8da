package lang

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionEvalSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	sess := NewSession()
	val, _, ran := sess.Eval(context.Background(), `size "`+path+`"`)
	require.True(t, ran)
	assert.Equal(t, int64(3), val.Int())
}

func TestSessionReusesScopeAcrossLines(t *testing.T) {
	sess := NewSession()

	_, _, ran := sess.Eval(context.Background(), "size")
	require.True(t, ran)

	sym1, ok := sess.Env.Scope.Lookup("size")
	require.True(t, ok)

	_, _, ran = sess.Eval(context.Background(), "size")
	require.True(t, ran)

	sym2, ok := sess.Env.Scope.Lookup("size")
	require.True(t, ok)

	assert.Same(t, sym1, sym2)
}

func TestSessionErrorStopsEvaluation(t *testing.T) {
	sess := NewSession()
	val, _, ran := sess.Eval(context.Background(), "bogus")
	assert.False(t, ran)
	assert.Equal(t, InvalidValue, val.Kind())
}

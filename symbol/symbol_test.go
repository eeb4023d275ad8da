package symbol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fedjmike/gosh/symbol"
)

func TestIntern(t *testing.T) {
	assert.Equal(t, symbol.Intern("abc"), symbol.Intern("abc"))
	assert.False(t, symbol.Intern("abc") == symbol.Intern("cde"))
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"_", "_3", "$x", "xyz"} {
		id := symbol.Intern(name)
		name2 := id.Str()
		assert.Equal(t, name, name2)
	}
}

func TestLookupMiss(t *testing.T) {
	_, ok := symbol.Lookup("never-interned-before")
	assert.False(t, ok)
	symbol.Intern("never-interned-before")
	id, ok := symbol.Lookup("never-interned-before")
	assert.True(t, ok)
	assert.Equal(t, "never-interned-before", id.Str())
}

func TestInvalid(t *testing.T) {
	assert.Equal(t, "(invalid)", symbol.Invalid.Str())
}

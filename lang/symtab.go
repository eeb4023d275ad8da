package lang

// Scope is a lexically-scoped name -> Symbol table. The global scope is
// populated at startup by RegisterBuiltins; gosh has no lambda or
// function-definition syntax of its own, so in the current core this is
// always the only scope in play, but Lookup's parent-chain walk keeps the
// door open for nested scopes without a representation change.
type Scope struct {
	parent *Scope
	vars   map[string]*Symbol
}

// NewGlobalScope creates an empty top-level scope (init()).
func NewGlobalScope() *Scope {
	return &Scope{vars: map[string]*Symbol{}}
}

// Add binds name to sym in this scope, overwriting any existing binding
// of the same name in this scope (but not in a parent scope).
func (s *Scope) Add(sym *Symbol) {
	s.vars[sym.Name] = sym
}

// Lookup searches this scope and its ancestors for name, returning the
// nearest binding, or (nil, false) if unbound anywhere in the chain.
func (s *Scope) Lookup(name string) (*Symbol, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if sym, ok := sc.vars[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

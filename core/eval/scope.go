// Package eval turns expressions into values.
package eval

import "github.com/josephlewis42/structsh/core/value"

// ItVar is the name of the implicit row variable inside blocks.
const ItVar = "it"

// Scope holds the variables visible to an expression.
type Scope struct {
	it   value.Value
	vars map[string]value.Value
}

// Empty returns a scope with no bindings at all.
func Empty() *Scope {
	return &Scope{}
}

// WithIt returns a copy of the scope with $it bound to v.
func (s *Scope) WithIt(v value.Value) *Scope {
	out := &Scope{it: v, vars: make(map[string]value.Value, len(s.vars))}
	for k, val := range s.vars {
		out.vars[k] = val
	}
	return out
}

// Set binds name in the scope.
func (s *Scope) Set(name string, v value.Value) {
	if name == ItVar {
		s.it = v
		return
	}
	if s.vars == nil {
		s.vars = make(map[string]value.Value)
	}
	s.vars[name] = v
}

// Lookup finds a variable.
func (s *Scope) Lookup(name string) (value.Value, bool) {
	if name == ItVar {
		return s.it, s.it != nil
	}
	v, ok := s.vars[name]
	return v, ok
}

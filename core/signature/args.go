package signature

import "github.com/josephlewis42/structsh/core/value"

// Args is the result of binding one invocation. It belongs to that
// invocation alone.
type Args struct {
	// Positional holds mandatory, then matched optional, then rest arguments.
	Positional []value.Spanned
	// Named holds matched flags. Absent optional flags have no key.
	Named map[string]value.Value
}

// Nth returns the i-th positional argument.
func (a *Args) Nth(i int) (value.Spanned, bool) {
	if i < 0 || i >= len(a.Positional) {
		return value.Spanned{}, false
	}
	return a.Positional[i], true
}

// Get returns a named argument.
func (a *Args) Get(key string) (value.Value, bool) {
	v, ok := a.Named[key]
	return v, ok
}

// Has reports whether a named argument was given.
func (a *Args) Has(key string) bool {
	_, ok := a.Named[key]
	return ok
}

// Switch reports whether the switch named key was set.
func (a *Args) Switch(key string) bool {
	v, ok := a.Named[key].(value.Boolean)
	return ok && bool(v)
}

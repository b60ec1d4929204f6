// Package signature declares the shape of a command's arguments and binds
// parsed expressions to it.
package signature

import (
	"errors"
	"fmt"
)

type PositionalKind int

const (
	// ValuePositional arguments are evaluated immediately.
	ValuePositional PositionalKind = iota
	// BlockPositional arguments are captured unevaluated as a value.Block.
	BlockPositional
)

// PositionalSpec declares one positional slot.
type PositionalSpec struct {
	Kind PositionalKind
	Name string
}

// Value declares an evaluated positional argument.
func Value(name string) PositionalSpec {
	return PositionalSpec{Kind: ValuePositional, Name: name}
}

// Block declares a deferred positional argument.
func Block(name string) PositionalSpec {
	return PositionalSpec{Kind: BlockPositional, Name: name}
}

// ValueShape is how many tokens follow a named flag and how they combine.
type ValueShape int

const (
	// Single consumes one literal.
	Single ValueShape = iota
	// Tuple consumes two literals and binds them as a two element list.
	Tuple
	// BlockShape is declared for completeness but can't be bound yet.
	BlockShape
	// Array is declared for completeness but can't be bound yet.
	Array
)

func (v ValueShape) String() string {
	switch v {
	case Single:
		return "Single"
	case Tuple:
		return "Tuple"
	case BlockShape:
		return "Block"
	case Array:
		return "Array"
	}
	return fmt.Sprintf("ValueShape(%d)", int(v))
}

type NamedKind int

const (
	// Switch flags carry no payload and bind to true when present.
	Switch NamedKind = iota
	// Mandatory flags must be present.
	Mandatory
	// Optional flags are skipped when absent.
	Optional
)

func (k NamedKind) String() string {
	switch k {
	case Switch:
		return "Switch"
	case Mandatory:
		return "Mandatory"
	case Optional:
		return "Optional"
	}
	return fmt.Sprintf("NamedKind(%d)", int(k))
}

// NamedSpec declares how a flag is matched. Shape is ignored for switches.
type NamedSpec struct {
	Kind  NamedKind
	Shape ValueShape
}

// NamedArg pairs a flag name with its spec.
type NamedArg struct {
	Key  string
	Spec NamedSpec
}

// Signature is the declared shape of a command. It must not be modified
// once registered.
type Signature struct {
	Name string
	// Short is a one line description shown by help.
	Short string

	MandatoryPositional []PositionalSpec
	OptionalPositional  []PositionalSpec
	RestPositional      bool

	// Named is scanned in order during binding.
	Named []NamedArg
}

// Validate checks the signature for declaration mistakes.
func (s *Signature) Validate() error {
	if s.Name == "" {
		return errors.New("signature has no name")
	}

	seen := make(map[string]bool)
	for _, arg := range s.Named {
		switch {
		case arg.Key == "":
			return fmt.Errorf("%s: named argument has no key", s.Name)
		case seen[arg.Key]:
			return fmt.Errorf("%s: named argument %q declared twice", s.Name, arg.Key)
		}
		seen[arg.Key] = true
	}

	for _, p := range append(append([]PositionalSpec{}, s.MandatoryPositional...), s.OptionalPositional...) {
		if p.Name == "" {
			return fmt.Errorf("%s: positional argument has no name", s.Name)
		}
	}

	return nil
}

// Lookup finds the spec of a named argument.
func (s *Signature) Lookup(key string) (NamedSpec, bool) {
	for _, arg := range s.Named {
		if arg.Key == key {
			return arg.Spec, true
		}
	}
	return NamedSpec{}, false
}

// Builder assembles a Signature fluently:
//
//	signature.New("seq").
//		Named("range", signature.Mandatory, signature.Tuple).
//		Switch("reverse").
//		MustBuild()
type Builder struct {
	sig Signature
}

// New starts a signature for the named command.
func New(name string) *Builder {
	return &Builder{sig: Signature{Name: name}}
}

// Describe sets the one line description.
func (b *Builder) Describe(short string) *Builder {
	b.sig.Short = short
	return b
}

// Required appends a mandatory positional slot.
func (b *Builder) Required(spec PositionalSpec) *Builder {
	b.sig.MandatoryPositional = append(b.sig.MandatoryPositional, spec)
	return b
}

// Optional appends an optional positional slot.
func (b *Builder) Optional(spec PositionalSpec) *Builder {
	b.sig.OptionalPositional = append(b.sig.OptionalPositional, spec)
	return b
}

// Rest allows any number of trailing positional arguments.
func (b *Builder) Rest() *Builder {
	b.sig.RestPositional = true
	return b
}

// Switch appends a presence-only flag.
func (b *Builder) Switch(key string) *Builder {
	return b.Named(key, Switch, Single)
}

// Named appends a flag with a payload.
func (b *Builder) Named(key string, kind NamedKind, shape ValueShape) *Builder {
	b.sig.Named = append(b.sig.Named, NamedArg{Key: key, Spec: NamedSpec{Kind: kind, Shape: shape}})
	return b
}

// Build validates and returns the signature.
func (b *Builder) Build() (*Signature, error) {
	out := b.sig
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// MustBuild is Build for signatures declared at init time, it panics on
// invalid declarations.
func (b *Builder) MustBuild() *Signature {
	sig, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("invalid signature: %v", err))
	}
	return sig
}

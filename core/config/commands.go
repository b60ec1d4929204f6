package config

import (
	"fmt"

	"github.com/josephlewis42/structsh/core/signature"
)

// CommandSpec declares a command in YAML. Declared commands bind their
// arguments and echo them back.
type CommandSpec struct {
	Name       string           `json:"name" validate:"required"`
	Short      string           `json:"short"`
	Positional []PositionalSpec `json:"positional" validate:"dive"`
	Rest       bool             `json:"rest"`
	Named      []NamedSpec      `json:"named" validate:"unique=Key,dive"`
}

type PositionalSpec struct {
	Name     string `json:"name" validate:"required"`
	Kind     string `json:"kind" validate:"oneof=value block"`
	Optional bool   `json:"optional"`
}

type NamedSpec struct {
	Key   string `json:"key" validate:"required"`
	Kind  string `json:"kind" validate:"oneof=switch mandatory optional"`
	Shape string `json:"shape" validate:"omitempty,oneof=single tuple block array"`
}

var (
	namedKinds = map[string]signature.NamedKind{
		"switch":    signature.Switch,
		"mandatory": signature.Mandatory,
		"optional":  signature.Optional,
	}

	valueShapes = map[string]signature.ValueShape{
		"":       signature.Single,
		"single": signature.Single,
		"tuple":  signature.Tuple,
		"block":  signature.BlockShape,
		"array":  signature.Array,
	}
)

// ToSignature converts the declaration into a signature.
func (c CommandSpec) ToSignature() (*signature.Signature, error) {
	b := signature.New(c.Name).Describe(c.Short)

	seenOptional := false
	for _, p := range c.Positional {
		spec := signature.Value(p.Name)
		switch p.Kind {
		case "value":
		case "block":
			spec = signature.Block(p.Name)
		default:
			return nil, fmt.Errorf("%s: unknown positional kind %q", c.Name, p.Kind)
		}

		switch {
		case p.Optional:
			seenOptional = true
			b.Optional(spec)
		case seenOptional:
			return nil, fmt.Errorf("%s: mandatory positional %q follows an optional one", c.Name, p.Name)
		default:
			b.Required(spec)
		}
	}

	if c.Rest {
		b.Rest()
	}

	for _, n := range c.Named {
		kind, ok := namedKinds[n.Kind]
		if !ok {
			return nil, fmt.Errorf("%s: unknown named kind %q", c.Name, n.Kind)
		}
		shape, ok := valueShapes[n.Shape]
		if !ok {
			return nil, fmt.Errorf("%s: unknown shape %q", c.Name, n.Shape)
		}
		b.Named(n.Key, kind, shape)
	}

	return b.Build()
}

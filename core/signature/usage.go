package signature

import "strings"

// Usage renders a one line synopsis such as
// "where {condition}" or "seq --range <range> <range> [--reverse]".
func (s *Signature) Usage() string {
	parts := []string{s.Name}

	for _, p := range s.MandatoryPositional {
		parts = append(parts, p.placeholder())
	}
	for _, p := range s.OptionalPositional {
		parts = append(parts, "["+p.placeholder()+"]")
	}
	if s.RestPositional {
		parts = append(parts, "[...rest]")
	}

	for _, arg := range s.Named {
		parts = append(parts, arg.usage())
	}

	return strings.Join(parts, " ")
}

func (p PositionalSpec) placeholder() string {
	if p.Kind == BlockPositional {
		return "{" + p.Name + "}"
	}
	return "<" + p.Name + ">"
}

func (a NamedArg) usage() string {
	flag := "--" + a.Key
	if a.Spec.Kind == Switch {
		return "[" + flag + "]"
	}

	var payload string
	switch a.Spec.Shape {
	case Single:
		payload = "<" + a.Key + ">"
	case Tuple:
		payload = "<" + a.Key + "> <" + a.Key + ">"
	case BlockShape:
		payload = "{" + a.Key + "}"
	case Array:
		payload = "[" + a.Key + "...]"
	}

	if a.Spec.Kind == Optional {
		return "[" + flag + " " + payload + "]"
	}
	return flag + " " + payload
}

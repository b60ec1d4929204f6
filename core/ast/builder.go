package ast

// The constructors below build nodes with a zero span, use At to place them.

func Bare(word string) Expression {
	return Expression{Raw: &Leaf{Kind: LeafBare, Text: word}}
}

func Str(s string) Expression {
	return Expression{Raw: &Leaf{Kind: LeafString, Text: s}}
}

func Bool(b bool) Expression {
	return Expression{Raw: &Leaf{Kind: LeafBoolean, Bool: b}}
}

func Int(n int64) Expression {
	return Expression{Raw: &Leaf{Kind: LeafInt, Int: n}}
}

func WithUnit(n int64, unit Unit) Expression {
	return Expression{Raw: &Leaf{Kind: LeafUnit, Int: n, Unit: unit}}
}

func FlagOf(name string) Expression {
	return Expression{Raw: &Flag{Name: name}}
}

func Var(name string) Expression {
	return Expression{Raw: &Variable{Name: name}}
}

// PathOf builds head.members..., spanning the head.
func PathOf(head Expression, members ...string) Expression {
	return Expression{Raw: &Path{Head: head, Members: members}, Span: head.Span}
}

// BinaryOf builds left op right, spanning both operands.
func BinaryOf(left Expression, op Operator, right Expression) Expression {
	return Expression{
		Raw:  &Binary{Left: left, Op: op, Right: right},
		Span: left.Span.Merge(right.Span),
	}
}

func BlockOf(body Expression) Expression {
	return Expression{Raw: &Block{Body: body}, Span: body.Span}
}

func ParensOf(inner Expression) Expression {
	return Expression{Raw: &Parens{Inner: inner}, Span: inner.Span}
}

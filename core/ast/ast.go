// Package ast holds the expression tree handed to the argument binder.
package ast

import (
	"strconv"
	"strings"
)

// Span is a half-open byte range into the source line.
type Span struct {
	Start int
	End   int
}

// Merge returns the smallest span covering both s and other.
func (s Span) Merge(other Span) Span {
	out := s
	if other.Start < out.Start {
		out.Start = other.Start
	}
	if other.End > out.End {
		out.End = other.End
	}
	return out
}

// RawExpression is implemented by every node variant.
type RawExpression interface {
	// Print renders the node back into source-like text for diagnostics.
	Print() string

	isRaw()
}

// Expression is a node paired with the span it was parsed from.
type Expression struct {
	Raw  RawExpression
	Span Span
}

// At returns a copy of the expression located at [start, end).
func (e Expression) At(start, end int) Expression {
	e.Span = Span{Start: start, End: end}
	return e
}

// Print renders the expression as text.
func (e Expression) Print() string {
	if e.Raw == nil {
		return ""
	}
	return e.Raw.Print()
}

// String implements fmt.Stringer.
func (e Expression) String() string {
	return e.Print()
}

// IsFlag returns true if the expression is the flag token --name.
func (e Expression) IsFlag(name string) bool {
	flag, ok := e.Raw.(*Flag)
	return ok && flag.Name == name
}

// FieldPath returns the member names if the expression can stand for a field
// of an implicit row: a bare word, a quoted string or a member path with a
// bare head such as a.b.c.
func (e Expression) FieldPath() ([]string, bool) {
	switch raw := e.Raw.(type) {
	case *Leaf:
		if raw.Kind == LeafBare || raw.Kind == LeafString {
			return []string{raw.Text}, true
		}
	case *Path:
		head, ok := raw.Head.Raw.(*Leaf)
		if ok && head.Kind == LeafBare {
			return append([]string{head.Text}, raw.Members...), true
		}
	}
	return nil, false
}

// PrintAll renders a list of expressions, used for "too many arguments"
// style diagnostics.
func PrintAll(exprs []Expression) string {
	var out []string
	for _, e := range exprs {
		out = append(out, e.Print())
	}
	return "[" + strings.Join(out, ", ") + "]"
}

type LeafKind int

const (
	LeafBare LeafKind = iota
	LeafString
	LeafBoolean
	LeafInt
	LeafUnit
)

// Leaf is a terminal literal.
type Leaf struct {
	Kind LeafKind
	// Text holds the word for LeafBare and the unquoted contents for LeafString.
	Text string
	Bool bool
	// Int holds the number for LeafInt and the magnitude for LeafUnit.
	Int  int64
	Unit Unit
}

func (*Leaf) isRaw() {}

func (l *Leaf) Print() string {
	switch l.Kind {
	case LeafString:
		return strconv.Quote(l.Text)
	case LeafBoolean:
		return strconv.FormatBool(l.Bool)
	case LeafInt:
		return strconv.FormatInt(l.Int, 10)
	case LeafUnit:
		return strconv.FormatInt(l.Int, 10) + l.Unit.String()
	default:
		return l.Text
	}
}

// Flag is a named argument key written as --name.
type Flag struct {
	Name string
}

func (*Flag) isRaw() {}

func (f *Flag) Print() string {
	return "--" + f.Name
}

// Variable references a name in the evaluation scope.
type Variable struct {
	Name string
}

func (*Variable) isRaw() {}

func (v *Variable) Print() string {
	return "$" + v.Name
}

// Path is a member access chain: head.member1.member2.
type Path struct {
	Head    Expression
	Members []string
}

func (*Path) isRaw() {}

func (p *Path) Print() string {
	parts := []string{p.Head.Print()}
	for _, m := range p.Members {
		if !isPlainMember(m) {
			m = strconv.Quote(m)
		}
		parts = append(parts, m)
	}
	return strings.Join(parts, ".")
}

// Word returns the dotted word a bare headed path was read from, like
// notes.txt or v1.2.3.
func (p *Path) Word() (string, bool) {
	head, ok := p.Head.Raw.(*Leaf)
	if !ok || head.Kind != LeafBare {
		return "", false
	}
	return strings.Join(append([]string{head.Text}, p.Members...), "."), true
}

func isPlainMember(m string) bool {
	for _, r := range m {
		if r != '_' && r != '-' && !('a' <= r && r <= 'z') && !('A' <= r && r <= 'Z') && !('0' <= r && r <= '9') {
			return false
		}
	}
	return m != ""
}

// Binary is a two operand operator expression.
type Binary struct {
	Left  Expression
	Op    Operator
	Right Expression
}

func (*Binary) isRaw() {}

func (b *Binary) Print() string {
	return b.Left.Print() + " " + b.Op.String() + " " + b.Right.Print()
}

// Block is an expression that should be captured rather than evaluated.
type Block struct {
	Body Expression
}

func (*Block) isRaw() {}

func (b *Block) Print() string {
	return "{ " + b.Body.Print() + " }"
}

// Parens groups an inner expression.
type Parens struct {
	Inner Expression
}

func (*Parens) isRaw() {}

func (p *Parens) Print() string {
	return "(" + p.Inner.Print() + ")"
}

// Package value defines the values commands consume and produce.
package value

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/josephlewis42/structsh/core/ast"
)

// Value is implemented by every variant: String, Int, Boolean, Bytes,
// Duration, List, *Object and Block.
type Value interface {
	// Type is the user-facing name of the variant.
	Type() string
	// Format renders the value for display.
	Format() string
}

// Spanned is a value tagged with the source it came from.
type Spanned struct {
	Item Value
	Span ast.Span
}

type String string

func (String) Type() string     { return "string" }
func (s String) Format() string { return string(s) }

type Int int64

func (Int) Type() string     { return "int" }
func (i Int) Format() string { return strconv.FormatInt(int64(i), 10) }

type Boolean bool

func (Boolean) Type() string     { return "boolean" }
func (b Boolean) Format() string { return strconv.FormatBool(bool(b)) }

// Bytes is a size in bytes.
type Bytes int64

func (Bytes) Type() string { return "bytes" }

func (b Bytes) Format() string {
	if b < 0 {
		return "-" + humanize.IBytes(uint64(-b))
	}
	return humanize.IBytes(uint64(b))
}

type Duration time.Duration

func (Duration) Type() string     { return "duration" }
func (d Duration) Format() string { return time.Duration(d).String() }

type List []Value

func (List) Type() string { return "list" }

func (l List) Format() string {
	var out []string
	for _, v := range l {
		out = append(out, v.Format())
	}
	return "[" + strings.Join(out, ", ") + "]"
}

// Block is a deferred, unevaluated expression. It is only run when a command
// asks for it to be, typically once per input row bound to $it.
type Block struct {
	Expr ast.Expression
}

func (Block) Type() string     { return "block" }
func (b Block) Format() string { return "{ " + b.Expr.Print() + " }" }

// Field is a single named column of an Object.
type Field struct {
	Name  string
	Value Value
}

// Object is a row of named fields, kept in insertion order.
type Object struct {
	Fields []Field
}

// NewObject creates an object with the given fields.
func NewObject(fields ...Field) *Object {
	return &Object{Fields: fields}
}

func (*Object) Type() string { return "object" }

func (o *Object) Format() string {
	var out []string
	for _, f := range o.Fields {
		out = append(out, fmt.Sprintf("%s: %s", f.Name, f.Value.Format()))
	}
	return "{" + strings.Join(out, ", ") + "}"
}

// Get looks up a field by name.
func (o *Object) Get(name string) (Value, bool) {
	for _, f := range o.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Set replaces the named field or appends it.
func (o *Object) Set(name string, v Value) {
	for i, f := range o.Fields {
		if f.Name == name {
			o.Fields[i].Value = v
			return
		}
	}
	o.Fields = append(o.Fields, Field{Name: name, Value: v})
}

// AsString returns the contents of a String value.
func AsString(v Value) (string, error) {
	if s, ok := v.(String); ok {
		return string(s), nil
	}
	if v == nil {
		return "", fmt.Errorf("expected a string, got nothing")
	}
	return "", fmt.Errorf("expected a string, got %s", v.Type())
}

// AsInt returns the contents of an Int value.
func AsInt(v Value) (int64, error) {
	if i, ok := v.(Int); ok {
		return int64(i), nil
	}
	if v == nil {
		return 0, fmt.Errorf("expected an int, got nothing")
	}
	return 0, fmt.Errorf("expected an int, got %s", v.Type())
}

// Package diag holds the error type surfaced to users when a command
// invocation can't be bound or run.
package diag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/josephlewis42/structsh/core/ast"
)

// Kind classifies an Error. Kinds are errors themselves so callers can
// write errors.Is(err, diag.TooManyPositional).
type Kind int

const (
	Generic Kind = iota
	MissingMandatoryNamed
	MissingMandatoryPositional
	TooManyPositional
	UnimplementedNamedShape
	ExpectedLiteral
	InvalidArgumentType
	MissingFilename
	UnknownCommand
	EvaluationFailed
	Syntax
)

var kindNames = map[Kind]string{
	Generic:                    "generic",
	MissingMandatoryNamed:      "missing_mandatory_named",
	MissingMandatoryPositional: "missing_mandatory_positional",
	TooManyPositional:          "too_many_positional",
	UnimplementedNamedShape:    "unimplemented_named_shape",
	ExpectedLiteral:            "expected_literal",
	InvalidArgumentType:        "invalid_argument_type",
	MissingFilename:            "missing_filename",
	UnknownCommand:             "unknown_command",
	EvaluationFailed:           "evaluation_failed",
	Syntax:                     "syntax",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error implements error so a Kind can be used as an errors.Is target.
func (k Kind) Error() string {
	return k.String()
}

// Error is a diagnostic, optionally pointing at the source that caused it.
type Error struct {
	Kind Kind
	Msg  string
	// Label is a short note rendered next to the span, e.g. "needs parameter".
	Label string
	Span  *ast.Span
}

// New creates an unlabeled error.
func New(kind Kind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, a...)}
}

// At creates an error pointing at span.
func At(kind Kind, span ast.Span, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, a...), Span: &span}
}

// Labeled creates an error with a label under span.
func Labeled(kind Kind, msg, label string, span ast.Span) *Error {
	return &Error{Kind: kind, Msg: msg, Label: label, Span: &span}
}

func (e *Error) Error() string {
	return e.Msg
}

// Is matches a Kind target.
func (e *Error) Is(target error) bool {
	kind, ok := target.(Kind)
	return ok && kind == e.Kind
}

// KindOf returns the Kind of err, or Generic if err isn't an *Error.
func KindOf(err error) Kind {
	var diagErr *Error
	if errors.As(err, &diagErr) {
		return diagErr.Kind
	}
	return Generic
}

// Render formats the error against the source line it came from with a caret
// underline below the span:
//
//	error: Expected a value, found {size}
//	  | ls --count {size}
//	  |            ^^^^^^ not a literal
func (e *Error) Render(src string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "error: %s\n", e.Msg)
	if e.Span == nil || strings.ContainsRune(src, '\n') {
		return b.String()
	}

	start, end := clamp(e.Span.Start, len(src)), clamp(e.Span.End, len(src))
	width := end - start
	if width < 1 {
		width = 1
	}

	fmt.Fprintf(&b, "  | %s\n", src)
	fmt.Fprintf(&b, "  | %s%s", strings.Repeat(" ", start), strings.Repeat("^", width))
	if e.Label != "" {
		fmt.Fprintf(&b, " %s", e.Label)
	}
	b.WriteString("\n")
	return b.String()
}

func clamp(n, limit int) int {
	switch {
	case n < 0:
		return 0
	case n > limit:
		return limit
	}
	return n
}

// Render formats any error for display, using the caret form for *Error.
func Render(err error, src string) string {
	var diagErr *Error
	if errors.As(err, &diagErr) {
		return diagErr.Render(src)
	}
	return fmt.Sprintf("error: %s\n", err)
}

package signature

import (
	"fmt"

	"github.com/josephlewis42/structsh/core/ast"
	"github.com/josephlewis42/structsh/core/diag"
	"github.com/josephlewis42/structsh/core/value"
)

// worklist tracks which tokens of an invocation have been claimed. Tokens
// are never removed so indexes stay stable, survivors keep their order.
type worklist struct {
	tokens  []ast.Expression
	claimed []bool
}

func newWorklist(tokens []ast.Expression) *worklist {
	return &worklist{
		tokens:  append([]ast.Expression(nil), tokens...),
		claimed: make([]bool, len(tokens)),
	}
}

// findFlag returns the index of the first unclaimed --key token.
func (w *worklist) findFlag(key string) (int, bool) {
	for i, tok := range w.tokens {
		if !w.claimed[i] && tok.IsFlag(key) {
			return i, true
		}
	}
	return 0, false
}

func (w *worklist) claim(i int) ast.Expression {
	w.claimed[i] = true
	return w.tokens[i]
}

// claimAfter claims the first unclaimed token after index i.
func (w *worklist) claimAfter(i int) (ast.Expression, bool) {
	for j := i + 1; j < len(w.tokens); j++ {
		if !w.claimed[j] {
			return w.claim(j), true
		}
	}
	return ast.Expression{}, false
}

// unclaimed returns the tokens nobody has claimed in their original order.
func (w *worklist) unclaimed() []ast.Expression {
	var out []ast.Expression
	for i, tok := range w.tokens {
		if !w.claimed[i] {
			out = append(out, tok)
		}
	}
	return out
}

// extractNamed claims every declared flag and its payload, scanning in
// declaration order.
func extractNamed(work *worklist, declared []NamedArg) (map[string]value.Value, error) {
	named := make(map[string]value.Value)

	for _, arg := range declared {
		i, found := work.findFlag(arg.Key)
		if !found {
			if arg.Spec.Kind == Mandatory {
				return nil, diag.New(diag.MissingMandatoryNamed, "Expected mandatory argument %s, but it was missing", arg.Key)
			}
			continue
		}

		flag := work.claim(i)
		if arg.Spec.Kind == Switch {
			named[arg.Key] = value.Boolean(true)
			continue
		}

		v, err := extractPayload(work, i, flag, arg)
		if err != nil {
			return nil, err
		}
		named[arg.Key] = v
	}

	return named, nil
}

func extractPayload(work *worklist, flagIndex int, flag ast.Expression, arg NamedArg) (value.Value, error) {
	next := func() (ast.Expression, error) {
		expr, ok := work.claimAfter(flagIndex)
		if !ok {
			return expr, diag.Labeled(
				diag.ExpectedLiteral,
				fmt.Sprintf("Expected a value for --%s, found nothing", arg.Key),
				"needs a value",
				flag.Span)
		}
		return expr, nil
	}

	switch arg.Spec.Shape {
	case Single:
		expr, err := next()
		if err != nil {
			return nil, err
		}
		return ExpectLiteral(expr)

	case Tuple:
		first, err := next()
		if err != nil {
			return nil, err
		}
		second, err := next()
		if err != nil {
			return nil, err
		}

		v1, err := ExpectLiteral(first)
		if err != nil {
			return nil, err
		}
		v2, err := ExpectLiteral(second)
		if err != nil {
			return nil, err
		}
		return value.List{v1, v2}, nil

	default:
		return nil, diag.At(diag.UnimplementedNamedShape, flag.Span, "Unimplemented named argument %s", arg.Spec.Shape)
	}
}

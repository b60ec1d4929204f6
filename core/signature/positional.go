package signature

import (
	"github.com/josephlewis42/structsh/core/ast"
	"github.com/josephlewis42/structsh/core/diag"
	"github.com/josephlewis42/structsh/core/eval"
	"github.com/josephlewis42/structsh/core/value"
)

// EvaluateFunc evaluates a single expression in a scope.
type EvaluateFunc func(expr ast.Expression, scope *eval.Scope) (value.Spanned, error)

// bind turns one token into the value for this slot.
func (p PositionalSpec) bind(expr ast.Expression, scope *eval.Scope, evaluate EvaluateFunc) (value.Spanned, error) {
	if p.Kind == BlockPositional {
		return BindBlock(expr), nil
	}
	return evaluate(expr, scope)
}

// bindPositional fills the declared slots from the tokens left over after
// named extraction.
func bindPositional(sig *Signature, remaining []ast.Expression, scope *eval.Scope, evaluate EvaluateFunc) ([]value.Spanned, error) {
	var positional []value.Spanned
	next := 0

	for _, param := range sig.MandatoryPositional {
		if next >= len(remaining) {
			return nil, diag.New(diag.MissingMandatoryPositional, "expected mandatory positional argument %s", param.Name)
		}

		v, err := param.bind(remaining[next], scope, evaluate)
		if err != nil {
			return nil, err
		}
		positional = append(positional, v)
		next++
	}

	for _, param := range sig.OptionalPositional {
		if next >= len(remaining) {
			break
		}

		v, err := param.bind(remaining[next], scope, evaluate)
		if err != nil {
			return nil, err
		}
		positional = append(positional, v)
		next++
	}

	rest := remaining[next:]
	if sig.RestPositional {
		// Trailing arguments never see the invocation's variables.
		for _, expr := range rest {
			v, err := evaluate(expr, eval.Empty())
			if err != nil {
				return nil, err
			}
			positional = append(positional, v)
		}
		return positional, nil
	}

	if len(rest) > 0 {
		span := rest[0].Span.Merge(rest[len(rest)-1].Span)
		err := diag.At(diag.TooManyPositional, span, "Too many arguments, extras: %s", ast.PrintAll(rest))
		err.Label = "unexpected"
		return nil, err
	}

	return positional, nil
}

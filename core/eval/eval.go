package eval

import (
	"github.com/josephlewis42/structsh/core/ast"
	"github.com/josephlewis42/structsh/core/diag"
	"github.com/josephlewis42/structsh/core/value"
)

// Evaluate computes the value of expr in scope. Block expressions are not
// run, they evaluate to a value.Block.
func Evaluate(expr ast.Expression, scope *Scope) (value.Spanned, error) {
	if scope == nil {
		scope = Empty()
	}

	v, err := evaluate(expr, scope)
	if err != nil {
		return value.Spanned{}, err
	}
	return value.Spanned{Item: v, Span: expr.Span}, nil
}

// RunBlock evaluates a deferred block with $it bound to row.
func RunBlock(block value.Block, row value.Value, scope *Scope) (value.Value, error) {
	if scope == nil {
		scope = Empty()
	}

	out, err := Evaluate(block.Expr, scope.WithIt(row))
	if err != nil {
		return nil, err
	}
	return out.Item, nil
}

// Truthy reports whether v counts as true when used as a condition.
func Truthy(v value.Value) bool {
	switch v := v.(type) {
	case nil:
		return false
	case value.Boolean:
		return bool(v)
	case value.Int:
		return v != 0
	case value.String:
		return v != ""
	case value.List:
		return len(v) > 0
	default:
		return true
	}
}

func evaluate(expr ast.Expression, scope *Scope) (value.Value, error) {
	switch raw := expr.Raw.(type) {
	case *ast.Leaf:
		v, err := value.FromLeaf(raw)
		if err != nil {
			return nil, diag.At(diag.EvaluationFailed, expr.Span, "%s", err)
		}
		return v, nil

	case *ast.Variable:
		v, ok := scope.Lookup(raw.Name)
		if !ok {
			return nil, diag.At(diag.EvaluationFailed, expr.Span, "unknown variable $%s", raw.Name)
		}
		return v, nil

	case *ast.Path:
		// A bare headed path outside a block is just a dotted word, like a
		// file name.
		if word, ok := raw.Word(); ok {
			return value.String(word), nil
		}

		current, err := evaluate(raw.Head, scope)
		if err != nil {
			return nil, err
		}
		for _, member := range raw.Members {
			obj, ok := current.(*value.Object)
			if !ok {
				return nil, diag.At(diag.EvaluationFailed, expr.Span, "can't read .%s of %s", member, typeName(current))
			}
			if current, ok = obj.Get(member); !ok {
				return nil, diag.At(diag.EvaluationFailed, expr.Span, "no field named %q", member)
			}
		}
		return current, nil

	case *ast.Binary:
		left, err := evaluate(raw.Left, scope)
		if err != nil {
			return nil, err
		}
		right, err := evaluate(raw.Right, scope)
		if err != nil {
			return nil, err
		}
		out, err := Apply(raw.Op, left, right)
		if err != nil {
			return nil, diag.At(diag.EvaluationFailed, expr.Span, "%s", err)
		}
		return out, nil

	case *ast.Parens:
		return evaluate(raw.Inner, scope)

	case *ast.Block:
		return value.Block{Expr: raw.Body}, nil

	case *ast.Flag:
		return nil, diag.At(diag.EvaluationFailed, expr.Span, "unexpected flag %s", raw.Print())

	default:
		return nil, diag.At(diag.EvaluationFailed, expr.Span, "can't evaluate %q", expr.Print())
	}
}

func typeName(v value.Value) string {
	if v == nil {
		return "nothing"
	}
	return v.Type()
}

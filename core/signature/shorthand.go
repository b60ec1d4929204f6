package signature

import (
	"github.com/josephlewis42/structsh/core/ast"
	"github.com/josephlewis42/structsh/core/eval"
	"github.com/josephlewis42/structsh/core/value"
)

// BindBlock captures expr as a deferred block for a block slot.
//
// An explicit { ... } is unwrapped. A comparison whose left side names a
// field, like `size > 10`, is rewritten to `$it.size > 10`. Anything else is
// captured as written.
func BindBlock(expr ast.Expression) value.Spanned {
	body := expr

	switch raw := expr.Raw.(type) {
	case *ast.Block:
		body = raw.Body
	case *ast.Binary:
		body = rewriteShorthand(expr, raw)
	}

	return value.Spanned{Item: value.Block{Expr: body}, Span: expr.Span}
}

func rewriteShorthand(expr ast.Expression, binary *ast.Binary) ast.Expression {
	fields, ok := binary.Left.FieldPath()
	if !ok {
		return expr
	}

	it := ast.Var(eval.ItVar)
	it.Span = binary.Left.Span

	return ast.Expression{
		Raw: &ast.Binary{
			Left:  ast.PathOf(it, fields...),
			Op:    binary.Op,
			Right: binary.Right,
		},
		Span: expr.Span,
	}
}

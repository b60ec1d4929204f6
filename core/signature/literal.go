package signature

import (
	"fmt"

	"github.com/josephlewis42/structsh/core/ast"
	"github.com/josephlewis42/structsh/core/diag"
	"github.com/josephlewis42/structsh/core/value"
)

// ExpectLiteral converts a leaf expression to its value and rejects
// everything else. A dotted word such as example.com is a bare word here.
func ExpectLiteral(expr ast.Expression) (value.Value, error) {
	switch raw := expr.Raw.(type) {
	case *ast.Leaf:
		v, err := value.FromLeaf(raw)
		if err != nil {
			return nil, diag.Labeled(diag.ExpectedLiteral, err.Error(), "out of range", expr.Span)
		}
		return v, nil

	case *ast.Path:
		if word, ok := raw.Word(); ok {
			return value.String(word), nil
		}
	}

	return nil, diag.Labeled(
		diag.ExpectedLiteral,
		fmt.Sprintf("Expected a value, found %s", expr.Print()),
		"not a literal",
		expr.Span)
}

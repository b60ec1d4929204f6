package eval

import (
	"errors"
	"fmt"

	"github.com/josephlewis42/structsh/core/ast"
	"github.com/josephlewis42/structsh/core/value"
)

var errDivideByZero = errors.New("division by zero")

// Apply computes left op right.
func Apply(op ast.Operator, left, right value.Value) (value.Value, error) {
	if op.IsComparison() {
		c, err := value.Compare(left, right)
		if err != nil {
			return nil, err
		}
		return value.Boolean(compareResult(op, c)), nil
	}

	switch l := left.(type) {
	case value.Int:
		switch r := right.(type) {
		case value.Int:
			n, err := arith(op, int64(l), int64(r))
			return value.Int(n), err
		case value.Bytes:
			n, err := arith(op, int64(l), int64(r))
			return value.Bytes(n), err
		}
	case value.Bytes:
		switch r := right.(type) {
		case value.Int:
			n, err := arith(op, int64(l), int64(r))
			return value.Bytes(n), err
		case value.Bytes:
			n, err := arith(op, int64(l), int64(r))
			return value.Bytes(n), err
		}
	case value.Duration:
		if r, ok := right.(value.Duration); ok && (op == ast.Add || op == ast.Subtract) {
			n, err := arith(op, int64(l), int64(r))
			return value.Duration(n), err
		}
	case value.String:
		if r, ok := right.(value.String); ok && op == ast.Add {
			return l + r, nil
		}
	}

	return nil, fmt.Errorf("can't apply %s to %s and %s", op, typeName(left), typeName(right))
}

func compareResult(op ast.Operator, c int) bool {
	switch op {
	case ast.Equal:
		return c == 0
	case ast.NotEqual:
		return c != 0
	case ast.LessThan:
		return c < 0
	case ast.LessThanOrEqual:
		return c <= 0
	case ast.GreaterThan:
		return c > 0
	default:
		return c >= 0
	}
}

func arith(op ast.Operator, a, b int64) (int64, error) {
	switch op {
	case ast.Add:
		return a + b, nil
	case ast.Subtract:
		return a - b, nil
	case ast.Multiply:
		return a * b, nil
	case ast.Divide:
		if b == 0 {
			return 0, errDivideByZero
		}
		return a / b, nil
	}
	return 0, fmt.Errorf("unknown operator %s", op)
}

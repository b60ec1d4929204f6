package signature

import (
	"github.com/josephlewis42/structsh/core/ast"
	"github.com/josephlewis42/structsh/core/eval"
)

// Bind matches the tokens written after a command name against the
// signature, evaluating value arguments in scope.
func (s *Signature) Bind(tokens []ast.Expression, scope *eval.Scope) (*Args, error) {
	return s.BindWith(tokens, scope, eval.Evaluate)
}

// BindWith is Bind with a custom evaluator.
//
// Named flags are extracted first, in declaration order, from anywhere in
// the stream. The unclaimed tokens then fill the positional slots. Either
// the whole invocation binds or an error is returned.
func (s *Signature) BindWith(tokens []ast.Expression, scope *eval.Scope, evaluate EvaluateFunc) (*Args, error) {
	if evaluate == nil {
		evaluate = eval.Evaluate
	}
	if scope == nil {
		scope = eval.Empty()
	}

	work := newWorklist(tokens)

	named, err := extractNamed(work, s.Named)
	if err != nil {
		return nil, err
	}

	positional, err := bindPositional(s, work.unclaimed(), scope, evaluate)
	if err != nil {
		return nil, err
	}

	return &Args{Positional: positional, Named: named}, nil
}

package commands

import (
	"github.com/josephlewis42/structsh/core/diag"
	"github.com/josephlewis42/structsh/core/eval"
	"github.com/josephlewis42/structsh/core/signature"
	"github.com/josephlewis42/structsh/core/value"
)

// Where keeps the input rows the condition holds for, e.g.
// `ls | where size > 1kb`.
var Where = &SimpleCommand{
	Sig: signature.New("where").
		Describe("Filter the input by a condition.").
		Required(signature.Block("condition")).
		MustBuild(),

	Callback: func(ctx *Context) ([]value.Value, error) {
		arg, _ := ctx.Args.Nth(0)
		block, ok := arg.Item.(value.Block)
		if !ok {
			return nil, diag.Labeled(diag.InvalidArgumentType, "Expected a block", "not a condition", arg.Span)
		}

		var out []value.Value
		for _, row := range ctx.Input {
			keep, err := eval.RunBlock(block, row, nil)
			if err != nil {
				return nil, err
			}
			if eval.Truthy(keep) {
				out = append(out, row)
			}
		}
		return out, nil
	},
}

func init() {
	addCmd(Where)
}

package commands

import (
	"github.com/josephlewis42/structsh/core/diag"
	"github.com/josephlewis42/structsh/core/signature"
	"github.com/josephlewis42/structsh/core/value"
)

// First passes through the first few input values, one by default.
var First = &SimpleCommand{
	Sig: signature.New("first").
		Describe("Take the first values of the input.").
		Named("count", signature.Optional, signature.Single).
		MustBuild(),

	Callback: func(ctx *Context) ([]value.Value, error) {
		count := int64(1)
		if v, ok := ctx.Args.Get("count"); ok {
			n, err := value.AsInt(v)
			if err != nil {
				return nil, diag.New(diag.InvalidArgumentType, "--count: %v", err)
			}
			if n < 0 {
				return nil, diag.New(diag.InvalidArgumentType, "--count must not be negative, got %d", n)
			}
			count = n
		}

		if count > int64(len(ctx.Input)) {
			count = int64(len(ctx.Input))
		}
		return ctx.Input[:count], nil
	},
}

func init() {
	addCmd(First)
}

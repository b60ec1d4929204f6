package commands

import (
	"github.com/josephlewis42/structsh/core/signature"
	"github.com/josephlewis42/structsh/core/value"
)

// Echo outputs each of its arguments as a value.
var Echo = &SimpleCommand{
	Sig: signature.New("echo").
		Describe("Output each argument as a value.").
		Rest().
		MustBuild(),

	Callback: func(ctx *Context) ([]value.Value, error) {
		out := make([]value.Value, 0, len(ctx.Args.Positional))
		for _, arg := range ctx.Args.Positional {
			out = append(out, arg.Item)
		}
		return out, nil
	},
}

func init() {
	addCmd(Echo)
}

package commands

import (
	"strings"

	"github.com/josephlewis42/structsh/core/diag"
	"github.com/josephlewis42/structsh/core/signature"
	"github.com/josephlewis42/structsh/core/value"
)

// Env outputs the environment as {name, value} rows, optionally setting a
// variable first.
var Env = &SimpleCommand{
	Sig: signature.New("env").
		Describe("Set or print the environment.").
		Named("set", signature.Optional, signature.Tuple).
		MustBuild(),

	Callback: func(ctx *Context) ([]value.Value, error) {
		if pair, ok := ctx.Args.Get("set"); ok {
			kv, _ := pair.(value.List)
			if len(kv) != 2 {
				return nil, diag.New(diag.InvalidArgumentType, "--set needs a name and a value")
			}

			name, err := value.AsString(kv[0])
			if err != nil {
				return nil, diag.New(diag.InvalidArgumentType, "--set: %v", err)
			}
			if name == "" || strings.Contains(name, "=") {
				return nil, diag.New(diag.InvalidArgumentType, "--set: invalid variable name %q", name)
			}
			ctx.Env.Setenv(name, kv[1].Format())
		}

		var out []value.Value
		for _, entry := range ctx.Env.Environ() {
			split := strings.SplitN(entry, "=", 2)
			val := ""
			if len(split) > 1 {
				val = split[1]
			}
			out = append(out, value.NewObject(
				value.Field{Name: "name", Value: value.String(split[0])},
				value.Field{Name: "value", Value: value.String(val)},
			))
		}
		return out, nil
	},
}

func init() {
	addCmd(Env)
}

package commands

import (
	"sort"

	"github.com/josephlewis42/structsh/core/signature"
	"github.com/josephlewis42/structsh/core/value"
)

// Declared creates a command for sig that outputs its bound arguments.
func Declared(sig *signature.Signature) Command {
	return &SimpleCommand{
		Sig: sig,
		Callback: func(ctx *Context) ([]value.Value, error) {
			return []value.Value{ArgsObject(ctx.Args)}, nil
		},
	}
}

// ArgsObject renders bound arguments as {positional: [...], named: {...}},
// named keys sorted.
func ArgsObject(args *signature.Args) *value.Object {
	positional := make(value.List, 0, len(args.Positional))
	for _, arg := range args.Positional {
		positional = append(positional, arg.Item)
	}

	var keys []string
	for k := range args.Named {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	named := value.NewObject()
	for _, k := range keys {
		named.Set(k, args.Named[k])
	}

	return value.NewObject(
		value.Field{Name: "positional", Value: positional},
		value.Field{Name: "named", Value: named},
	)
}

func init() {
	addCmd(Declared(signature.New("args").
		Describe("Show how the arguments bind.").
		Rest().
		MustBuild()))
}

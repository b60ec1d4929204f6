package commands

import (
	"github.com/josephlewis42/structsh/core/diag"
	"github.com/josephlewis42/structsh/core/env"
	"github.com/josephlewis42/structsh/core/signature"
	"github.com/josephlewis42/structsh/core/value"
)

// Pwd outputs the working directory.
var Pwd = &SimpleCommand{
	Sig: signature.New("pwd").
		Describe("Print the working directory.").
		MustBuild(),

	Callback: func(ctx *Context) ([]value.Value, error) {
		return []value.Value{value.String(ctx.Env.Cwd())}, nil
	},
}

// Cd changes the working directory shared by every command, with no path it
// goes home.
var Cd = &SimpleCommand{
	Sig: signature.New("cd").
		Describe("Change the working directory.").
		Optional(signature.Value("path")).
		MustBuild(),

	Callback: func(ctx *Context) ([]value.Value, error) {
		dir := ctx.Env.Getenv(env.EnvHome)
		if dir == "" {
			dir = "/"
		}

		arg, ok := ctx.Args.Nth(0)
		if ok {
			path, err := value.AsString(arg.Item)
			if err != nil {
				return nil, diag.At(diag.InvalidArgumentType, arg.Span, "%v", err)
			}
			dir = path
		}

		if err := ctx.Env.Chdir(ctx.Fs, dir); err != nil {
			if ok {
				return nil, diag.At(diag.Generic, arg.Span, "cd: %v", err)
			}
			return nil, err
		}
		return nil, nil
	},
}

func init() {
	addCmd(Pwd)
	addCmd(Cd)
}

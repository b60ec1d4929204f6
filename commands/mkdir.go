package commands

import (
	"github.com/josephlewis42/structsh/core/diag"
	"github.com/josephlewis42/structsh/core/signature"
	"github.com/josephlewis42/structsh/core/value"
)

// Mkdir creates directories, stopping at the first one that fails.
var Mkdir = &SimpleCommand{
	Sig: signature.New("mkdir").
		Describe("Create directories if they don't exist.").
		Required(signature.Value("directory")).
		Rest().
		Switch("parents").
		MustBuild(),

	Callback: func(ctx *Context) ([]value.Value, error) {
		dirs, err := pathArgs(ctx, "mkdir")
		if err != nil {
			return nil, err
		}

		op := ctx.Fs.Mkdir
		if ctx.Args.Switch("parents") {
			op = ctx.Fs.MkdirAll
		}

		for _, dir := range dirs {
			if err := op(dir.resolved, 0777); err != nil {
				return nil, diag.At(diag.Generic, dir.span, "mkdir: cannot create directory %q: %v", dir.raw, err)
			}
		}
		return nil, nil
	},
}

func init() {
	addCmd(Mkdir)
}

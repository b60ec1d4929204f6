package commands

import (
	"errors"
	"io/fs"

	"github.com/josephlewis42/structsh/core/diag"
	"github.com/josephlewis42/structsh/core/signature"
	"github.com/josephlewis42/structsh/core/value"
)

// Rm removes files, and directories with --recursive.
var Rm = &SimpleCommand{
	Sig: signature.New("rm").
		Describe("Remove files or directories.").
		Required(signature.Value("path")).
		Rest().
		Switch("recursive").
		Switch("force").
		MustBuild(),

	Callback: func(ctx *Context) ([]value.Value, error) {
		targets, err := pathArgs(ctx, "rm")
		if err != nil {
			return nil, err
		}

		recursive, force := ctx.Args.Switch("recursive"), ctx.Args.Switch("force")
		for _, target := range targets {
			info, err := ctx.Fs.Stat(target.resolved)
			switch {
			case errors.Is(err, fs.ErrNotExist):
				if !force {
					return nil, diag.At(diag.Generic, target.span, "rm: can't remove %q: no such file or directory", target.raw)
				}
				continue
			case err != nil:
				return nil, diag.At(diag.Generic, target.span, "rm: can't stat %q: %v", target.raw, err)
			case info.IsDir() && !recursive:
				return nil, diag.At(diag.Generic, target.span, "rm: can't remove %q: is a directory", target.raw)
			case info.IsDir():
				err = ctx.Fs.RemoveAll(target.resolved)
			default:
				err = ctx.Fs.Remove(target.resolved)
			}

			if err != nil {
				return nil, diag.At(diag.Generic, target.span, "rm: can't remove %q: %v", target.raw, err)
			}
		}
		return nil, nil
	},
}

func init() {
	addCmd(Rm)
}

package commands

import (
	"errors"
	"io/fs"
	"time"

	"github.com/josephlewis42/structsh/core/diag"
	"github.com/josephlewis42/structsh/core/signature"
	"github.com/josephlewis42/structsh/core/value"
)

// Touch sets the modification time of files to now, creating them unless
// --no-create is given.
var Touch = &SimpleCommand{
	Sig: signature.New("touch").
		Describe("Update the access and modification times of files to now.").
		Required(signature.Value("file")).
		Rest().
		Switch("no-create").
		MustBuild(),

	Callback: func(ctx *Context) ([]value.Value, error) {
		files, err := pathArgs(ctx, "touch")
		if err != nil {
			return nil, err
		}

		now := time.Now()
		noCreate := ctx.Args.Switch("no-create")
		for _, file := range files {
			err := ctx.Fs.Chtimes(file.resolved, now, now)
			switch {
			case errors.Is(err, fs.ErrNotExist) && !noCreate:
				fd, err := ctx.Fs.Create(file.resolved)
				if err != nil {
					return nil, diag.At(diag.Generic, file.span, "touch: cannot touch %q: %v", file.raw, err)
				}
				fd.Close()
			case errors.Is(err, fs.ErrNotExist):
				// Not an error with --no-create.
			case err != nil:
				return nil, diag.At(diag.Generic, file.span, "touch: setting times of %q: %v", file.raw, err)
			}
		}
		return nil, nil
	},
}

func init() {
	addCmd(Touch)
}

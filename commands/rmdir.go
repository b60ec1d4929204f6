package commands

import (
	"path"

	"github.com/josephlewis42/structsh/core/diag"
	"github.com/josephlewis42/structsh/core/signature"
	"github.com/josephlewis42/structsh/core/value"
	"github.com/spf13/afero"
)

// Rmdir removes empty directories. With --parents every directory named in
// the path is removed too, deepest first.
var Rmdir = &SimpleCommand{
	Sig: signature.New("rmdir").
		Describe("Remove empty directories.").
		Required(signature.Value("directory")).
		Rest().
		Switch("parents").
		MustBuild(),

	Callback: func(ctx *Context) ([]value.Value, error) {
		dirs, err := pathArgs(ctx, "rmdir")
		if err != nil {
			return nil, err
		}

		for _, dir := range dirs {
			steps := []string{dir.raw}
			if ctx.Args.Switch("parents") {
				steps = parentSteps(dir.raw)
			}

			for _, step := range steps {
				resolved := ctx.Env.Resolve(step)
				contents, err := afero.ReadDir(ctx.Fs, resolved)
				if err != nil {
					return nil, diag.At(diag.Generic, dir.span, "rmdir: cannot read directory %q: %v", step, err)
				}
				if len(contents) > 0 {
					return nil, diag.At(diag.Generic, dir.span, "rmdir: directory not empty %q", step)
				}
				if err := ctx.Fs.Remove(resolved); err != nil {
					return nil, diag.At(diag.Generic, dir.span, "rmdir: cannot remove directory %q: %v", step, err)
				}
			}
		}
		return nil, nil
	},
}

// parentSteps lists p and each of its parents as written, deepest first.
func parentSteps(p string) []string {
	var out []string
	for p = path.Clean(p); p != "." && p != "/"; p = path.Dir(p) {
		out = append(out, p)
	}
	return out
}

func init() {
	addCmd(Rmdir)
}

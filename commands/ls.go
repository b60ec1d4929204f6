package commands

import (
	"sort"
	"strings"

	"github.com/josephlewis42/structsh/core/diag"
	"github.com/josephlewis42/structsh/core/signature"
	"github.com/josephlewis42/structsh/core/value"
	"github.com/spf13/afero"
)

// Ls lists a directory as rows of {name, type, size}.
var Ls = &SimpleCommand{
	Sig: signature.New("ls").
		Describe("List directory contents.").
		Optional(signature.Value("path")).
		Switch("all").
		MustBuild(),

	Callback: func(ctx *Context) ([]value.Value, error) {
		dir := ctx.Env.Cwd()
		if arg, ok := ctx.Args.Nth(0); ok {
			path, err := value.AsString(arg.Item)
			if err != nil {
				return nil, diag.At(diag.InvalidArgumentType, arg.Span, "%v", err)
			}
			dir = ctx.Env.Resolve(path)
		}

		entries, err := afero.ReadDir(ctx.Fs, dir)
		if err != nil {
			return nil, err
		}

		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Name() < entries[j].Name()
		})

		listAll := ctx.Args.Switch("all")
		var out []value.Value
		for _, entry := range entries {
			if !listAll && strings.HasPrefix(entry.Name(), ".") {
				continue
			}

			kind, size := "file", entry.Size()
			if entry.IsDir() {
				kind, size = "dir", 0
			}

			out = append(out, value.NewObject(
				value.Field{Name: "name", Value: value.String(entry.Name())},
				value.Field{Name: "type", Value: value.String(kind)},
				value.Field{Name: "size", Value: value.Bytes(size)},
			))
		}
		return out, nil
	},
}

func init() {
	addCmd(Ls)
}

package commands

import (
	"github.com/josephlewis42/structsh/core/ast"
	"github.com/josephlewis42/structsh/core/diag"
	"github.com/josephlewis42/structsh/core/value"
)

type pathArg struct {
	// raw is the path as written, resolved is absolute.
	raw      string
	resolved string
	span     ast.Span
}

// pathArgs resolves every positional argument against the working directory.
func pathArgs(ctx *Context, name string) ([]pathArg, error) {
	var out []pathArg
	for _, arg := range ctx.Args.Positional {
		p, err := value.AsString(arg.Item)
		if err != nil {
			return nil, diag.At(diag.InvalidArgumentType, arg.Span, "%s: %v", name, err)
		}
		out = append(out, pathArg{raw: p, resolved: ctx.Env.Resolve(p), span: arg.Span})
	}
	return out, nil
}

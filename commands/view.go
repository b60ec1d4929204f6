package commands

import (
	"io"

	"github.com/josephlewis42/structsh/core/diag"
	"github.com/josephlewis42/structsh/core/signature"
	"github.com/josephlewis42/structsh/core/value"
	"github.com/juju/ratelimit"
	"github.com/spf13/afero"
)

// View displays a file relative to the shell's working directory.
type View struct{}

var viewSignature = signature.New("view").
	Describe("Display the contents of a file.").
	Optional(signature.Value("file")).
	MustBuild()

func (View) Signature() *signature.Signature {
	return viewSignature
}

func (View) Run(ctx *Context) ([]value.Value, error) {
	file, ok := ctx.Args.Nth(0)
	if !ok {
		if ctx.NameSpan != nil {
			return nil, diag.Labeled(diag.MissingFilename, "View requires a filename", "needs parameter", *ctx.NameSpan)
		}
		return nil, diag.New(diag.MissingFilename, "view requires a filename.")
	}

	name, ok := file.Item.(value.String)
	if !ok {
		return nil, diag.Labeled(diag.InvalidArgumentType, "Expected a string", "not a filename", file.Span)
	}

	path := ctx.Env.Resolve(string(name))
	contents, err := afero.ReadFile(ctx.Fs, path)
	if err != nil {
		return nil, diag.At(diag.Generic, file.Span, "%s: %v", name, err)
	}

	viewer := ctx.viewer()
	printer := &Printer{
		LineNumbers: viewer.LineNumbers,
		Header:      viewer.Header,
		Grid:        viewer.Grid,
	}

	return nil, printer.Print(throttle(ctx.Stdout, viewer.MaxBytesPerSecond), string(name), contents)
}

// throttle limits writes to w to rate bytes per second, 0 is unlimited.
func throttle(w io.Writer, rate int64) io.Writer {
	if rate <= 0 {
		return w
	}
	return ratelimit.Writer(w, ratelimit.NewBucketWithRate(float64(rate), rate))
}

func init() {
	addCmd(View{})
}

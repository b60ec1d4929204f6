package commands

import (
	"fmt"
	"io"
	"unicode"

	"github.com/josephlewis42/structsh/core/diag"
	"github.com/josephlewis42/structsh/core/signature"
	"github.com/josephlewis42/structsh/core/value"
)

type wcCount struct {
	name  string
	bytes int64
	lines int64
	chars int64
	words int64

	inSpace bool
}

func (w *wcCount) Write(data []byte) (int, error) {
	for _, c := range data {
		isFirstByte := w.bytes == 0
		w.bytes++

		// Assume UTF-8. Continuation bytes have their top bits set to 0b10.
		if c < 0b10000000 || c > 0b10111111 {
			w.chars++
		}

		if c == '\n' {
			w.lines++
		}

		if unicode.IsSpace(rune(c)) {
			w.inSpace = true
		} else {
			if w.inSpace || isFirstByte {
				w.words++
			}
			w.inSpace = false
		}
	}

	return len(data), nil
}

func (w *wcCount) add(other *wcCount) {
	w.bytes += other.bytes
	w.chars += other.chars
	w.lines += other.lines
	w.words += other.words
}

func (w *wcCount) object() *value.Object {
	out := value.NewObject()
	if w.name != "" {
		out.Set("name", value.String(w.name))
	}
	out.Set("lines", value.Int(w.lines))
	out.Set("words", value.Int(w.words))
	out.Set("chars", value.Int(w.chars))
	out.Set("bytes", value.Bytes(w.bytes))
	return out
}

// Wc counts the newlines, words and bytes of each file. With no files it
// counts the input, one value per line.
var Wc = &SimpleCommand{
	Sig: signature.New("wc").
		Describe("Count the lines, words and bytes of files or the input.").
		Rest().
		MustBuild(),

	Callback: func(ctx *Context) ([]value.Value, error) {
		files, err := pathArgs(ctx, "wc")
		if err != nil {
			return nil, err
		}

		if len(files) == 0 {
			var count wcCount
			for _, v := range ctx.Input {
				fmt.Fprintln(&count, v.Format())
			}
			return []value.Value{count.object()}, nil
		}

		var out []value.Value
		total := &wcCount{name: "total"}
		for _, file := range files {
			count, err := countFile(ctx, file)
			if err != nil {
				return nil, diag.At(diag.Generic, file.span, "wc: %v", err)
			}
			total.add(count)
			out = append(out, count.object())
		}

		if len(files) > 1 {
			out = append(out, total.object())
		}
		return out, nil
	},
}

func countFile(ctx *Context, file pathArg) (*wcCount, error) {
	fd, err := ctx.Fs.Open(file.resolved)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	count := &wcCount{name: file.raw}
	if _, err := io.Copy(count, fd); err != nil {
		return nil, err
	}
	return count, nil
}

func init() {
	addCmd(Wc)
}

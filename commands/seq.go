package commands

import (
	"github.com/josephlewis42/structsh/core/diag"
	"github.com/josephlewis42/structsh/core/signature"
	"github.com/josephlewis42/structsh/core/value"
)

// maxSeqLength bounds how many values seq produces.
const maxSeqLength = 1 << 20

// Seq outputs the integers in an inclusive range.
var Seq = &SimpleCommand{
	Sig: signature.New("seq").
		Describe("Output a sequence of integers.").
		Named("range", signature.Mandatory, signature.Tuple).
		Named("step", signature.Optional, signature.Single).
		Switch("reverse").
		MustBuild(),

	Callback: func(ctx *Context) ([]value.Value, error) {
		bounds, _ := ctx.Args.Get("range")
		pair, _ := bounds.(value.List)
		if len(pair) != 2 {
			return nil, diag.New(diag.InvalidArgumentType, "--range needs two values")
		}

		lo, err := value.AsInt(pair[0])
		if err != nil {
			return nil, diag.New(diag.InvalidArgumentType, "--range: %v", err)
		}
		hi, err := value.AsInt(pair[1])
		if err != nil {
			return nil, diag.New(diag.InvalidArgumentType, "--range: %v", err)
		}

		step := int64(1)
		if v, ok := ctx.Args.Get("step"); ok {
			if step, err = value.AsInt(v); err != nil {
				return nil, diag.New(diag.InvalidArgumentType, "--step: %v", err)
			}
			if step <= 0 {
				return nil, diag.New(diag.InvalidArgumentType, "--step must be positive, got %d", step)
			}
		}

		// hi-lo can overflow int64 but always fits in a uint64.
		if hi >= lo && (uint64(hi)-uint64(lo))/uint64(step) >= maxSeqLength {
			return nil, diag.New(diag.Generic, "seq: range too large, limit is %d values", maxSeqLength)
		}

		var out []value.Value
		for i := lo; i <= hi; i += step {
			out = append(out, value.Int(i))
			if i > hi-step {
				break
			}
		}

		if ctx.Args.Switch("reverse") {
			for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
				out[i], out[j] = out[j], out[i]
			}
		}
		return out, nil
	},
}

func init() {
	addCmd(Seq)
}

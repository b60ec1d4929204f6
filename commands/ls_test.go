package commands

import (
	"testing"

	"github.com/josephlewis42/structsh/core/ast"
	"github.com/josephlewis42/structsh/core/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formatAll(values []value.Value) []string {
	var out []string
	for _, v := range values {
		out = append(out, v.Format())
	}
	return out
}

func TestLs(t *testing.T) {
	cases := map[string]struct {
		tokens   []ast.Expression
		expected []string
	}{
		"working directory": {
			nil,
			[]string{
				"{name: big.bin, type: file, size: 4.0 KiB}",
				"{name: docs, type: dir, size: 0 B}",
				"{name: notes.txt, type: file, size: 12 B}",
			},
		},
		"all": {
			[]ast.Expression{ast.FlagOf("all")},
			[]string{
				"{name: .hidden, type: file, size: 1 B}",
				"{name: big.bin, type: file, size: 4.0 KiB}",
				"{name: docs, type: dir, size: 0 B}",
				"{name: notes.txt, type: file, size: 12 B}",
			},
		},
		"relative path": {
			[]ast.Expression{ast.Bare("docs")},
			nil,
		},
		"absolute path": {
			[]ast.Expression{ast.Str("/"), ast.FlagOf("all")},
			[]string{"{name: home, type: dir, size: 0 B}"},
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			out, err := newFixture(t).run(Ls, nil, tc.tokens...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, formatAll(out))
		})
	}
}

func TestLs_errors(t *testing.T) {
	f := newFixture(t)

	_, err := f.run(Ls, nil, ast.Str("missing"))
	assert.Error(t, err)

	_, err = f.run(Ls, nil, ast.Int(1))
	assert.EqualError(t, err, "expected a string, got int")
}

package commands

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/josephlewis42/structsh/core/ast"
	"github.com/josephlewis42/structsh/core/config"
	"github.com/josephlewis42/structsh/core/env"
	"github.com/josephlewis42/structsh/core/signature"
	"github.com/josephlewis42/structsh/core/value"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

type fixture struct {
	fs     afero.Fs
	env    *env.Env
	config *config.Configuration
	out    bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/home/docs", 0755))
	require.NoError(t, afero.WriteFile(fs, "/home/notes.txt", []byte("hello\nworld\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/home/big.bin", make([]byte, 4096), 0644))
	require.NoError(t, afero.WriteFile(fs, "/home/.hidden", []byte("x"), 0644))

	e := env.New("/home")
	e.Setenv(env.EnvHome, "/home")

	return &fixture{fs: fs, env: e, config: config.Default()}
}

// run binds tokens against cmd's signature and runs it like a pipeline stage.
func (f *fixture) run(cmd Command, input []value.Value, tokens ...ast.Expression) ([]value.Value, error) {
	args, err := cmd.Signature().Bind(tokens, nil)
	if err != nil {
		return nil, err
	}

	span := ast.Span{Start: 0, End: len(cmd.Signature().Name)}
	return cmd.Run(&Context{
		Args:     args,
		NameSpan: &span,
		Input:    input,
		Env:      f.env,
		Fs:       f.fs,
		Stdout:   &f.out,
		Config:   f.config,
	})
}

func TestAllCommands(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			cmd := AllCommands[name]
			if cmd == nil {
				t.Fatal("nil command", name)
			}
			assert.Equal(t, name, cmd.Signature().Name)
			assert.NoError(t, cmd.Signature().Validate())
			assert.NotEmpty(t, cmd.Signature().Short)
		})
	}
}

func TestRegister(t *testing.T) {
	table := signature.NewTable()
	require.NoError(t, Register(table))
	assert.Equal(t, Names(), table.Names())
	assert.Subset(t, table.Names(), []string{"args", "cd", "echo", "first", "ls", "pwd", "seq", "view", "where"})

	err := Register(table)
	assert.Error(t, err, "registering twice conflicts")
}

func TestDeclared(t *testing.T) {
	f := newFixture(t)
	sig := signature.New("greet").
		Required(signature.Value("who")).
		Optional(signature.Block("filter")).
		Switch("loud").
		Named("times", signature.Optional, signature.Single).
		MustBuild()

	out, err := f.run(Declared(sig), nil,
		ast.FlagOf("times"), ast.Int(3),
		ast.Bare("world"),
		ast.BinaryOf(ast.Bare("size"), ast.GreaterThan, ast.Int(10)),
		ast.FlagOf("loud"),
	)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "{positional: [world, { $it.size > 10 }], named: {loud: true, times: 3}}", out[0].Format())
}

package shell

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/josephlewis42/structsh/core/config"
	"github.com/josephlewis42/structsh/core/diag"
	"github.com/josephlewis42/structsh/core/env"
	"github.com/josephlewis42/structsh/core/logger"
	"github.com/josephlewis42/structsh/core/value"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

type fixture struct {
	*Shell
	out bytes.Buffer
	err bytes.Buffer
	log bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/home/docs", 0755))
	require.NoError(t, afero.WriteFile(fs, "/home/notes.txt", []byte("hello\nworld\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/home/big.bin", make([]byte, 4096), 0644))

	e := env.New("/home")
	e.Setenv(env.EnvHome, "/home")

	sh, err := New(config.Default(), fs, e)
	require.NoError(t, err)

	f := &fixture{Shell: sh}
	sh.Out = &f.out
	sh.Err = &f.err
	sh.Events = logger.NewJSONLinesLogRecorder(&f.log).NewSession()
	return f
}

func format(values []value.Value) (out []string) {
	for _, v := range values {
		out = append(out, v.Format())
	}
	return
}

func names(t *testing.T, values []value.Value) (out []string) {
	for _, v := range values {
		obj, ok := v.(*value.Object)
		require.True(t, ok, "expected an object, got %s", v.Type())
		name, _ := obj.Get("name")
		out = append(out, name.Format())
	}
	return
}

func TestShell_Exec(t *testing.T) {
	cases := map[string]struct {
		line     string
		expected []string
	}{
		"echo":           {"echo a b", []string{"a", "b"}},
		"quoted":         {`echo "a b"`, []string{"a b"}},
		"dotted word":    {"echo notes.txt", []string{"notes.txt"}},
		"pwd":            {"pwd", []string{"/home"}},
		"seq":            {"seq --range 1 3", []string{"1", "2", "3"}},
		"seq step":       {"seq --step 2 --range 1 5", []string{"1", "3", "5"}},
		"seq pipeline":   {"seq --range 1 10 | first --count 2", []string{"1", "2"}},
		"empty line":     {"", nil},
		"declared":       {"greet world", []string{"{positional: [world], named: {}}"}},
		"declared full":  {"greet --times 3 world size > 10 --loud", []string{"{positional: [world, { $it.size > 10 }], named: {loud: true, times: 3}}"}},
		"declared block": {"greet world {$it.size > 10}", []string{"{positional: [world, { $it.size > 10 }], named: {}}"}},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			f := newFixture(t)
			out, err := f.Exec(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, format(out))
		})
	}
}

func TestShell_Exec_listings(t *testing.T) {
	cases := map[string]struct {
		line     string
		expected []string
	}{
		"ls":             {"ls", []string{"big.bin", "docs", "notes.txt"}},
		"ls path":        {"ls /home/docs", nil},
		"where block":    {"ls | where {$it.size > 1kb}", []string{"big.bin"}},
		"where short":    {"ls | where size > 1kb", []string{"big.bin"}},
		"where type":     {`ls | where type == "dir"`, []string{"docs"}},
		"where then one": {"ls | where size < 1kb | first", []string{"docs"}},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			f := newFixture(t)
			out, err := f.Exec(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, names(t, out))
		})
	}
}

func TestShell_Exec_errors(t *testing.T) {
	cases := map[string]struct {
		line string
		kind diag.Kind
	}{
		"unknown command":    {"nope", diag.UnknownCommand},
		"missing block":      {"where", diag.MissingMandatoryPositional},
		"missing tuple":      {"seq", diag.MissingMandatoryNamed},
		"half a tuple":       {"seq --range 1", diag.ExpectedLiteral},
		"too many":           {"pwd extra", diag.TooManyPositional},
		"no filename":        {"view", diag.MissingFilename},
		"unclosed block":     {"where {size > 1", diag.Syntax},
		"unknown in a pipe":  {"ls | nope", diag.UnknownCommand},
		"rest has no scope":  {"echo $HOME", diag.EvaluationFailed},
		"oversized unit":     {"seq --range 1 9000000000000pb", diag.ExpectedLiteral},
		"oversized in block": {"ls | where size > 9000000000000pb", diag.EvaluationFailed},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.Exec(tc.line)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.kind), "expected %s, got %v", tc.kind, err)

			var diagErr *diag.Error
			require.True(t, errors.As(err, &diagErr))
			assert.NotNil(t, diagErr.Span, "every error points somewhere in the line")
		})
	}
}

func TestShell_Exec_dottedPayload(t *testing.T) {
	f := newFixture(t)

	_, err := f.Exec("env --set HOST example.com")
	require.NoError(t, err)
	assert.Equal(t, "example.com", f.Env.Getenv("HOST"))

	_, err = f.Exec("env --set VERSION v1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", f.Env.Getenv("VERSION"))
}

func TestShell_Run(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.Run("echo hello"))
	assert.Equal(t, "hello\n", f.out.String())
	assert.Empty(t, f.err.String())
}

func TestShell_Run_viewsFiles(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.Run("view notes.txt"))
	assert.Equal(t, "hello\nworld\n", f.out.String())
}

func TestShell_Run_rendersErrors(t *testing.T) {
	cases := map[string]struct {
		line     string
		expected string
	}{
		"unknown command": {
			line:     "nope",
			expected: "error: nope: command not found\n  | nope\n  | ^^^^\n",
		},
		"view without a file": {
			line:     "view",
			expected: "error: View requires a filename\n  | view\n  | ^^^^ needs parameter\n",
		},
		"later stage": {
			line:     "ls | nope",
			expected: "error: nope: command not found\n  | ls | nope\n  |      ^^^^\n",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			f := newFixture(t)
			assert.Error(t, f.Run(tc.line))
			assert.Equal(t, tc.expected, f.err.String())
			assert.Empty(t, f.out.String())
		})
	}
}

func TestShell_changesDirectory(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, "structsh:~> ", f.Prompt())

	require.NoError(t, f.Run("cd docs"))
	assert.Equal(t, "/home/docs", f.Env.Cwd())
	assert.Equal(t, "structsh:~/docs> ", f.Prompt())

	require.NoError(t, f.Run("cd /"))
	assert.Equal(t, "structsh:/> ", f.Prompt())

	require.NoError(t, f.Run("cd $HOME"))
	assert.Equal(t, "/home", f.Env.Cwd())

	require.NoError(t, f.Run("cd /"))
	require.NoError(t, f.Run("cd"))
	assert.Equal(t, "/home", f.Env.Cwd())
}

func TestShell_recordsEvents(t *testing.T) {
	f := newFixture(t)
	f.Start(false)

	assert.NoError(t, f.Run("echo hi"))
	assert.Error(t, f.Run("nope"))
	assert.Error(t, f.Run("where"))

	report := logger.NewReport()
	sessions := &logger.SessionReport{}
	require.NoError(t, logger.ReadJSONLinesLog(&f.log, func(le *logger.LogEntry) {
		report.Update(le)
		sessions.Update(le)
	}))

	assert.Equal(t, 4, report.LogEntries)
	assert.Equal(t, 1, report.UnknownCommand.CommandNames.Count("nope"))
	assert.Equal(t, 1, report.BindFailure.Failures.Count("where", "missing_mandatory_positional"))

	session, ok := sessions.Session(f.Events.ID())
	require.True(t, ok)
	assert.False(t, session.Interactive)
	assert.Equal(t, "/home", session.StartDir)
	assert.Equal(t, []string{"echo hi"}, session.Commands)
	assert.Len(t, session.Failures, 2)
}

func TestNew_startDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/srv/data", 0755))

	cfg := config.Default()
	cfg.StartDir = "/srv/data"
	sh, err := New(cfg, fs, env.New("/"))
	require.NoError(t, err)
	assert.Equal(t, "/srv/data", sh.Env.Cwd())

	cfg.StartDir = "/missing"
	_, err = New(cfg, fs, env.New("/"))
	assert.Error(t, err)
}

func TestNew_declaredCommands(t *testing.T) {
	cfg := config.Default()
	cfg.Commands = append(cfg.Commands, config.CommandSpec{Name: "ls"})

	_, err := New(cfg, afero.NewMemMapFs(), env.New("/"))
	assert.EqualError(t, err, `declaring ls: signature "ls" already registered`)
}

// Package shell reads lines, binds them to command signatures and runs the
// resulting pipelines.
package shell

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/anmitsu/go-shlex"
	"github.com/josephlewis42/structsh/commands"
	"github.com/josephlewis42/structsh/core/ast"
	"github.com/josephlewis42/structsh/core/config"
	"github.com/josephlewis42/structsh/core/diag"
	"github.com/josephlewis42/structsh/core/env"
	"github.com/josephlewis42/structsh/core/eval"
	"github.com/josephlewis42/structsh/core/logger"
	"github.com/josephlewis42/structsh/core/signature"
	"github.com/josephlewis42/structsh/core/value"
	"github.com/spf13/afero"
)

type Shell struct {
	Registry *signature.Table
	Commands map[string]commands.Command
	Env      *env.Env
	Fs       afero.Fs
	Config   *config.Configuration

	// Events receives a structured record of everything run.
	Events *logger.SessionLogger
	// Log gets diagnostics about the shell itself.
	Log *log.Logger
	Out io.Writer
	Err io.Writer

	// Readline is set while the shell runs interactively.
	Readline *readline.Instance

	history []string
	exited  bool
}

// New creates a shell with every built in command and the commands declared
// in the configuration. Output is discarded until Out and Err are set.
func New(cfg *config.Configuration, fs afero.Fs, environment *env.Env) (*Shell, error) {
	table := signature.NewTable()
	if err := commands.Register(table); err != nil {
		return nil, err
	}

	cmds := make(map[string]commands.Command)
	for name, cmd := range commands.AllCommands {
		cmds[name] = cmd
	}

	for _, spec := range cfg.Commands {
		sig, err := spec.ToSignature()
		if err != nil {
			return nil, err
		}
		if err := table.Register(sig); err != nil {
			return nil, fmt.Errorf("declaring %s: %w", spec.Name, err)
		}
		cmds[sig.Name] = commands.Declared(sig)
	}

	if cfg.StartDir != "" {
		if err := environment.Chdir(fs, cfg.StartDir); err != nil {
			return nil, fmt.Errorf("start_dir: %w", err)
		}
	}

	return &Shell{
		Registry: table,
		Commands: cmds,
		Env:      environment,
		Fs:       fs,
		Config:   cfg,
		Events:   logger.Discard().Sessionless(),
		Log:      log.New(io.Discard, "", 0),
		Out:      io.Discard,
		Err:      io.Discard,
	}, nil
}

// Start records the beginning of a session.
func (s *Shell) Start(interactive bool) {
	s.record(&logger.SessionStart{Interactive: interactive, StartDir: s.Env.Cwd()})
}

// Exited is true once the exit builtin ran.
func (s *Shell) Exited() bool {
	return s.exited
}

func (s *Shell) Prompt() string {
	pwd := s.Env.Cwd()
	if home := s.Env.Getenv(env.EnvHome); home != "" && home != "/" && strings.HasPrefix(pwd, home) {
		pwd = "~" + strings.TrimPrefix(pwd, home)
	}

	return strings.ReplaceAll(s.Config.Prompt, `\w`, pwd)
}

// Interactive reads lines from rl until EOF or exit.
func (s *Shell) Interactive(rl *readline.Instance) error {
	s.Readline = rl
	defer func() { s.Readline = nil }()

	s.Start(true)

	for !s.exited {
		rl.SetPrompt(commands.ColorBoldGreen.Sprint(s.Prompt()))
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			return nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			continue

		case err != nil:
			return err
		}

		s.Run(line)
	}

	return nil
}

// Run executes one line, writing its output to Out and any error to Err.
// The error is also returned.
func (s *Shell) Run(line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	s.addHistory(line)

	if tokens, err := shlex.Split(line, true); err == nil && len(tokens) > 0 {
		if builtin, ok := AllBuiltins[tokens[0]]; ok {
			if code := builtin.Main(s, tokens); code != 0 {
				return fmt.Errorf("%s: exit status %d", tokens[0], code)
			}
			return nil
		}
	}

	values, err := s.Exec(line)
	if err != nil {
		fmt.Fprint(s.Err, commands.ColorBoldRed.Sprint(diag.Render(err, line)))
		return err
	}

	for _, v := range values {
		fmt.Fprintln(s.Out, v.Format())
	}
	return nil
}

// Exec runs a pipeline and returns the values of the last stage.
func (s *Shell) Exec(line string) ([]value.Value, error) {
	pipeline, err := Parse(line)
	if err != nil {
		return nil, err
	}

	var stream []value.Value
	for _, inv := range pipeline {
		if stream, err = s.runStage(inv, stream); err != nil {
			return nil, err
		}
	}
	return stream, nil
}

func (s *Shell) runStage(inv Invocation, input []value.Value) ([]value.Value, error) {
	sig, err := s.Registry.Get(inv.Name)
	cmd, ok := s.Commands[inv.Name]
	if err != nil || !ok {
		s.record(&logger.UnknownCommand{Command: inv.Name})
		return nil, locate(diag.New(diag.UnknownCommand, "%s: command not found", inv.Name), inv.Name, inv.NameSpan)
	}

	args, err := sig.Bind(inv.Args, s.scope())
	if err != nil {
		s.record(&logger.BindFailure{Command: inv.Name, Kind: diag.KindOf(err).String(), Error: err.Error()})
		return nil, locate(err, inv.Name, inv.NameSpan)
	}

	var printed []string
	for _, arg := range inv.Args {
		printed = append(printed, arg.Print())
	}
	s.record(&logger.RunCommand{Command: inv.Name, Args: printed})

	nameSpan := inv.NameSpan
	out, err := cmd.Run(&commands.Context{
		Args:     args,
		NameSpan: &nameSpan,
		Input:    input,
		Env:      s.Env,
		Fs:       s.Fs,
		Stdout:   s.Out,
		Config:   s.Config,
	})
	if err != nil {
		return nil, locate(err, inv.Name, inv.NameSpan)
	}
	return out, nil
}

// scope exposes environment variables to expressions, e.g. $HOME.
func (s *Shell) scope() *eval.Scope {
	scope := eval.Empty()
	for _, kv := range s.Env.Environ() {
		split := strings.SplitN(kv, "=", 2)
		scope.Set(split[0], value.String(split[1]))
	}
	return scope
}

func (s *Shell) record(event logger.Event) {
	if err := s.Events.Record(event); err != nil {
		s.Log.Printf("couldn't record %s: %v", event.EventType(), err)
	}
}

func (s *Shell) addHistory(line string) {
	s.history = append(s.history, line)
	if limit := s.Config.HistoryLimit; limit > 0 && len(s.history) > limit {
		s.history = s.history[len(s.history)-limit:]
	}
}

// locate points errors that don't carry a span at the command name.
func locate(err error, name string, span ast.Span) error {
	var diagErr *diag.Error
	if !errors.As(err, &diagErr) {
		return &diag.Error{Kind: diag.Generic, Msg: fmt.Sprintf("%s: %v", name, err), Span: &span}
	}
	if diagErr.Span != nil {
		return err
	}

	located := *diagErr
	located.Span = &span
	return &located
}

package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/josephlewis42/structsh/core/ast"
	"github.com/josephlewis42/structsh/core/config"
	"github.com/josephlewis42/structsh/core/env"
	"github.com/josephlewis42/structsh/core/signature"
	"github.com/josephlewis42/structsh/core/value"
	"github.com/spf13/afero"
)

// Command is a structured shell command.
type Command interface {
	// Signature declares the arguments the command accepts.
	Signature() *signature.Signature
	// Run executes the command against its bound arguments and returns the
	// values it produced.
	Run(ctx *Context) ([]value.Value, error)
}

// Context holds everything a command can touch during one invocation.
type Context struct {
	Args *signature.Args
	// NameSpan locates the command name in the line, nil if it isn't known.
	NameSpan *ast.Span
	// Input is the output of the previous pipeline stage.
	Input []value.Value

	Env    *env.Env
	Fs     afero.Fs
	Stdout io.Writer
	Config *config.Configuration
}

func (c *Context) viewer() config.Viewer {
	if c.Config == nil {
		return config.Viewer{}
	}
	return c.Config.Viewer
}

// AllCommands holds a list of all registered commands by name.
var AllCommands = make(map[string]Command)

func addCmd(cmd Command) {
	AllCommands[cmd.Signature().Name] = cmd
}

// Names lists the registered commands in sorted order.
func Names() []string {
	var out []string
	for name := range AllCommands {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Register installs the signature of every command in AllCommands.
func Register(table *signature.Table) error {
	for _, name := range Names() {
		if err := table.Register(AllCommands[name].Signature()); err != nil {
			return fmt.Errorf("registering %s: %w", name, err)
		}
	}
	return nil
}

// SimpleCommand pairs a signature with a callback.
type SimpleCommand struct {
	Sig      *signature.Signature
	Callback func(ctx *Context) ([]value.Value, error)
}

var _ Command = (*SimpleCommand)(nil)

func (s *SimpleCommand) Signature() *signature.Signature {
	return s.Sig
}

func (s *SimpleCommand) Run(ctx *Context) ([]value.Value, error) {
	return s.Callback(ctx)
}

var (
	ColorBoldBlue  = color.New(color.FgBlue, color.Bold)
	ColorBoldGreen = color.New(color.FgGreen, color.Bold)
	ColorBoldRed   = color.New(color.FgRed, color.Bold)
	ColorFaint     = color.New(color.FgHiBlack)
)

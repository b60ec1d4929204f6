package shell

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/pborman/getopt/v2"
)

// AllBuiltins holds a list of all registered shell builtins. Builtins work
// on plain words and never go through argument binding.
var AllBuiltins = make(map[string]ShellBuiltin)

type ShellBuiltin interface {
	Main(s *Shell, args []string) int
}

type ShellBuiltinFunc func(s *Shell, args []string) int

func (f ShellBuiltinFunc) Main(s *Shell, args []string) int {
	return f(s, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// Exit quits the shell
func Exit(s *Shell, args []string) int {
	s.exited = true
	return 0
}

func History(s *Shell, args []string) int {
	opts := getopt.New()
	clearHistory := opts.Bool('c', "clear the history by deleting all entries")
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	if err := opts.Getopt(args, nil); err != nil || *helpOpt {
		w := s.Err
		if err != nil {
			fmt.Fprintln(w, err)
		}
		fmt.Fprintln(w, "Display or manipulate the history list")
		fmt.Fprintln(w, "Display the history list with line numbers.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		opts.PrintOptions(w)
		return 1
	}

	if *clearHistory {
		if s.Readline != nil {
			s.Readline.Operation.ResetHistory()
		}
		s.history = nil
		return 0
	}

	for i, line := range s.history {
		fmt.Fprintf(s.Out, "% 5d  %s\n", i, line)
	}
	return 0
}

func Help(s *Shell, args []string) int {
	opts := getopt.New()
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	if err := opts.Getopt(args, nil); err != nil || *helpOpt {
		w := s.Err
		if err != nil {
			fmt.Fprintln(w, err)
		}
		fmt.Fprintln(w, "usage: help [NAME...]")
		fmt.Fprintln(w, "Display the usage of commands.")
		return 1
	}

	w := s.Out
	if topics := opts.Args(); len(topics) > 0 {
		status := 0
		for _, name := range topics {
			sig, err := s.Registry.Get(name)
			if err != nil {
				fmt.Fprintf(s.Err, "help: no help topics match `%s'\n", name)
				status = 1
				continue
			}
			fmt.Fprintf(w, "%s: %s\n", name, sig.Usage())
			if sig.Short != "" {
				fmt.Fprintf(w, "    %s\n", sig.Short)
			}
		}
		return status
	}

	fmt.Fprintln(w, "These shell commands are defined internally.  Type `help' to see this list.")
	fmt.Fprintln(w, "Type `help name' to find out more about the command `name'.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Builtins:")

	var builtins []string
	for k := range AllBuiltins {
		builtins = append(builtins, k)
	}
	sort.Strings(builtins)
	for _, name := range builtins {
		fmt.Fprintf(w, "  %s\n", name)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, name := range s.Registry.Names() {
		sig, _ := s.Registry.Get(name)
		fmt.Fprintf(tw, "  %s\t%s\n", sig.Usage(), sig.Short)
	}
	tw.Flush()

	return 0
}

func init() {
	AllBuiltins["history"] = ShellBuiltinFunc(History)
	AllBuiltins["help"] = ShellBuiltinFunc(Help)
	AllBuiltins["exit"] = ShellBuiltinFunc(Exit)
}

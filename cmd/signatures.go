package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"text/tabwriter"

	"github.com/josephlewis42/structsh/commands"
	"github.com/josephlewis42/structsh/core/config"
	"github.com/josephlewis42/structsh/core/shell"
	"github.com/josephlewis42/structsh/core/signature"
	"github.com/spf13/cobra"
)

var signaturesCmd = &cobra.Command{
	Use:   "signatures",
	Short: "Show the usage of every command, including configured ones.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		table := signature.NewTable()
		if err := commands.Register(table); err != nil {
			return err
		}

		cfg, err := config.Load(cfgPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			cfg = config.Default()
		case err != nil:
			return err
		}

		for _, spec := range cfg.Commands {
			sig, err := spec.ToSignature()
			if err != nil {
				return err
			}
			if err := table.Register(sig); err != nil {
				return err
			}
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		for _, name := range table.Names() {
			sig, _ := table.Get(name)
			fmt.Fprintf(w, "%s\t%s\n", sig.Usage(), sig.Short)
		}
		var builtins []string
		for name := range shell.AllBuiltins {
			builtins = append(builtins, name)
		}
		sort.Strings(builtins)
		for _, name := range builtins {
			fmt.Fprintf(w, "shell:%s\t\n", name)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(signaturesCmd)
}

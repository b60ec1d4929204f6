package cmd

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/structsh/core/config"
	"github.com/josephlewis42/structsh/core/env"
	"github.com/josephlewis42/structsh/core/logger"
	"github.com/josephlewis42/structsh/core/shell"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var shellLine string

// shellCmd runs the shell over the local filesystem
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive shell, or run one line with -c.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		shellLogger := log.New(cmd.ErrOrStderr(), "[structsh] ", 0)

		cfg, err := config.Load(cfgPath)
		if errors.Is(err, fs.ErrNotExist) {
			shellLogger.Println("No configuration found, using defaults. Run init to customize.")
			cfg, err = config.Default(), nil
		}
		if err != nil {
			return err
		}

		wd, err := os.Getwd()
		if err != nil {
			return err
		}

		logFd, err := cfg.OpenAppLog()
		if err != nil {
			return err
		}
		defer logFd.Close()

		sh, err := shell.New(cfg, afero.NewOsFs(), env.NewFromEnvList(wd, os.Environ()))
		if err != nil {
			return err
		}
		sh.Out = cmd.OutOrStdout()
		sh.Err = cmd.ErrOrStderr()
		sh.Log = shellLogger
		sh.Events = logger.NewJSONLinesLogRecorder(logFd).NewSession()

		if cmd.Flags().Changed("command") {
			sh.Start(false)
			if err := sh.Run(shellLine); err != nil {
				return errFailed
			}
			return nil
		}

		rl, err := readline.NewEx(&readline.Config{
			Prompt:          sh.Prompt(),
			HistoryFile:     cfg.HistoryPath(),
			HistoryLimit:    cfg.HistoryLimit,
			InterruptPrompt: "^C",
			EOFPrompt:       "exit",
			Stdout:          cmd.OutOrStdout(),
			Stderr:          cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}
		defer rl.Close()

		sh.Out = rl.Stdout()
		sh.Err = rl.Stderr()
		return sh.Interactive(rl)
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
	shellCmd.Flags().StringVarP(&shellLine, "command", "c", "", "Run a single line and exit.")
}

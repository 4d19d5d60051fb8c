package cli

import (
	"io"
	"os"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the calc command.
func NewRootCommand() *cobra.Command {
	cfg := DefaultConfig()
	var cfgPath, inName string

	cmd := &cobra.Command{
		Use:   "calc [expression...]",
		Short: "Evaluate bracketed arithmetic expressions",
		Long: "Evaluate arithmetic expressions over integers with + - * / and ( ) brackets.\n" +
			"Expressions come from arguments, from --in, or from stdin one per line.\n" +
			"With no arguments and a terminal on stdin, calc reads interactively.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &cfg, cfgPath, inName, args)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "YAML config file")
	cmd.Flags().StringVar(&inName, "in", "", "input file with one expression per line (- for stdin)")
	cfg.RegisterFlags(cmd.Flags())
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return commandError("invalid flags", err)
	})

	return cmd
}

func run(cmd *cobra.Command, cfg *Config, cfgPath, inName string, args []string) error {
	if cfgPath != "" {
		file, err := LoadConfig(cfgPath)
		if err != nil {
			return commandError("loading config", err)
		}
		cfg.merge(file, cmd.Flags())
	}
	if err := cfg.Validate(); err != nil {
		return commandError("invalid config", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	r := newRunner(*cfg, cmd.OutOrStdout(), logger)
	stdin := cmd.InOrStdin()

	var exprs []string
	if inName != "" {
		lines, err := readInput(inName, stdin)
		if err != nil {
			return commandError("reading input", err)
		}
		exprs = append(exprs, lines...)
	}
	exprs = append(exprs, args...)

	if inName == "" && len(args) == 0 {
		if isTerminal(stdin) {
			level.Debug(logger).Log("msg", "starting interactive session")
			return r.repl(stdin, cmd.OutOrStdout())
		}
		lines, err := readLines(stdin, "stdin")
		if err != nil {
			return commandError("reading input", err)
		}
		exprs = lines
	}
	return r.batch(cmd.Context(), exprs)
}

// readInput reads expressions from the named file, or from stdin for "-".
func readInput(name string, stdin io.Reader) ([]string, error) {
	if name == "-" {
		return readLines(stdin, "stdin")
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLines(f, name)
}

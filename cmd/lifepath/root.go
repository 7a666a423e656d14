package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lifepath/automaton"
	"github.com/katalvlaran/lifepath/config"
	"github.com/katalvlaran/lifepath/search"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitInternal = 2
)

// errNoPath is returned by solve when no candidate reaches the destination.
var errNoPath = errors.New("no path found")

// app carries the state shared by all subcommands.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	verbose    bool

	cfg config.Config
	log *slog.Logger
}

// run executes the command line and maps the outcome to an exit code.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{in: in, out: out, errOut: errOut}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	fmt.Fprintln(errOut, "lifepath:", err)
	var ce *search.ConsistencyError
	if errors.As(err, &ce) {
		return exitInternal
	}
	return exitFailure
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lifepath",
		Short:         "Find paths across a cellular automaton",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every generation")

	root.AddCommand(a.solveCmd(), a.verifyCmd(), a.stepCmd(), a.configCmd())
	return root
}

// readAutomaton parses the automaton at path, or standard input when path is
// empty or "-".
func (a *app) readAutomaton(path string, opts ...automaton.Option) (*automaton.Automaton, error) {
	if path == "" || path == "-" {
		au, err := automaton.Parse(a.in, opts...)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return au, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	au, err := automaton.Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return au, nil
}

func argOrStdin(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

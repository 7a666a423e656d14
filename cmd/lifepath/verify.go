package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lifepath/search"
)

func (a *app) verifyCmd() *cobra.Command {
	var (
		immutable    bool
		maxLivesLost int
	)
	cmd := &cobra.Command{
		Use:   "verify FILE PATHFILE",
		Short: "Replay a route and check that it is legal",
		Long: `Replays the U/D/L/R moves in PATHFILE ("-" for stdin) from the source of
the automaton in FILE, one generation per move. The route must end at the
destination and may touch at most --max-lives-lost alive cells, never on its
first or last tick.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("immutable-endpoints") {
				cfg.ImmutableEndpoints = immutable
			}
			if cmd.Flags().Changed("max-lives-lost") {
				cfg.MaxLivesLost = maxLivesLost
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if args[0] == "-" && args[1] == "-" {
				return fmt.Errorf("FILE and PATHFILE cannot both be stdin")
			}

			au, err := a.readAutomaton(args[0], cfg.AutomatonOptions()...)
			if err != nil {
				return err
			}
			path, err := a.readPath(args[1])
			if err != nil {
				return err
			}
			replay, err := search.Verify(au, path, cfg.MaxLivesLost)
			if err != nil {
				return err
			}
			a.log.Debug("path verified", "ticks", replay.Ticks, "lives_lost", replay.LivesLost)
			fmt.Fprintf(a.out, "ok: %d moves, %d lives lost\n", replay.Ticks, replay.LivesLost)
			return nil
		},
	}
	cmd.Flags().BoolVar(&immutable, "immutable-endpoints", false, "keep source and destination dead in every generation")
	cmd.Flags().IntVar(&maxLivesLost, "max-lives-lost", 0, "alive cells the route may touch")
	return cmd
}

func (a *app) readPath(name string) (search.Path, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(a.in)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}
	p, err := search.ParsePath(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return p, nil
}

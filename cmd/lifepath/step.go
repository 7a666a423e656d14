package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) stepCmd() *cobra.Command {
	var (
		n         int
		immutable bool
	)
	cmd := &cobra.Command{
		Use:   "step [FILE]",
		Short: "Print the automaton after N generations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 0 {
				return fmt.Errorf("-n must be >= 0, got %d", n)
			}
			cfg := a.cfg
			if cmd.Flags().Changed("immutable-endpoints") {
				cfg.ImmutableEndpoints = immutable
			}
			au, err := a.readAutomaton(argOrStdin(args), cfg.AutomatonOptions()...)
			if err != nil {
				return err
			}
			au = au.Advance(n)
			a.log.Debug("advanced", "generation", au.Generation(), "alive", au.Grid().LiveCount())
			fmt.Fprintln(a.out, au)
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "generations", "n", 1, "number of generations to advance")
	cmd.Flags().BoolVar(&immutable, "immutable-endpoints", false, "keep source and destination dead in every generation")
	return cmd
}

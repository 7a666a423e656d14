package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lifepath/automaton"
	"github.com/katalvlaran/lifepath/config"
	"github.com/katalvlaran/lifepath/grid"
	"github.com/katalvlaran/lifepath/search"
)

// solveFlags mirror config.Config; a flag overrides the config only when set.
type solveFlags struct {
	strategy           string
	maxGenerations     int
	maxPessimism       int
	immutableEndpoints bool
	check              bool
	maxLivesLost       int
	workers            int

	fills       []string
	fillAt      string
	metricsFile string
}

func (f *solveFlags) register(fs *pflag.FlagSet) {
	d := config.Default()
	fs.StringVar(&f.strategy, "strategy", d.Strategy, "search strategy: heuristic or robust")
	fs.IntVar(&f.maxGenerations, "max-generations", d.MaxGenerations, "stop before `LIMIT` generations")
	fs.IntVar(&f.maxPessimism, "max-pessimism", d.MaxPessimism, "ignore moves `LIMIT` worse than the best estimate (heuristic only)")
	fs.BoolVar(&f.immutableEndpoints, "immutable-endpoints", d.ImmutableEndpoints, "keep source and destination dead in every generation")
	fs.BoolVar(&f.check, "check", d.Check, "replay every path before printing it")
	fs.IntVar(&f.maxLivesLost, "max-lives-lost", d.MaxLivesLost, "live cells tolerated by --check and verify")
	fs.IntVar(&f.workers, "workers", d.Workers, "concurrent searches over fillings (0 = GOMAXPROCS)")
	fs.StringSliceVar(&f.fills, "fill", nil, "candidate filling `FILE` of 0/1 rows; repeatable")
	fs.StringVar(&f.fillAt, "fill-at", "0,0", "top-left `ROW,COL` of the fillings")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to `FILE`")
}

// apply copies the explicitly set flags over cfg.
func (f *solveFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if fs.Changed("max-generations") {
		cfg.MaxGenerations = f.maxGenerations
	}
	if fs.Changed("max-pessimism") {
		cfg.MaxPessimism = f.maxPessimism
	}
	if fs.Changed("immutable-endpoints") {
		cfg.ImmutableEndpoints = f.immutableEndpoints
	}
	if fs.Changed("check") {
		cfg.Check = f.check
	}
	if fs.Changed("max-lives-lost") {
		cfg.MaxLivesLost = f.maxLivesLost
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
}

func (a *app) solveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve [FILE]",
		Short: "Print the shortest route from source to destination",
		Long: `Reads an automaton (0 dead, 1 alive, 3 source, 4 destination, x
indeterminate) and prints the route as space-separated U, D, L, R moves.

With --fill, every FILE is written over the x window at --fill-at and the
candidates are searched concurrently; one line is printed per candidate.
When no route is found the best-effort route to the closest cell is printed
and the command fails.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd, argOrStdin(args), &f)
		},
	}
	f.register(cmd.Flags())
	return cmd
}

type candidate struct {
	name string
	a    *automaton.Automaton
}

func (a *app) solve(cmd *cobra.Command, path string, f *solveFlags) error {
	cfg := a.cfg
	f.apply(cmd.Flags(), &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	cands, err := a.candidates(path, cfg, f)
	if err != nil {
		return err
	}
	autos := make([]*automaton.Automaton, len(cands))
	for i, c := range cands {
		autos[i] = c.a
	}

	opts := append(cfg.SearchOptions(), search.WithOnGeneration(a.logGeneration))
	metrics := newRunMetrics()
	start := time.Now()
	results, err := search.SearchAll(cmd.Context(), autos, opts...)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	metrics.observeDuration(elapsed)
	a.log.Info("run finished",
		"candidates", len(cands),
		"elapsed", elapsed.Round(time.Microsecond),
		"throughput", throughput(results, elapsed),
	)

	found := 0
	for i, res := range results {
		metrics.observe(res)
		a.log.Info("search finished",
			"candidate", cands[i].name,
			"strategy", res.Strategy,
			"termination", res.Termination,
			"generations", humanize.Comma(int64(res.Generations)),
			"visited", humanize.Comma(int64(res.Visited)),
			"length", len(res.Path),
			"closest", res.Closest,
			"distance", res.Distance,
		)
		if cfg.Check {
			replay, err := search.VerifyEndingAt(autos[i], res.Path, res.Closest, cfg.MaxLivesLost)
			if err != nil {
				return err
			}
			a.log.Info("path checked", "candidate", cands[i].name, "ticks", replay.Ticks, "lives_lost", replay.LivesLost)
		}
		if res.Found {
			found++
		} else {
			a.log.Warn("destination not reached",
				"candidate", cands[i].name,
				"closest", res.Closest,
				"distance", res.Distance,
				"at_generation", len(res.Path),
			)
		}
		if len(cands) == 1 {
			fmt.Fprintln(a.out, res.Path)
		} else {
			fmt.Fprintf(a.out, "%s: %s\n", cands[i].name, res.Path)
		}
	}

	if f.metricsFile != "" {
		if err := metrics.write(f.metricsFile); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}
	if found == 0 {
		return errNoPath
	}
	return nil
}

// candidates reads the input automaton and expands it into one automaton per
// filling, or returns the input alone when no filling is given.
func (a *app) candidates(path string, cfg config.Config, f *solveFlags) ([]candidate, error) {
	aopts := cfg.AutomatonOptions()
	if len(f.fills) == 0 {
		au, err := a.readAutomaton(path, aopts...)
		if err != nil {
			return nil, err
		}
		return []candidate{{name: nameOf(path), a: au}}, nil
	}

	row, col, err := parseRowCol(f.fillAt)
	if err != nil {
		return nil, fmt.Errorf("--fill-at: %w", err)
	}
	fills := make([]*grid.Grid, len(f.fills))
	for i, name := range f.fills {
		g, err := readGrid(name)
		if err != nil {
			return nil, err
		}
		if i > 0 && (g.Height() != fills[0].Height() || g.Width() != fills[0].Width()) {
			return nil, fmt.Errorf("%s: %d×%d filling, want %d×%d",
				name, g.Height(), g.Width(), fills[0].Height(), fills[0].Width())
		}
		fills[i] = g
	}
	window := grid.Window{Row: row, Col: col, Height: fills[0].Height(), Width: fills[0].Width()}
	base, err := a.readAutomaton(path, append(aopts, automaton.WithIndeterminateWindow(window))...)
	if err != nil {
		return nil, err
	}

	cands := make([]candidate, len(fills))
	for i, g := range fills {
		au, err := base.WithFill(g, row, col)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.fills[i], err)
		}
		cands[i] = candidate{name: filepath.Base(f.fills[i]), a: au}
	}
	return cands, nil
}

func (a *app) logGeneration(s search.GenerationStats) {
	a.log.Debug("generation",
		"generation", s.Generation,
		"frontier", s.Frontier,
		"visited", s.Visited,
		"best_distance", s.BestDistance,
	)
}

func readGrid(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := grid.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func parseRowCol(s string) (row, col int, err error) {
	r, c, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("want ROW,COL, got %q", s)
	}
	if row, err = strconv.Atoi(strings.TrimSpace(r)); err != nil {
		return 0, 0, err
	}
	if col, err = strconv.Atoi(strings.TrimSpace(c)); err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

func nameOf(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return filepath.Base(path)
}

// throughput renders reached lattice cells per second over all results.
func throughput(results []*search.Result, elapsed time.Duration) string {
	visited := 0
	for _, r := range results {
		visited += r.Visited
	}
	if elapsed <= 0 {
		return humanize.Comma(int64(visited)) + " cells"
	}
	return humanize.SIWithDigits(float64(visited)/elapsed.Seconds(), 1, "cells/s")
}

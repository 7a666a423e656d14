// Package config loads the budgets and switches of a lifepath run.
//
// Values are merged with the priority env > file > defaults; command-line
// flags are applied on top by the caller. Unknown YAML keys are rejected so a
// misspelt budget does not silently fall back to its default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lifepath/automaton"
	"github.com/katalvlaran/lifepath/search"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Environment variables read by Load.
const (
	EnvMaxGenerations     = "LIFEPATH_MAX_GENERATIONS"
	EnvMaxPessimism       = "LIFEPATH_MAX_PESSIMISM"
	EnvStrategy           = "LIFEPATH_STRATEGY"
	EnvImmutableEndpoints = "LIFEPATH_IMMUTABLE_ENDPOINTS"
	EnvCheck              = "LIFEPATH_CHECK"
	EnvMaxLivesLost       = "LIFEPATH_MAX_LIVES_LOST"
	EnvWorkers            = "LIFEPATH_WORKERS"
)

// Config holds every tunable of a run.
type Config struct {
	// MaxGenerations caps the generations computed per search.
	MaxGenerations int `yaml:"max_generations"`
	// MaxPessimism is the pruning budget of the heuristic strategy.
	MaxPessimism int `yaml:"max_pessimism"`
	// Strategy is "heuristic" or "robust".
	Strategy string `yaml:"strategy"`
	// ImmutableEndpoints forces source and destination dead in every generation.
	ImmutableEndpoints bool `yaml:"immutable_endpoints"`
	// Check replays every returned path before printing it.
	Check bool `yaml:"check"`
	// MaxLivesLost is the number of live cells tolerated by the check.
	MaxLivesLost int `yaml:"max_lives_lost"`
	// Workers bounds concurrent searches over candidate fillings; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		MaxGenerations: search.DefaultMaxGenerations,
		MaxPessimism:   search.DefaultMaxPessimism,
		Strategy:       search.Heuristic.String(),
		MaxLivesLost:   0,
		Workers:        0,
	}
}

// Load merges defaults, the YAML file at path (skipped when path is empty)
// and the LIFEPATH_* environment, then validates the result. A path that
// does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		defer f.Close()
		if err := decode(f, &cfg); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse reads a YAML document over the defaults and validates it.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	if err := decode(r, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, cfg.Validate()
}

func decode(r io.Reader, cfg *Config) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(cfg)
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvMaxGenerations, &cfg.MaxGenerations},
		{EnvMaxPessimism, &cfg.MaxPessimism},
		{EnvMaxLivesLost, &cfg.MaxLivesLost},
		{EnvWorkers, &cfg.Workers},
	}
	for _, e := range ints {
		if v, ok := lookup(e.key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("config: %s: %w", e.key, err)
			}
			*e.dst = n
		}
	}
	bools := []struct {
		key string
		dst *bool
	}{
		{EnvImmutableEndpoints, &cfg.ImmutableEndpoints},
		{EnvCheck, &cfg.Check},
	}
	for _, e := range bools {
		if v, ok := lookup(e.key); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("config: %s: %w", e.key, err)
			}
			*e.dst = b
		}
	}
	if v, ok := lookup(EnvStrategy); ok && v != "" {
		cfg.Strategy = v
	}
	return nil
}

// Validate rejects negative budgets and unknown strategies.
func (c Config) Validate() error {
	switch {
	case c.MaxGenerations < 0:
		return fmt.Errorf("%w: max_generations must be >= 0, got %d", ErrInvalid, c.MaxGenerations)
	case c.MaxPessimism < 0:
		return fmt.Errorf("%w: max_pessimism must be >= 0, got %d", ErrInvalid, c.MaxPessimism)
	case c.MaxLivesLost < 0:
		return fmt.Errorf("%w: max_lives_lost must be >= 0, got %d", ErrInvalid, c.MaxLivesLost)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalid, c.Workers)
	}
	if _, err := search.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: strategy must be heuristic or robust, got %q", ErrInvalid, c.Strategy)
	}
	return nil
}

// SearchOptions converts c into search options. c must be valid.
func (c Config) SearchOptions() []search.Option {
	s, _ := search.ParseStrategy(c.Strategy)
	return []search.Option{
		search.WithStrategy(s),
		search.WithMaxGenerations(c.MaxGenerations),
		search.WithMaxPessimism(c.MaxPessimism),
		search.WithWorkers(c.Workers),
	}
}

// AutomatonOptions converts c into parse options for the input automaton.
func (c Config) AutomatonOptions() []automaton.Option {
	if c.ImmutableEndpoints {
		return []automaton.Option{automaton.WithImmutableEndpoints()}
	}
	return nil
}

// Marshal renders c as YAML, suitable as a starting config file.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

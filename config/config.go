package config

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	yaml "gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	SelfPlay   = "selfplay"
	Throughput = "throughput"
)

// Config drives a batch of self-play games.
type Config struct {
	Name       string              `yaml:"name"`
	Experiment string              `yaml:"experiment"`
	Variant    game.Variant        `yaml:"variant"`
	Games      int                 `yaml:"games"`
	Red        metrics.AgentConfig `yaml:"red"`
	Black      metrics.AgentConfig `yaml:"black"`
	Seed       uint64              `yaml:"seed"`
	MaxTurns   int                 `yaml:"max_turns"`
	OutputDir  string              `yaml:"output_dir"`
	LogLevel   string              `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Name:       "checkers",
		Experiment: SelfPlay,
		Variant:    game.Normal,
		Games:      meta.GAMES,
		Red:        metrics.AgentConfig{ID: 1, Kind: metrics.RandomKind, Goroutines: 1},
		Black:      metrics.AgentConfig{ID: 2, Kind: metrics.ComputerKind, Goroutines: meta.GO_ROUTINES},
		Seed:       1,
		MaxTurns:   meta.MAX_TURNS,
		OutputDir:  "experiments",
		LogLevel:   "info",
	}
}

// Load reads a YAML file over the defaults. An empty path yields the
// defaults. The result is not validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse loads the file named by -config and applies every flag that was set
// explicitly on top of it.
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("checkers", flag.ContinueOnError)

	f := Default()
	var goroutines int
	path := fs.String("config", "", "path to a YAML config file")
	fs.StringVar(&f.Name, "name", f.Name, "experiment name, used for the output folder")
	fs.StringVar(&f.Experiment, "experiment", f.Experiment, "selfplay or throughput")
	fs.TextVar(&f.Variant, "variant", f.Variant, "rules: normal or brazilian")
	fs.IntVar(&f.Games, "games", f.Games, "number of games to play")
	fs.StringVar(&f.Red.Kind, "red", f.Red.Kind, "red agent: computer or random")
	fs.StringVar(&f.Black.Kind, "black", f.Black.Kind, "black agent: computer or random")
	fs.IntVar(&goroutines, "goroutines", 0, "search goroutines for both agents")
	fs.Uint64Var(&f.Seed, "seed", f.Seed, "seed for random agents")
	fs.IntVar(&f.MaxTurns, "max-turns", f.MaxTurns, "turn cap per game")
	fs.StringVar(&f.OutputDir, "out", f.OutputDir, "directory for result files")
	fs.StringVar(&f.LogLevel, "log-level", f.LogLevel, "zerolog level")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg, err := Load(*path)
	if err != nil {
		return Config{}, err
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			cfg.Name = f.Name
		case "experiment":
			cfg.Experiment = f.Experiment
		case "variant":
			cfg.Variant = f.Variant
		case "games":
			cfg.Games = f.Games
		case "red":
			cfg.Red.Kind = f.Red.Kind
		case "black":
			cfg.Black.Kind = f.Black.Kind
		case "goroutines":
			cfg.Red.Goroutines = goroutines
			cfg.Black.Goroutines = goroutines
		case "seed":
			cfg.Seed = f.Seed
		case "max-turns":
			cfg.MaxTurns = f.MaxTurns
		case "out":
			cfg.OutputDir = f.OutputDir
		case "log-level":
			cfg.LogLevel = f.LogLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, errors.New("name is empty"))
	}
	if c.Experiment != SelfPlay && c.Experiment != Throughput {
		errs = append(errs, fmt.Errorf("experiment %q is not %s or %s", c.Experiment, SelfPlay, Throughput))
	}
	if c.Games <= 0 {
		errs = append(errs, fmt.Errorf("games must be positive, got %d", c.Games))
	}
	if c.MaxTurns <= 0 {
		errs = append(errs, fmt.Errorf("max_turns must be positive, got %d", c.MaxTurns))
	}
	for _, a := range []struct {
		side  string
		agent metrics.AgentConfig
	}{{"red", c.Red}, {"black", c.Black}} {
		if a.agent.Kind != metrics.ComputerKind && a.agent.Kind != metrics.RandomKind {
			errs = append(errs, fmt.Errorf("%s agent kind %q is not computer or random", a.side, a.agent.Kind))
		}
		if a.agent.Goroutines <= 0 {
			errs = append(errs, fmt.Errorf("%s agent goroutines must be positive, got %d", a.side, a.agent.Goroutines))
		}
	}
	if c.Red.ID == c.Black.ID {
		errs = append(errs, fmt.Errorf("agent ids must differ, both are %d", c.Red.ID))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Level returns the configured zerolog level, info if it cannot be parsed.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

package main

import (
	"checkers/config"
	"checkers/experiments"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	var result experiments.Result
	switch cfg.Experiment {
	case config.Throughput:
		result, err = experiments.RunThroughput(cfg)
	default:
		result, err = experiments.RunSelfPlay(cfg)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", cfg.Experiment)
	}
	log.Info().Msgf("finished %d games, results in %s", len(result.Games), result.Dir)
}

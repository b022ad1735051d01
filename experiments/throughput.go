package experiments

import (
	"checkers/config"
	"checkers/experiments/metrics"
)

var throughputGoroutines = []int{1, 2, 4, 8, 16}

// RunThroughput pits a random red agent against computers with a growing
// number of search goroutines, to relate fan-out to search time.
func RunThroughput(cfg config.Config) (Result, error) {
	red := metrics.AgentConfig{ID: 0, Kind: metrics.RandomKind, Goroutines: 1}
	configs := []metrics.AgentConfig{red}
	matchUps := []MatchUp{}
	for i, g := range throughputGoroutines {
		black := metrics.AgentConfig{ID: i + 1, Kind: metrics.ComputerKind, Goroutines: g}
		configs = append(configs, black)
		matchUps = append(matchUps, MatchUp{Red: red, Black: black})
	}

	return runExperiment(cfg, cfg.Name+"_throughput", configs, matchUps)
}

package experiments

import (
	"checkers/config"
	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
	"checkers/searcher/agent"
	"fmt"

	"github.com/rs/zerolog/log"
)

// MatchUp pairs the agent playing red with the agent playing black.
type MatchUp struct {
	Red   metrics.AgentConfig
	Black metrics.AgentConfig
}

// Result is what an experiment leaves behind.
type Result struct {
	Dir     string
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
	Wins    map[game.Color]int // NoColor counts unfinished games
	Configs []metrics.AgentConfig
}

// RunSelfPlay plays cfg.Games games between the configured red and black
// agents and stores the records under cfg.OutputDir.
func RunSelfPlay(cfg config.Config) (Result, error) {
	matchUps := []MatchUp{{Red: cfg.Red, Black: cfg.Black}}
	return runExperiment(cfg, cfg.Name, []metrics.AgentConfig{cfg.Red, cfg.Black}, matchUps)
}

func runExperiment(cfg config.Config, name string, configs []metrics.AgentConfig, matchUps []MatchUp) (Result, error) {
	// Run a number of games for each matchup
	count := 0
	result := Result{
		Wins:    map[game.Color]int{},
		Configs: configs,
	}

	log.Info().Msgf("starting %s experiment with %s rules...", name, cfg.Variant)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between red=%+v and black=%+v...", mi+1, len(matchUps), matchUp.Red, matchUp.Black)

		for i := 0; i < cfg.Games; i++ {
			seed := cfg.Seed + 2*uint64(count)
			winner, gameMetric, moveMetrics := runGame(cfg.Variant, cfg.MaxTurns, matchUp, seed)
			count++
			result.Wins[winner]++
			result.Games = append(result.Games, metrics.GameRecord{
				ID:         count,
				Red:        matchUp.Red.ID,
				Black:      matchUp.Black.ID,
				Seed:       seed,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				result.Moves = append(result.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s (%s, %d turns)",
				mi+1, len(matchUps), i+1, winner, gameMetric.Reason, gameMetric.TotalMoves)
		}
	}

	log.Info().Msgf("completed %s experiment: red %d, black %d, unfinished %d",
		name, result.Wins[game.Red], result.Wins[game.Black], result.Wins[game.NoColor])

	dir, err := store(cfg.OutputDir, name, result)
	if err != nil {
		return Result{}, err
	}
	result.Dir = dir
	return result, nil
}

func store(outputDir, name string, result Result) (string, error) {
	writer, err := metrics.NewWriter(outputDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(result.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(result.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(variant game.Variant, maxTurns int, matchUp MatchUp, seed uint64) (game.Color, metrics.GameMetric, []metrics.MoveMetric) {
	red := createAgent(matchUp.Red, game.Red, seed)
	black := createAgent(matchUp.Black, game.Black, seed+1)
	e := engine.NewLocalEngine(variant, red, black, maxTurns)

	return e.Run()
}

func createAgent(config metrics.AgentConfig, color game.Color, seed uint64) agent.Agent {
	if config.Kind == metrics.RandomKind {
		return agent.NewRandomAgent(seed)
	}

	options := []searcher.Option{
		searcher.WithColor(color),
		searcher.WithMetrics(),
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	return agent.NewComputerAgent(searcher.NewComputer(options...))
}

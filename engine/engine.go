package engine

import (
	"checkers/experiments/metrics"
	"checkers/game"
)

type Engine interface {
	// Run starts a game till there's a winner or a max number of turns is reached
	Run() (winner game.Color, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
)

type Agent interface {
	// FindTurn returns the steps of one complete turn for the side to move and
	// performance metrics (if collected). An empty turn means the agent cannot
	// move.
	FindTurn(session *game.Session) ([]game.CaptureMove, metrics.SearchMetric)
}

package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
)

type computerAgent struct {
	computer *searcher.Computer
}

// NewComputerAgent returns an agent that plays the computer's best candidate.
func NewComputerAgent(computer *searcher.Computer) Agent {
	return computerAgent{computer: computer}
}

func (a computerAgent) FindTurn(session *game.Session) ([]game.CaptureMove, metrics.SearchMetric) {
	if session.CurrentPlayer != a.computer.Color() {
		return nil, metrics.SearchMetric{}
	}
	best, metric, ok := a.computer.FindMove(session.Board, session.Variant)
	if !ok {
		return nil, metric
	}
	return best.Steps, metric
}

package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"time"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that samples uniformly among legal steps,
// one step at a time, until its turn ends. The same seed replays the same game.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindTurn(session *game.Session) ([]game.CaptureMove, metrics.SearchMetric) {
	start := time.Now()
	scratch := session.Copy()
	player := scratch.CurrentPlayer

	var turn []game.CaptureMove
	candidates := 0
	for scratch.Winner == game.NoColor && scratch.CurrentPlayer == player {
		steps := scratch.LegalSteps()
		if len(steps) == 0 {
			break
		}
		candidates += len(steps)
		step := steps[a.rng.Intn(len(steps))]
		if scratch.Play(step.From, step.To) == game.Rejected {
			break
		}
		turn = append(turn, step)
	}

	return turn, metrics.SearchMetric{
		Goroutines: 1,
		Duration:   time.Since(start),
		Candidates: candidates,
	}
}

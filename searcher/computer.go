package searcher

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"sync"

	"github.com/rs/zerolog/log"
)

type Option func(c *Computer)

// Computer is a one-turn look-ahead opponent. It enumerates every complete
// turn available to its color and keeps the best scoring one. A Computer holds
// no per-search state and may be shared between games.
type Computer struct {
	color      game.Color
	goroutines int
	evaluate   game.Evaluate
	collect    bool
}

func WithColor(color game.Color) Option {
	return func(c *Computer) {
		if color != game.NoColor {
			c.color = color
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(c *Computer) {
		if goroutines > 0 {
			c.goroutines = goroutines
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(c *Computer) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(c *Computer) {
		c.collect = true
	}
}

func NewComputer(options ...Option) *Computer {
	c := &Computer{ // Default values
		color:      game.Black,
		goroutines: 1,
		evaluate:   game.EvaluateMaterial,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *Computer) Color() game.Color {
	return c.color
}

// Candidates lists every legal turn for the computer's color, piece by piece
// in board order. When captures are forced only the pieces obliged to capture
// contribute, each with its maximal capture sequences; otherwise every piece
// contributes each of its simple moves.
func (c *Computer) Candidates(board game.Board, variant game.Variant) []Candidate {
	return c.candidates(board, variant, metrics.NewDummyCollector())
}

// FindMove returns the highest scoring candidate, the earliest one on ties.
// ok is false when the computer has no candidate at all.
func (c *Computer) FindMove(board game.Board, variant game.Variant) (best Candidate, metric metrics.SearchMetric, ok bool) {
	collector := metrics.NewDummyCollector()
	if c.collect {
		collector = metrics.NewCollector()
	}
	collector.Start(c.goroutines)

	candidates := c.candidates(board, variant, collector)
	for i, candidate := range candidates {
		if i == 0 || candidate.Score > best.Score {
			best = candidate
		}
	}
	ok = len(candidates) > 0
	metric = collector.Complete(best.Score)

	if ok {
		log.Debug().Msgf("%s picked %v -> %v (%d steps, %d captures, score %d) from %d candidates",
			c.color, best.From(), best.To(), len(best.Steps), best.Captures, best.Score, len(candidates))
	}
	return best, metric, ok
}

func (c *Computer) candidates(board game.Board, variant game.Variant, collector metrics.Collector) []Candidate {
	pieces := game.PiecesThatMustCapture(c.color, board, variant)
	if len(pieces) == 0 {
		pieces = board.Pieces(c.color)
	}
	perPiece := make([][]Candidate, len(pieces))

	task := make(chan int, len(pieces))
	for i := range pieces {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < min(c.goroutines, len(pieces)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range task {
				perPiece[idx] = c.pieceCandidates(pieces[idx], board, variant, collector)
				collector.AddPiece()
			}
		}()
	}
	wg.Wait()

	var all []Candidate
	for _, candidates := range perPiece {
		all = append(all, candidates...)
	}
	collector.AddCandidates(len(all))
	return all
}

func (c *Computer) pieceCandidates(from game.Position, board game.Board, variant game.Variant, collector metrics.Collector) []Candidate {
	var candidates []Candidate

	sequences := CaptureSequences(from, board, variant)
	collector.AddSequences(len(sequences))
	for _, sequence := range sequences {
		result := play(sequence, board, variant)
		captures := countCaptures(sequence)
		candidates = append(candidates, Candidate{
			Steps:    sequence,
			Captures: captures,
			Score:    c.evaluate(result, variant, c.color) + captures*CaptureBonus,
			Result:   result,
		})
	}
	if len(sequences) > 0 {
		return candidates
	}

	for _, to := range game.AvailableMoves(from, board, variant) {
		result := game.ApplyMove(from, to, board, variant)
		candidates = append(candidates, Candidate{
			Steps:  []game.CaptureMove{{From: from, To: to}},
			Score:  c.evaluate(result, variant, c.color),
			Result: result,
		})
	}
	return candidates
}

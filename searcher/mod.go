package searcher

import "checkers/game"

// CaptureBonus is added to a candidate's score for every piece it captures.
const CaptureBonus = 10

// Candidate is one complete turn for a single piece: either a maximal capture
// sequence or a single non-capturing step.
type Candidate struct {
	Steps    []game.CaptureMove
	Captures int
	Score    int
	Result   game.Board
}

func (c Candidate) From() game.Position {
	return c.Steps[0].From
}

func (c Candidate) To() game.Position {
	return c.Steps[len(c.Steps)-1].To
}

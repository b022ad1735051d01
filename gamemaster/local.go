package gamemaster

import (
	"checkers/game"
	"checkers/meta"
	"checkers/searcher"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Update is published after every applied step.
type Update struct {
	Step   int
	Player game.Color
	Move   game.CaptureMove
	Board  game.Board
	Hash   game.BoardHash
}

type match struct {
	id       string
	mode     Mode
	status   Status
	session  *game.Session
	steps    int
	updateCh chan Update
	closed   bool
}

func newMatch(id string, mode Mode, variant game.Variant) *match {
	return &match{
		id:       id,
		mode:     mode,
		status:   Waiting,
		session:  game.NewSession(variant),
		updateCh: make(chan Update, meta.UPDATE_BUFFER),
	}
}

func (g *match) snapshot() Snapshot {
	s := Snapshot{
		ID:            g.id,
		Mode:          g.mode,
		Variant:       g.session.Variant,
		Status:        g.status,
		Board:         g.session.Board,
		CurrentPlayer: g.session.CurrentPlayer,
		Winner:        g.session.Winner,
		Steps:         g.steps,
	}
	if sel, ok := g.session.Selected(); ok {
		s.Selected = &sel
	}
	if g.session.MustJumpFrom != nil {
		from := *g.session.MustJumpFrom
		s.MustJumpFrom = &from
	}
	return s
}

func (g *match) move(to game.Position, computer *searcher.Computer) (game.Outcome, error) {
	if g.status == Completed {
		return game.Rejected, ErrGameOver
	}
	from, ok := g.session.Selected()
	if !ok {
		return game.Rejected, fmt.Errorf("%w: no piece selected", ErrIllegalMove)
	}

	outcome, err := g.step(from, to)
	if err != nil {
		return outcome, err
	}
	if outcome == game.TurnEnded && g.mode == ComputerMode && g.session.CurrentPlayer == computer.Color() {
		g.computerTurn(computer)
	}
	g.checkStalemate()
	return outcome, nil
}

// step applies one selected move and publishes it.
func (g *match) step(from, to game.Position) (game.Outcome, error) {
	player := g.session.CurrentPlayer
	captures := captured(from, to, g.session)

	outcome := g.session.Move(to)
	if outcome == game.Rejected {
		return outcome, fmt.Errorf("%w: %v -> %v", ErrIllegalMove, from, to)
	}

	g.status = InProgress
	g.steps++
	g.publish(Update{
		Step:   g.steps,
		Player: player,
		Move:   game.CaptureMove{From: from, To: to, Captures: captures},
		Board:  g.session.Board,
		Hash:   g.session.Board.Hash(),
	})
	if outcome == game.Won {
		g.complete()
	}
	return outcome, nil
}

// computerTurn plays the computer's best candidate. A computer without any
// candidate loses.
func (g *match) computerTurn(computer *searcher.Computer) {
	best, _, ok := computer.FindMove(g.session.Board, g.session.Variant)
	if !ok {
		log.Info().Msgf("game %s: computer has no moves", g.id)
		g.session.Concede()
		g.complete()
		return
	}
	for _, s := range best.Steps {
		if sel, ok := g.session.Selected(); ok && sel != s.From {
			g.session.Deselect()
		}
		if _, ok := g.session.Selected(); !ok && !g.session.Select(s.From) {
			panic(fmt.Sprintf("game %s: computer selected an unplayable piece %v", g.id, s.From))
		}
		outcome, err := g.step(s.From, s.To)
		if err != nil {
			panic(fmt.Sprintf("game %s: computer played an illegal step: %v", g.id, err))
		}
		if outcome == game.Won {
			return
		}
	}
}

// checkStalemate ends the game when the side to move has pieces but no move.
func (g *match) checkStalemate() {
	if g.status == Completed || g.session.MultipleJumpInProgress || !g.session.Stalemated() {
		return
	}
	log.Info().Msgf("game %s: %s cannot move", g.id, g.session.CurrentPlayer)
	g.session.Concede()
	g.complete()
}

func (g *match) complete() {
	g.status = Completed
	log.Info().Msgf("game %s completed after %d steps: %s wins", g.id, g.steps, g.session.Winner)
	g.closeUpdates()
}

func (g *match) restart() {
	g.closeUpdates()
	g.session.Reset()
	g.status = Waiting
	g.steps = 0
	g.updateCh = make(chan Update, meta.UPDATE_BUFFER)
	g.closed = false
}

func (g *match) publish(u Update) {
	if g.closed {
		return
	}
	select {
	case g.updateCh <- u:
	default:
		log.Warn().Msgf("game %s: update feed full, dropping step %d", g.id, u.Step)
	}
}

func (g *match) closeUpdates() {
	if !g.closed {
		close(g.updateCh)
		g.closed = true
	}
}

// captured lists the pieces a step from from to to would remove.
func captured(from, to game.Position, s *game.Session) []game.Position {
	for _, c := range game.AvailableCaptures(from, s.Board, s.Variant) {
		if c.To == to {
			return c.Captures
		}
	}
	return nil
}

package gamemaster

import (
	"checkers/game"
	"checkers/searcher"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrUnknownGame = errors.New("unknown game")
	ErrGameOver    = errors.New("game is over")
	ErrIllegalMove = errors.New("illegal move")
	ErrNotYourTurn = errors.New("not your turn")
	ErrInvalidMode = errors.New("invalid game mode")
)

// Mode decides who plays Black.
type Mode string

const (
	ComputerMode  Mode = "computer"  // Black is played by the computer
	TwoPlayerMode Mode = "twoPlayer" // both sides are human
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ComputerMode, TwoPlayerMode:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

type Status string

const (
	Waiting    Status = "waiting"
	InProgress Status = "in_progress"
	Completed  Status = "completed"
)

// Snapshot is a copy of a game's visible state.
type Snapshot struct {
	ID            string
	Mode          Mode
	Variant       game.Variant
	Status        Status
	Board         game.Board
	CurrentPlayer game.Color
	Winner        game.Color
	Selected      *game.Position
	MustJumpFrom  *game.Position
	Steps         int
}

// Master keeps every running game and is safe for concurrent use. Each game is
// addressed by a random ID.
type Master struct {
	mu       sync.Mutex
	games    map[string]*match
	computer *searcher.Computer
}

// NewMaster creates an empty registry. The options configure the computer
// that plays Black in computer mode; its color is always Black.
func NewMaster(options ...searcher.Option) *Master {
	options = append(options, searcher.WithColor(game.Black))
	return &Master{
		games:    make(map[string]*match),
		computer: searcher.NewComputer(options...),
	}
}

// Create starts a new game and returns its ID and update feed.
func (m *Master) Create(mode Mode, variant game.Variant) (string, <-chan Update, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return "", nil, err
	}

	id := uuid.NewString()
	g := newMatch(id, mode, variant)

	m.mu.Lock()
	m.games[id] = g
	m.mu.Unlock()

	log.Info().Msgf("created %s game %s with %s rules", mode, id, variant)
	return id, g.updateCh, nil
}

func (m *Master) Snapshot(id string) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, err := m.get(id)
	if err != nil {
		return Snapshot{}, err
	}
	return g.snapshot(), nil
}

// Select picks up a piece for the side to move.
func (m *Master) Select(id string, pos game.Position) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, err := m.get(id)
	if err != nil {
		return err
	}
	if g.status == Completed {
		return ErrGameOver
	}
	if !g.session.Select(pos) {
		return fmt.Errorf("%w: cannot select %v", ErrIllegalMove, pos)
	}
	return nil
}

// Move sends the selected piece to to. In computer mode the computer's reply
// is played before Move returns.
func (m *Master) Move(id string, to game.Position) (game.Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, err := m.get(id)
	if err != nil {
		return game.Rejected, err
	}
	return g.move(to, m.computer)
}

// Play moves player's piece from from to to in one call.
func (m *Master) Play(id string, player game.Color, from, to game.Position) (game.Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, err := m.get(id)
	if err != nil {
		return game.Rejected, err
	}
	if g.status == Completed {
		return game.Rejected, ErrGameOver
	}
	if player != g.session.CurrentPlayer {
		return game.Rejected, fmt.Errorf("%w: %s to move", ErrNotYourTurn, g.session.CurrentPlayer)
	}
	if sel, ok := g.session.Selected(); !ok || sel != from {
		g.session.Deselect()
		if !g.session.Select(from) {
			return game.Rejected, fmt.Errorf("%w: cannot select %v", ErrIllegalMove, from)
		}
	}
	return g.move(to, m.computer)
}

// Restart puts the game back on the initial board with the same mode and
// variant. The previous update feed is closed and a new one returned.
func (m *Master) Restart(id string) (<-chan Update, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, err := m.get(id)
	if err != nil {
		return nil, err
	}
	g.restart()

	log.Info().Msgf("restarted game %s", id)
	return g.updateCh, nil
}

// Remove drops a game and closes its update feed.
func (m *Master) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, err := m.get(id)
	if err != nil {
		return err
	}
	g.closeUpdates()
	delete(m.games, id)
	return nil
}

func (m *Master) get(id string) (*match, error) {
	g, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGame, id)
	}
	return g, nil
}

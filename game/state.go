package game

import "slices"

type Phase int

const (
	AwaitingSelection Phase = iota
	PieceSelected
	GameOver
)

func (p Phase) String() string {
	switch p {
	case PieceSelected:
		return "piece_selected"
	case GameOver:
		return "game_over"
	default:
		return "awaiting_selection"
	}
}

// Outcome is the result of a Move request.
type Outcome int

const (
	Rejected      Outcome = iota // illegal destination; selection cleared, nothing else changes
	TurnEnded                    // move applied, the other side is now to move
	JumpContinues                // capture applied and the same piece must capture again
	Won                          // move applied and the opponent has no pieces left
)

func (o Outcome) String() string {
	switch o {
	case TurnEnded:
		return "turn_ended"
	case JumpContinues:
		return "jump_continues"
	case Won:
		return "won"
	default:
		return "rejected"
	}
}

// Session is the mutable turn state of a single game. It is owned by one
// caller; concurrent games each need their own Session.
type Session struct {
	Board                  Board
	Variant                Variant
	CurrentPlayer          Color
	Winner                 Color     // NoColor until a side runs out of pieces
	MustJumpFrom           *Position // square of the piece completing a multi-jump
	MultipleJumpInProgress bool
	selected               *Position
}

// NewSession starts a game on the initial board with Red to move.
func NewSession(variant Variant) *Session {
	s := &Session{Variant: variant}
	s.Reset()
	return s
}

// Reset puts the session back to the start of a game, keeping the variant.
func (s *Session) Reset() {
	s.Board = InitialBoard()
	s.CurrentPlayer = Red
	s.Winner = NoColor
	s.MustJumpFrom = nil
	s.MultipleJumpInProgress = false
	s.selected = nil
}

func (s *Session) Copy() *Session {
	c := *s
	c.MustJumpFrom = copyPosition(s.MustJumpFrom)
	c.selected = copyPosition(s.selected)
	return &c
}

func (s *Session) Phase() Phase {
	switch {
	case s.Winner != NoColor:
		return GameOver
	case s.selected != nil:
		return PieceSelected
	default:
		return AwaitingSelection
	}
}

// Selected returns the selected square, if any.
func (s *Session) Selected() (Position, bool) {
	if s.selected == nil {
		return Position{}, false
	}
	return *s.selected, true
}

// Select picks up the current player's piece on pos. It fails when a piece is
// already selected, when another piece must capture, or when a multi-jump has
// to be finished from a different square.
func (s *Session) Select(pos Position) bool {
	if s.Phase() != AwaitingSelection || !pos.InBounds() {
		return false
	}
	if s.Board.At(pos).Color != s.CurrentPlayer {
		return false
	}
	if s.MultipleJumpInProgress && s.MustJumpFrom != nil && *s.MustJumpFrom != pos {
		return false
	}
	forced := PiecesThatMustCapture(s.CurrentPlayer, s.Board, s.Variant)
	if len(forced) > 0 && !slices.Contains(forced, pos) {
		return false
	}
	s.selected = copyPosition(&pos)
	return true
}

// Deselect drops the current selection without moving.
func (s *Session) Deselect() {
	s.selected = nil
}

// Move sends the selected piece to to.
func (s *Session) Move(to Position) Outcome {
	if s.Phase() != PieceSelected {
		return Rejected
	}
	from := *s.selected
	s.selected = nil

	if !to.InBounds() || !slices.Contains(s.destinations(from), to) {
		return Rejected
	}

	capture := IsCapture(from, to, s.Board, s.Variant)
	s.Board = ApplyMove(from, to, s.Board, s.Variant)

	if s.checkWinner() {
		s.MustJumpFrom = nil
		s.MultipleJumpInProgress = false
		return Won
	}

	if capture && len(AvailableCaptures(to, s.Board, s.Variant)) > 0 {
		s.MustJumpFrom = copyPosition(&to)
		s.MultipleJumpInProgress = true
		s.selected = copyPosition(&to)
		return JumpContinues
	}

	s.MustJumpFrom = nil
	s.MultipleJumpInProgress = false
	s.CurrentPlayer = s.CurrentPlayer.Opponent()
	return TurnEnded
}

// Play selects from, unless it is already selected, and moves it to to.
func (s *Session) Play(from, to Position) Outcome {
	if sel, ok := s.Selected(); !ok || sel != from {
		s.selected = nil
		if !s.Select(from) {
			return Rejected
		}
	}
	return s.Move(to)
}

// LegalSteps lists every step the current player may make right now.
func (s *Session) LegalSteps() []CaptureMove {
	if s.Winner != NoColor {
		return nil
	}
	var origins []Position
	switch {
	case s.MultipleJumpInProgress && s.MustJumpFrom != nil:
		origins = []Position{*s.MustJumpFrom}
	default:
		origins = PiecesThatMustCapture(s.CurrentPlayer, s.Board, s.Variant)
		if len(origins) == 0 {
			origins = s.Board.Pieces(s.CurrentPlayer)
		}
	}

	var steps []CaptureMove
	for _, from := range origins {
		for _, to := range s.destinations(from) {
			step := CaptureMove{From: from, To: to}
			for _, c := range AvailableCaptures(from, s.Board, s.Variant) {
				if c.To == to {
					step.Captures = c.Captures
					break
				}
			}
			steps = append(steps, step)
		}
	}
	return steps
}

// Stalemated reports that the side to move still has pieces but cannot move.
// The session never ends a game for this reason by itself; drivers decide.
func (s *Session) Stalemated() bool {
	if s.Winner != NoColor || s.Board.Count(s.CurrentPlayer) == 0 {
		return false
	}
	return !HasLegalMove(s.CurrentPlayer, s.Board, s.Variant)
}

// Concede ends the game in favour of the opponent of the side to move.
func (s *Session) Concede() {
	if s.Winner != NoColor {
		return
	}
	s.Winner = s.CurrentPlayer.Opponent()
	s.selected = nil
	s.MustJumpFrom = nil
	s.MultipleJumpInProgress = false
}

func (s *Session) destinations(from Position) []Position {
	if s.MultipleJumpInProgress {
		return captureLandings(from, s.Board, s.Variant)
	}
	return LegalDestinations(from, s.Board, s.Variant)
}

// checkWinner records the surviving side once the other has no pieces left.
func (s *Session) checkWinner() bool {
	switch {
	case s.Board.Count(Red) == 0:
		s.Winner = Black
	case s.Board.Count(Black) == 0:
		s.Winner = Red
	}
	return s.Winner != NoColor
}

func copyPosition(p *Position) *Position {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

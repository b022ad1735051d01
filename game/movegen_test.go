package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

func boardWith(pieces map[Position]Piece) Board {
	var b Board
	for p, piece := range pieces {
		b.set(p, piece)
	}
	return b
}

var (
	redMan    = Piece{Color: Red}
	redKing   = Piece{Color: Red, King: true}
	blackMan  = Piece{Color: Black}
	blackKing = Piece{Color: Black, King: true}
)

func TestEmptySquare(t *testing.T) {
	b := InitialBoard()
	for _, v := range []Variant{Normal, Brazilian} {
		require.Empty(t, AvailableCaptures(pos(4, 1), b, v), "variant %s", v)
		require.Empty(t, AvailableMoves(pos(4, 1), b, v), "variant %s", v)
		require.Empty(t, AvailableMoves(pos(0, 0), b, v), "variant %s", v)
	}
}

func TestAvailableMoves(t *testing.T) {
	tests := []struct {
		name    string
		board   Board
		from    Position
		variant Variant
		want    []Position
	}{
		{
			name:    "red man on the initial board steps toward row 0",
			board:   InitialBoard(),
			from:    pos(5, 2),
			variant: Normal,
			want:    []Position{pos(4, 1), pos(4, 3)},
		},
		{
			name:    "edge man has a single step",
			board:   InitialBoard(),
			from:    pos(5, 0),
			variant: Normal,
			want:    []Position{pos(4, 1)},
		},
		{
			name:    "black man steps toward row 7",
			board:   InitialBoard(),
			from:    pos(2, 1),
			variant: Normal,
			want:    []Position{pos(3, 0), pos(3, 2)},
		},
		{
			name:    "blocked man has no moves",
			board:   InitialBoard(),
			from:    pos(6, 1),
			variant: Normal,
			want:    nil,
		},
		{
			name:    "brazilian man never steps backward",
			board:   boardWith(map[Position]Piece{pos(3, 2): redMan}),
			from:    pos(3, 2),
			variant: Brazilian,
			want:    []Position{pos(2, 1), pos(2, 3)},
		},
		{
			name:    "normal king steps one square in every direction",
			board:   boardWith(map[Position]Piece{pos(3, 2): redKing}),
			from:    pos(3, 2),
			variant: Normal,
			want:    []Position{pos(2, 1), pos(2, 3), pos(4, 1), pos(4, 3)},
		},
		{
			name:    "normal king in the corner",
			board:   boardWith(map[Position]Piece{pos(7, 0): redKing}),
			from:    pos(7, 0),
			variant: Normal,
			want:    []Position{pos(6, 1)},
		},
		{
			name:    "flying king slides the whole diagonal",
			board:   boardWith(map[Position]Piece{pos(7, 0): redKing}),
			from:    pos(7, 0),
			variant: Brazilian,
			want:    []Position{pos(6, 1), pos(5, 2), pos(4, 3), pos(3, 4), pos(2, 5), pos(1, 6), pos(0, 7)},
		},
		{
			name:    "flying king stops before the first piece",
			board:   boardWith(map[Position]Piece{pos(7, 0): redKing, pos(3, 4): blackMan}),
			from:    pos(7, 0),
			variant: Brazilian,
			want:    []Position{pos(6, 1), pos(5, 2), pos(4, 3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AvailableMoves(tt.from, tt.board, tt.variant)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("AvailableMoves(%v) mismatch (-want +got):\n%s", tt.from, diff)
			}
		})
	}
}

func TestAvailableCaptures(t *testing.T) {
	tests := []struct {
		name    string
		board   Board
		from    Position
		variant Variant
		want    []CaptureMove
	}{
		{
			name:    "no adjacent enemy on the initial board",
			board:   InitialBoard(),
			from:    pos(5, 0),
			variant: Normal,
			want:    nil,
		},
		{
			name:    "normal man captures forward",
			board:   boardWith(map[Position]Piece{pos(5, 2): redMan, pos(4, 3): blackMan}),
			from:    pos(5, 2),
			variant: Normal,
			want:    []CaptureMove{{From: pos(5, 2), To: pos(3, 4), Captures: []Position{pos(4, 3)}}},
		},
		{
			name:    "normal man cannot capture backward",
			board:   boardWith(map[Position]Piece{pos(3, 2): redMan, pos(4, 3): blackMan}),
			from:    pos(3, 2),
			variant: Normal,
			want:    nil,
		},
		{
			name:    "brazilian man captures backward",
			board:   boardWith(map[Position]Piece{pos(3, 2): redMan, pos(4, 3): blackMan}),
			from:    pos(3, 2),
			variant: Brazilian,
			want:    []CaptureMove{{From: pos(3, 2), To: pos(5, 4), Captures: []Position{pos(4, 3)}}},
		},
		{
			name:    "no capture over a friendly piece",
			board:   boardWith(map[Position]Piece{pos(5, 2): redMan, pos(4, 3): redMan}),
			from:    pos(5, 2),
			variant: Normal,
			want:    nil,
		},
		{
			name:    "no capture onto an occupied landing",
			board:   boardWith(map[Position]Piece{pos(5, 2): redMan, pos(4, 3): blackMan, pos(3, 4): blackMan}),
			from:    pos(5, 2),
			variant: Normal,
			want:    nil,
		},
		{
			name:    "no capture past the edge",
			board:   boardWith(map[Position]Piece{pos(1, 2): redMan, pos(0, 1): blackMan}),
			from:    pos(1, 2),
			variant: Normal,
			want:    nil,
		},
		{
			name: "normal king captures in all four directions",
			board: boardWith(map[Position]Piece{
				pos(3, 2): redKing,
				pos(2, 1): blackMan, pos(2, 3): blackMan,
				pos(4, 1): blackMan, pos(4, 3): blackMan,
			}),
			from:    pos(3, 2),
			variant: Normal,
			want: []CaptureMove{
				{From: pos(3, 2), To: pos(1, 0), Captures: []Position{pos(2, 1)}},
				{From: pos(3, 2), To: pos(1, 4), Captures: []Position{pos(2, 3)}},
				{From: pos(3, 2), To: pos(5, 0), Captures: []Position{pos(4, 1)}},
				{From: pos(3, 2), To: pos(5, 4), Captures: []Position{pos(4, 3)}},
			},
		},
		{
			name:    "normal king does not capture from a distance",
			board:   boardWith(map[Position]Piece{pos(7, 0): redKing, pos(4, 3): blackMan}),
			from:    pos(7, 0),
			variant: Normal,
			want:    nil,
		},
		{
			name:    "flying king captures from a distance and lands just past the victim",
			board:   boardWith(map[Position]Piece{pos(7, 0): blackKing, pos(4, 3): redMan}),
			from:    pos(7, 0),
			variant: Brazilian,
			want:    []CaptureMove{{From: pos(7, 0), To: pos(3, 4), Captures: []Position{pos(4, 3)}}},
		},
		{
			name:    "flying king stops at a friendly piece",
			board:   boardWith(map[Position]Piece{pos(7, 0): blackKing, pos(5, 2): blackMan, pos(3, 4): redMan}),
			from:    pos(7, 0),
			variant: Brazilian,
			want:    nil,
		},
		{
			name:    "flying king cannot jump two pieces in a row",
			board:   boardWith(map[Position]Piece{pos(7, 0): blackKing, pos(5, 2): redMan, pos(4, 3): redMan}),
			from:    pos(7, 0),
			variant: Brazilian,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AvailableCaptures(tt.from, tt.board, tt.variant)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("AvailableCaptures(%v) mismatch (-want +got):\n%s", tt.from, diff)
			}
		})
	}
}

func TestFlyingKingOffDiagonalExample(t *testing.T) {
	// The squares here are light ones; the generator does not depend on colour parity.
	var b Board
	b[4][4] = blackKing
	b[2][2] = redMan

	captures := AvailableCaptures(pos(4, 4), b, Brazilian)
	require.Contains(t, captures, CaptureMove{From: pos(4, 4), To: pos(1, 1), Captures: []Position{pos(2, 2)}})
	for _, c := range captures {
		require.Len(t, c.Captures, 1, "a flying king removes one piece per capture")
	}
}

func TestManDirection(t *testing.T) {
	// Every generated step of a man must head forward, in both variants.
	b := boardWith(map[Position]Piece{
		pos(4, 3): redMan, pos(3, 4): blackMan, pos(5, 2): blackMan,
	})
	for _, v := range []Variant{Normal, Brazilian} {
		for _, to := range AvailableMoves(pos(4, 3), b, v) {
			require.Less(t, to.Row, 4, "red man stepped backward in %s", v)
		}
	}
	for _, c := range AvailableCaptures(pos(4, 3), b, Normal) {
		require.Less(t, c.To.Row, 4, "red man captured backward in normal")
	}

	backward := AvailableCaptures(pos(4, 3), b, Brazilian)
	require.Contains(t, backward, CaptureMove{From: pos(4, 3), To: pos(6, 1), Captures: []Position{pos(5, 2)}})
}

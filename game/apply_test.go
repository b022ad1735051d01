package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyMove(t *testing.T) {
	t.Run("simple move on the initial board", func(t *testing.T) {
		b := InitialBoard()
		next := ApplyMove(pos(5, 0), pos(4, 1), b, Normal)

		require.True(t, next.At(pos(5, 0)).Empty(), "origin should be cleared")
		require.Equal(t, redMan, next.At(pos(4, 1)), "red man should land uncrowned")
		require.Equal(t, 12, next.Count(Red))
		require.Equal(t, 12, next.Count(Black))
		require.Equal(t, redMan, b.At(pos(5, 0)), "input board must not change")
	})

	t.Run("jump removes the midpoint piece", func(t *testing.T) {
		b := boardWith(map[Position]Piece{pos(5, 2): redMan, pos(4, 3): blackMan, pos(0, 7): blackMan})
		next := ApplyMove(pos(5, 2), pos(3, 4), b, Normal)

		require.True(t, next.At(pos(4, 3)).Empty())
		require.Equal(t, redMan, next.At(pos(3, 4)))
		require.Equal(t, 1, next.Count(Black))
	})

	t.Run("brazilian man backward jump", func(t *testing.T) {
		b := boardWith(map[Position]Piece{pos(3, 2): redMan, pos(4, 3): blackMan})
		next := ApplyMove(pos(3, 2), pos(5, 4), b, Brazilian)

		require.Equal(t, 0, next.Count(Black))
		require.Equal(t, redMan, next.At(pos(5, 4)))
	})

	t.Run("flying king capture removes the single piece on its path", func(t *testing.T) {
		b := boardWith(map[Position]Piece{pos(7, 0): blackKing, pos(4, 3): redMan, pos(1, 6): redMan})
		next := ApplyMove(pos(7, 0), pos(3, 4), b, Brazilian)

		require.True(t, next.At(pos(4, 3)).Empty(), "jumped piece should be removed")
		require.Equal(t, redMan, next.At(pos(1, 6)), "pieces beyond the landing stay")
		require.Equal(t, blackKing, next.At(pos(3, 4)))
		require.Equal(t, 1, next.Count(Red))
	})

	t.Run("flying king slide removes nothing", func(t *testing.T) {
		b := boardWith(map[Position]Piece{pos(7, 0): blackKing, pos(2, 5): redMan})
		next := ApplyMove(pos(7, 0), pos(4, 3), b, Brazilian)

		require.Equal(t, 1, next.Count(Red))
		require.Equal(t, blackKing, next.At(pos(4, 3)))
	})

	t.Run("normal king two-square move is a jump", func(t *testing.T) {
		b := boardWith(map[Position]Piece{pos(3, 2): redKing, pos(4, 3): blackMan})
		next := ApplyMove(pos(3, 2), pos(5, 4), b, Normal)

		require.Equal(t, 0, next.Count(Black))
		require.Equal(t, redKing, next.At(pos(5, 4)), "king stays a king moving backward")
	})
}

func TestPromotion(t *testing.T) {
	t.Run("red is crowned on row 0", func(t *testing.T) {
		b := boardWith(map[Position]Piece{pos(1, 2): redMan})
		next := ApplyMove(pos(1, 2), pos(0, 1), b, Normal)
		require.Equal(t, redKing, next.At(pos(0, 1)))
	})

	t.Run("black is crowned on row 7", func(t *testing.T) {
		b := boardWith(map[Position]Piece{pos(6, 1): blackMan})
		next := ApplyMove(pos(6, 1), pos(7, 2), b, Brazilian)
		require.Equal(t, blackKing, next.At(pos(7, 2)))
	})

	t.Run("red is not crowned on its own back rank", func(t *testing.T) {
		b := boardWith(map[Position]Piece{pos(3, 2): redMan, pos(4, 3): blackMan, pos(6, 5): blackMan})
		next := ApplyMove(pos(3, 2), pos(5, 4), b, Brazilian)
		next = ApplyMove(pos(5, 4), pos(7, 6), next, Brazilian)
		require.Equal(t, redMan, next.At(pos(7, 6)))
	})

	t.Run("capture onto the far rank crowns", func(t *testing.T) {
		b := boardWith(map[Position]Piece{pos(2, 1): redMan, pos(1, 2): blackMan})
		next := ApplyMove(pos(2, 1), pos(0, 3), b, Normal)
		require.Equal(t, redKing, next.At(pos(0, 3)))
		require.Equal(t, 0, next.Count(Black))
	})

	t.Run("promotion is permanent", func(t *testing.T) {
		b := boardWith(map[Position]Piece{pos(1, 2): redMan})
		b = ApplyMove(pos(1, 2), pos(0, 1), b, Normal)
		b = ApplyMove(pos(0, 1), pos(1, 2), b, Normal)
		b = ApplyMove(pos(1, 2), pos(2, 3), b, Normal)
		require.Equal(t, redKing, b.At(pos(2, 3)))
	})
}

func TestApplyMoveDoesNotRepeatItsEffect(t *testing.T) {
	b := boardWith(map[Position]Piece{pos(5, 2): redMan, pos(4, 3): blackMan, pos(0, 7): blackMan})
	once := ApplyMove(pos(5, 2), pos(3, 4), b, Normal)

	require.Empty(t, AvailableCaptures(pos(5, 2), once, Normal), "origin is empty after the move")
	require.False(t, IsCapture(pos(5, 2), pos(3, 4), once, Normal))
	require.Equal(t, 1, once.Count(Black))
}

func TestCaptureChainRoundTrip(t *testing.T) {
	b := boardWith(map[Position]Piece{
		pos(6, 1): redMan,
		pos(5, 2): blackMan, pos(3, 4): blackMan,
		pos(0, 7): blackMan,
	})

	cur := pos(6, 1)
	blacks := b.Count(Black)
	for _, to := range []Position{pos(4, 3), pos(2, 5)} {
		require.True(t, IsCapture(cur, to, b, Normal), "%v -> %v should capture", cur, to)
		b = ApplyMove(cur, to, b, Normal)
		blacks--
		require.Equal(t, blacks, b.Count(Black), "each hop removes exactly one piece")
		cur = to
	}

	require.Equal(t, []Position{pos(2, 5)}, b.Pieces(Red), "mover is the only red piece and sits on the last landing")
}

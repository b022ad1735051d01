package game

// ApplyMove returns a copy of board with the piece on from moved to to.
// A jumped piece is removed and a man reaching the far rank is crowned.
// The move is assumed legal; ApplyMove does not validate it.
func ApplyMove(from, to Position, board Board, variant Variant) Board {
	next := board
	mover := board.At(from)

	next.set(to, Piece{Color: mover.Color, King: mover.King})
	next.set(from, Square{})

	d := direction{row: sign(to.Row - from.Row), col: sign(to.Col - from.Col)}
	switch {
	case mover.King && variant.flyingKings():
		// the single occupied square on the path, if any, is the captured piece
		for cur := from.add(d, 1); cur != to; cur = cur.add(d, 1) {
			if !next.At(cur).Empty() {
				next.set(cur, Square{})
				break
			}
		}
	case abs(to.Row-from.Row) == 2:
		next.set(from.add(d, 1), Square{})
	}

	if !mover.King && to.Row == mover.Color.backRank() {
		next.set(to, Piece{Color: mover.Color, King: true})
	}
	return next
}

// IsCapture reports whether moving the piece on from to to is one of its captures.
func IsCapture(from, to Position, board Board, variant Variant) bool {
	for _, c := range AvailableCaptures(from, board, variant) {
		if c.To == to {
			return true
		}
	}
	return false
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

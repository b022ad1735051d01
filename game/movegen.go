package game

type direction struct {
	row int
	col int
}

var diagonals = [4]direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// forwardDiagonals returns the two diagonals a man of color advances along
func forwardDiagonals(color Color) []direction {
	f := color.forward()
	return []direction{{f, -1}, {f, 1}}
}

// AvailableCaptures returns every single-capture jump the piece on pos can make.
// An empty square yields no captures.
func AvailableCaptures(pos Position, board Board, variant Variant) []CaptureMove {
	piece := board.At(pos)
	if piece.Empty() {
		return nil
	}

	if piece.King && variant.flyingKings() {
		return flyingCaptures(pos, piece, board)
	}

	dirs := diagonals[:]
	if !piece.King && !variant.menCaptureBackward() {
		dirs = forwardDiagonals(piece.Color)
	}

	var captures []CaptureMove
	for _, d := range dirs {
		jumped := pos.add(d, 1)
		landing := pos.add(d, 2)
		if !landing.InBounds() {
			continue
		}
		victim := board.At(jumped)
		if victim.Empty() || victim.Color == piece.Color || !board.At(landing).Empty() {
			continue
		}
		captures = append(captures, CaptureMove{
			From:     pos,
			To:       landing,
			Captures: []Position{jumped},
		})
	}
	return captures
}

// flyingCaptures scans each ray for the first occupied square. Only an enemy
// there, followed directly by an empty square, gives a capture.
func flyingCaptures(pos Position, piece Piece, board Board) []CaptureMove {
	var captures []CaptureMove
	for _, d := range diagonals {
		for cur := pos.add(d, 1); cur.InBounds(); cur = cur.add(d, 1) {
			victim := board.At(cur)
			if victim.Empty() {
				continue
			}
			if victim.Color == piece.Color {
				break
			}
			landing := cur.add(d, 1)
			if landing.InBounds() && board.At(landing).Empty() {
				captures = append(captures, CaptureMove{
					From:     pos,
					To:       landing,
					Captures: []Position{cur},
				})
			}
			break
		}
	}
	return captures
}

// AvailableMoves returns the non-capturing destinations of the piece on pos.
// Men step one square forward; normal kings step one square any way; Brazilian
// kings slide until blocked.
func AvailableMoves(pos Position, board Board, variant Variant) []Position {
	piece := board.At(pos)
	if piece.Empty() {
		return nil
	}

	dirs := diagonals[:]
	if !piece.King {
		dirs = forwardDiagonals(piece.Color)
	}
	reach := 1
	if piece.King && variant.flyingKings() {
		reach = Size
	}

	var moves []Position
	for _, d := range dirs {
		for step := 1; step <= reach; step++ {
			to := pos.add(d, step)
			if !to.InBounds() || !board.At(to).Empty() {
				break
			}
			moves = append(moves, to)
		}
	}
	return moves
}

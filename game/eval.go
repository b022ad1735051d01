package game

// Evaluate scores a board from the perspective of color: the sum of its
// piece values minus the sum of the opponent's.
type Evaluate func(board Board, variant Variant, color Color) int

// PieceValue is 1 for a man. Kings are worth 3 in the normal variant and 5 in
// the Brazilian variant, where they fly.
func PieceValue(p Piece, variant Variant) int {
	switch {
	case p.Empty():
		return 0
	case !p.King:
		return 1
	case variant == Brazilian:
		return 5
	default:
		return 3
	}
}

// EvaluateMaterial is the default Evaluate.
func EvaluateMaterial(board Board, variant Variant, color Color) int {
	score := 0
	for row := range board {
		for col := range board[row] {
			sq := board[row][col]
			switch sq.Color {
			case color:
				score += PieceValue(sq, variant)
			case color.Opponent():
				score -= PieceValue(sq, variant)
			}
		}
	}
	return score
}

package game

import "slices"

// PiecesThatMustCapture returns the pieces of color that are obliged to capture.
// An empty result means no capture is available and any simple move is legal.
//
// In the normal variant every piece with a capture is included. In the
// Brazilian variant only the pieces whose best single CaptureMove removes the
// most pieces are included; chained sequences are not compared.
func PiecesThatMustCapture(color Color, board Board, variant Variant) []Position {
	var forced []Position
	best := 0
	for _, pos := range board.Pieces(color) {
		captures := AvailableCaptures(pos, board, variant)
		if len(captures) == 0 {
			continue
		}
		if variant != Brazilian {
			forced = append(forced, pos)
			continue
		}

		most := 0
		for _, c := range captures {
			most = max(most, len(c.Captures))
		}
		switch {
		case most > best:
			best = most
			forced = append(forced[:0], pos)
		case most == best:
			forced = append(forced, pos)
		}
	}
	return forced
}

// LegalDestinations returns where the piece on pos may go this turn, taking
// forced captures for its side into account.
func LegalDestinations(pos Position, board Board, variant Variant) []Position {
	piece := board.At(pos)
	if piece.Empty() {
		return nil
	}
	forced := PiecesThatMustCapture(piece.Color, board, variant)
	if len(forced) == 0 {
		return AvailableMoves(pos, board, variant)
	}
	if !slices.Contains(forced, pos) {
		return nil
	}
	return captureLandings(pos, board, variant)
}

// HasLegalMove reports whether color can make any capture or simple move.
func HasLegalMove(color Color, board Board, variant Variant) bool {
	for _, pos := range board.Pieces(color) {
		if len(AvailableCaptures(pos, board, variant)) > 0 || len(AvailableMoves(pos, board, variant)) > 0 {
			return true
		}
	}
	return false
}

func captureLandings(pos Position, board Board, variant Variant) []Position {
	captures := AvailableCaptures(pos, board, variant)
	landings := make([]Position, 0, len(captures))
	for _, c := range captures {
		landings = append(landings, c.To)
	}
	return landings
}

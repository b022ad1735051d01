package searcher

import "checkers/game"

// CaptureSequences returns every maximal chain of captures the piece on pos can
// make. A chain ends when the landing square offers no further capture.
// Pieces without a capture return nil.
func CaptureSequences(pos game.Position, board game.Board, variant game.Variant) [][]game.CaptureMove {
	return extend(pos, board, variant, nil)
}

// extend is a depth-first walk; sequence accumulates the captures made so far
func extend(pos game.Position, board game.Board, variant game.Variant, sequence []game.CaptureMove) [][]game.CaptureMove {
	captures := game.AvailableCaptures(pos, board, variant)
	if len(captures) == 0 {
		if len(sequence) == 0 {
			return nil
		}
		return [][]game.CaptureMove{sequence}
	}

	var sequences [][]game.CaptureMove
	for _, capture := range captures {
		next := game.ApplyMove(capture.From, capture.To, board, variant)
		// full slice expression forces a copy so sibling branches never share an array
		path := append(sequence[:len(sequence):len(sequence)], capture)
		sequences = append(sequences, extend(capture.To, next, variant, path)...)
	}
	return sequences
}

// countCaptures totals the pieces removed by a sequence
func countCaptures(sequence []game.CaptureMove) int {
	n := 0
	for _, c := range sequence {
		n += len(c.Captures)
	}
	return n
}

// play applies every step of a sequence in order
func play(sequence []game.CaptureMove, board game.Board, variant game.Variant) game.Board {
	for _, step := range sequence {
		board = game.ApplyMove(step.From, step.To, board, variant)
	}
	return board
}

package game

import (
	"fmt"
	"hash/fnv"
	"strings"
)

const Size = 8

// Color identifies a side. NoColor marks an empty square or an undecided winner.
type Color int8

const (
	NoColor Color = iota
	Red
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Opponent returns the other side
func (c Color) Opponent() Color {
	switch c {
	case Red:
		return Black
	case Black:
		return Red
	default:
		return NoColor
	}
}

// forward is the row direction a man of this color moves in
func (c Color) forward() int {
	if c == Red {
		return -1
	}
	return 1
}

// backRank is the row on which a man of this color is crowned
func (c Color) backRank() int {
	if c == Red {
		return 0
	}
	return Size - 1
}

// Piece is an immutable value; the zero Piece is an empty square.
type Piece struct {
	Color Color
	King  bool
}

// Square is a board cell, either a Piece or empty.
type Square = Piece

func (p Piece) Empty() bool {
	return p.Color == NoColor
}

func (p Piece) symbol() byte {
	switch {
	case p.Color == Red && p.King:
		return 'R'
	case p.Color == Red:
		return 'r'
	case p.Color == Black && p.King:
		return 'B'
	case p.Color == Black:
		return 'b'
	default:
		return '.'
	}
}

type Position struct {
	Row int
	Col int
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// IsDark reports whether pieces may stand on p.
func (p Position) IsDark() bool {
	return (p.Row+p.Col)%2 == 1
}

func (p Position) add(d direction, steps int) Position {
	return Position{Row: p.Row + d.row*steps, Col: p.Col + d.col*steps}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// CaptureMove jumps from From to To removing the pieces in Captures.
// Both variants record exactly one captured position per CaptureMove.
type CaptureMove struct {
	From     Position
	To       Position
	Captures []Position
}

// Board is a row-major 8x8 grid. It is a value: assigning or passing a Board copies it.
type Board [Size][Size]Square

type BoardHash uint64

// InitialBoard places Black on the dark squares of rows 0-2 and Red on rows 5-7.
func InitialBoard() Board {
	var b Board
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			pos := Position{Row: row, Col: col}
			if !pos.IsDark() {
				continue
			}
			switch {
			case row < 3:
				b[row][col] = Piece{Color: Black}
			case row > 4:
				b[row][col] = Piece{Color: Red}
			}
		}
	}
	return b
}

func (b Board) At(pos Position) Square {
	return b[pos.Row][pos.Col]
}

func (b *Board) set(pos Position, sq Square) {
	b[pos.Row][pos.Col] = sq
}

// Count returns the number of pieces of color on the board.
func (b Board) Count(color Color) int {
	n := 0
	for row := range b {
		for col := range b[row] {
			if b[row][col].Color == color {
				n++
			}
		}
	}
	return n
}

// Pieces returns the positions of every piece of color in row-major order.
func (b Board) Pieces(color Color) []Position {
	var positions []Position
	for row := range b {
		for col := range b[row] {
			if b[row][col].Color == color {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

func (b Board) Hash() BoardHash {
	hasher := fnv.New64a()
	for row := range b {
		for col := range b[row] {
			sq := b[row][col]
			king := byte(0)
			if sq.King {
				king = 1
			}
			hasher.Write([]byte{byte(sq.Color), king})
		}
	}
	return BoardHash(hasher.Sum64())
}

// String renders the board one row per line, row 0 first.
func (b Board) String() string {
	var sb strings.Builder
	for row := range b {
		for col := range b[row] {
			sb.WriteByte(b[row][col].symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard reads the diagram produced by Board.String. Whitespace inside a
// row is ignored so diagrams may be spaced out for readability.
func ParseBoard(text string) (Board, error) {
	var b Board
	row := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), "")
		if line == "" {
			continue
		}
		if row >= Size {
			return Board{}, fmt.Errorf("parse board: more than %d rows", Size)
		}
		if len(line) != Size {
			return Board{}, fmt.Errorf("parse board: row %d has %d squares, want %d", row, len(line), Size)
		}
		for col := 0; col < Size; col++ {
			var sq Square
			switch line[col] {
			case '.':
			case 'r':
				sq = Piece{Color: Red}
			case 'R':
				sq = Piece{Color: Red, King: true}
			case 'b':
				sq = Piece{Color: Black}
			case 'B':
				sq = Piece{Color: Black, King: true}
			default:
				return Board{}, fmt.Errorf("parse board: unknown square %q at %v", line[col], Position{Row: row, Col: col})
			}
			pos := Position{Row: row, Col: col}
			if !sq.Empty() && !pos.IsDark() {
				return Board{}, fmt.Errorf("parse board: piece on light square %v", pos)
			}
			b.set(pos, sq)
		}
		row++
	}
	if row != Size {
		return Board{}, fmt.Errorf("parse board: got %d rows, want %d", row, Size)
	}
	return b, nil
}

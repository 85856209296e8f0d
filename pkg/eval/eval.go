// Package eval contains the static position evaluation.
package eval

import (
	"fmt"

	"github.com/fianchetto/fianchetto/pkg/board"
)

// Terms is the evaluation split into its additive terms, in centipawns from
// White's point of view: positive favors White.
type Terms struct {
	Material      int
	PST           int
	PawnStructure int
	Space         int
	KingDist      int
}

// Total returns the combined score.
func (t Terms) Total() int {
	return t.Material + t.PST + t.PawnStructure + t.Space + t.KingDist
}

// Scale scales the positional terms by factor/100, leaving material and king
// distance untouched.
func (t Terms) Scale(factor int) Terms {
	return Terms{
		Material:      t.Material,
		PST:           t.PST * factor / 100,
		PawnStructure: t.PawnStructure * factor / 100,
		Space:         t.Space * factor / 100,
		KingDist:      t.KingDist,
	}
}

func (t Terms) String() string {
	return fmt.Sprintf("material: %v, piece-square tables: %v, pawn structure: %v, space: %v, king distance: %v, TOTAL: %v",
		t.Material, t.PST, t.PawnStructure, t.Space, t.KingDist, t.Total())
}

// Value is the absolute material value of a piece in centipawns. The King
// carries a sentinel value larger than all other material combined.
func Value(p board.Piece) int {
	switch p {
	case board.Pawn:
		return 100
	case board.Knight, board.Bishop:
		return 300
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	case board.King:
		return 25000
	default:
		return 0
	}
}

// Evaluate computes the evaluation terms for the position.
func Evaluate(b *board.Board) Terms {
	endgame := isEndgame(b)

	var t Terms
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		c, p, ok := b.At(sq)
		if !ok {
			continue
		}
		if c == board.White {
			t.Material += Value(p)
			t.PST += pieceSquareValue(p, c, sq, endgame)
		} else {
			t.Material -= Value(p)
			t.PST -= pieceSquareValue(p, c, sq, endgame)
		}
	}

	t.PawnStructure = pawnWeaknesses(b)
	t.Space = spaceScore(b)
	return t
}

// isEndgame selects the endgame king table once the queens are off the board.
func isEndgame(b *board.Board) bool {
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		if _, p, ok := b.At(sq); ok && p == board.Queen {
			return false
		}
	}
	return true
}

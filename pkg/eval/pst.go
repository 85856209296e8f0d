package eval

import "github.com/fianchetto/fianchetto/pkg/board"

// Piece-square tables, laid out from Black's back rank down to White's, so a
// White piece indexes [7-rank][file] and a Black piece [rank][file]. Values in
// centipawns.

var kingTable = [8][8]int{
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{20, 20, 0, -25, -25, -25, 20, 20},
	{20, 30, 10, -25, 0, -25, 30, 20},
}

var kingEndgameTable = [8][8]int{
	{-30, -20, -10, 0, 0, -10, -20, -30},
	{-20, -10, 0, 10, 10, 0, -10, -20},
	{-10, 0, 10, 20, 20, 10, 0, -10},
	{0, 10, 20, 30, 30, 20, 10, 0},
	{0, 10, 20, 30, 30, 20, 10, 0},
	{-10, 0, 10, 20, 20, 10, 0, -10},
	{-20, -10, 0, 10, 10, 0, -10, -20},
	{-30, -20, -10, 0, 0, -10, -20, -30},
}

var queenTable = [8][8]int{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{0, 0, 5, 5, 5, 5, 0, -5},
	{-10, 5, 5, 5, 5, 5, 0, -10},
	{-10, 0, 5, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
}

var rookTable = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, 10, 10, 10, 10, 5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{0, 0, 0, 5, 5, 0, 0, 0},
}

var bishopTable = [8][8]int{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 10, 10, 5, 0, -10},
	{-10, 5, 5, 10, 10, 5, 5, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 5, 0, 0, 0, 0, 5, -10},
	{-30, -20, -20, -20, -20, -20, -20, -30},
}

var knightTable = [8][8]int{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 5, 5, 15, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-60, -40, -40, -40, -40, -40, -40, -60},
}

var pawnTable = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{100, 100, 100, 100, 100, 100, 100, 100},
	{40, 40, 50, 60, 60, 50, 40, 40},
	{15, 15, 20, 25, 25, 20, 15, 15},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

// pieceSquareValue returns the positional bonus for a piece on a square, from
// the piece owner's point of view.
func pieceSquareValue(p board.Piece, c board.Color, sq board.Square, endgame bool) int {
	rank := sq.Rank().V()
	if c == board.White {
		rank = 7 - rank
	}
	file := sq.File().V()

	switch p {
	case board.Pawn:
		return pawnTable[rank][file]
	case board.Knight:
		return knightTable[rank][file]
	case board.Bishop:
		return bishopTable[rank][file]
	case board.Rook:
		return rookTable[rank][file]
	case board.Queen:
		return queenTable[rank][file]
	case board.King:
		if endgame {
			return kingEndgameTable[rank][file]
		}
		return kingTable[rank][file]
	default:
		return 0
	}
}

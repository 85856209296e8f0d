// Package fen contains utilities for reading and writing positions in FEN notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/fianchetto/fianchetto/pkg/board"
)

const (
	Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Decode returns a new board from a FEN description.
//
// Example:
//
//	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(fen string) (*board.Board, error) {
	// A FEN record contains six fields. The separator between fields is a
	// space. The fields are:

	parts := strings.Split(strings.TrimSpace(fen), " ")
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid number of sections in FEN: '%v'", fen)
	}

	// (1) Piece placement (from white's perspective). Each rank is described,
	// starting with rank 8 and ending with rank 1; within each rank, the
	// contents of each square are described from file a through file h.

	var pieces []board.Placement

	rank := board.Rank8
	file := board.FileA
	for _, r := range []rune(parts[0]) {
		switch {
		case r == '/':
			// "/" separates ranks.
			if file != board.NumFiles {
				return nil, fmt.Errorf("invalid number of squares in FEN: '%v'", fen)
			}
			if rank == board.Rank1 {
				return nil, fmt.Errorf("invalid number of ranks in FEN: '%v'", fen)
			}
			rank--
			file = board.FileA

		case unicode.IsDigit(r):
			// Blank squares are noted using digits 1 through 8 (the number of
			// consecutive blank squares).

			file += board.File(r - '0')
			if file > board.NumFiles {
				return nil, fmt.Errorf("invalid number of squares in FEN: '%v'", fen)
			}

		case unicode.IsLetter(r):
			// Each piece is identified by a single letter (pawn = "P",
			// knight = "N", bishop = "B", rook = "R", queen = "Q", king = "K").
			// White pieces use upper-case letters, Black lower-case.

			color, piece, ok := parsePiece(r)
			if !ok {
				return nil, fmt.Errorf("invalid piece '%v' in FEN: '%v'", string(r), fen)
			}
			if file >= board.NumFiles {
				return nil, fmt.Errorf("invalid number of squares in FEN: '%v'", fen)
			}
			pieces = append(pieces, board.Placement{Square: board.NewSquare(file, rank), Color: color, Piece: piece})
			file++

		default:
			return nil, fmt.Errorf("invalid character in FEN: '%v'", fen)
		}
	}
	if rank != board.Rank1 || file != board.NumFiles {
		return nil, fmt.Errorf("invalid number of squares in FEN: '%v'", fen)
	}

	// (2) Active color. "w" means white moves next, "b" means black.

	active, ok := parseColor(parts[1])
	if !ok {
		return nil, fmt.Errorf("invalid active color in FEN: '%v'", fen)
	}

	// (3) Castling availability. If neither side can castle, this is "-".
	// Otherwise, one or more of "K", "Q", "k", "q".

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, fmt.Errorf("invalid castling in FEN: '%v'", fen)
	}

	// (4) En passant target square in algebraic notation, or "-". If a pawn
	// has just made a two-square move, this is the position "behind" the pawn.

	var ep board.Square
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant in FEN: '%v'", fen)
		}
		ep = sq
	}

	// (5) Halfmove clock: the number of halfmoves since the last pawn advance
	// or capture, for the fifty-move rule.

	np, err := strconv.Atoi(parts[4])
	if err != nil || np < 0 || np > 255 {
		return nil, fmt.Errorf("invalid halfmove in FEN: '%v'", fen)
	}

	// (6) Fullmove number: starts at 1 and is incremented after Black's move.

	fm, err := strconv.Atoi(parts[5])
	if err != nil || fm < 0 || fm > 65535 {
		return nil, fmt.Errorf("invalid full moves in FEN: '%v'", fen)
	}

	return board.NewBoard(pieces, active, castling, ep, uint8(np), uint16(fm))
}

// Encode encodes the board in FEN notation.
func Encode(b *board.Board) string {
	ep := "-"
	if sq, ok := b.EnPassant(); ok {
		ep = sq.String()
	}
	return fmt.Sprintf("%v %v %v %v", EncodeDraw(b), ep, b.HalfMoveClock(), b.FullMoves())
}

// EncodeDraw encodes the "draw FEN" prefix: piece placement, active color and
// castling rights. It identifies a position for opening book purposes.
func EncodeDraw(b *board.Board) string {
	var sb strings.Builder
	for r := board.NumRanks; r > 0; r-- {
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			color, piece, ok := b.At(board.NewSquare(f, r-1))
			if !ok {
				blanks++
				continue
			}

			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(printPiece(color, piece))
		}

		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r > 1 {
			sb.WriteString("/")
		}
	}

	return fmt.Sprintf("%v %v %v", sb.String(), b.Turn(), b.Castling())
}

func parseCastling(str string) (board.Castling, bool) {
	var ret board.Castling

	if str == "-" {
		return ret, true
	}
	for _, r := range []rune(str) {
		switch r {
		case 'K':
			ret |= board.WhiteShortCastle
		case 'Q':
			ret |= board.WhiteLongCastle
		case 'k':
			ret |= board.BlackShortCastle
		case 'q':
			ret |= board.BlackLongCastle
		default:
			return 0, false
		}
	}
	return ret, true
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}

func parsePiece(r rune) (board.Color, board.Piece, bool) {
	piece, ok := board.ParsePiece(r)
	if !ok {
		return 0, 0, false
	}
	if unicode.IsUpper(r) {
		return board.White, piece, true
	}
	return board.Black, piece, true
}

func printPiece(c board.Color, p board.Piece) rune {
	r := []rune(p.String())[0]
	if c == board.White {
		return unicode.ToUpper(r)
	}
	return r
}

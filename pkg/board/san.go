package board

import (
	"fmt"
	"regexp"
	"strings"
)

// SAN move shapes: pawn moves ("e4"), piece moves with optional file or rank
// disambiguation and optional capture ("Nf3", "Nbd2", "R1a3", "N4xe5"),
// pawn captures ("exd5"), promotions ("e8=Q", "dxe8=Q") and castles, all with
// an optional trailing check or mate marker.
var (
	sanPawnMove    = regexp.MustCompile(`^([a-h][1-8])[+#]?$`)
	sanPawnCapture = regexp.MustCompile(`^([a-h])x([a-h][1-8])[+#]?$`)
	sanPieceMove   = regexp.MustCompile(`^([BKNQR])([a-h])?([1-8])?(x)?([a-h][1-8])[+#]?$`)
	sanPromotion   = regexp.MustCompile(`^([a-h][1-8])=([BNQR])[+#]?$`)
	sanPromoCap    = regexp.MustCompile(`^([a-h])x([a-h][1-8])=([BNQR])[+#]?$`)
	sanCastle      = regexp.MustCompile(`^(O-O(-O)?)[+#]?$`)
)

// ParseSAN parses a move in standard algebraic notation against the legal
// moves of the position. The notation must resolve to exactly one legal move.
func ParseSAN(b *Board, san string) (Move, error) {
	moves := b.LegalMoves()

	switch {
	case sanPawnMove.MatchString(san):
		groups := sanPawnMove.FindStringSubmatch(san)
		to, _ := ParseSquareStr(groups[1])
		return resolveSAN(san, moves, func(m Move) bool {
			return m.Type == Normal && m.Piece == Pawn && m.To == to
		})

	case sanPawnCapture.MatchString(san):
		groups := sanPawnCapture.FindStringSubmatch(san)
		file, _ := ParseFile([]rune(groups[1])[0])
		to, _ := ParseSquareStr(groups[2])
		return resolveSAN(san, moves, func(m Move) bool {
			return (m.Type == Capture || m.Type == EnPassant) && m.Piece == Pawn &&
				m.From.File() == file && m.To == to
		})

	case sanPieceMove.MatchString(san):
		groups := sanPieceMove.FindStringSubmatch(san)
		piece, _ := ParsePiece([]rune(groups[1])[0])
		capture := groups[4] == "x"
		to, _ := ParseSquareStr(groups[5])
		return resolveSAN(san, moves, func(m Move) bool {
			if m.Piece != piece || m.To != to {
				return false
			}
			if capture != (m.Type == Capture) || m.Type == Castle {
				return false
			}
			if groups[2] != "" {
				if file, _ := ParseFile([]rune(groups[2])[0]); m.From.File() != file {
					return false
				}
			}
			if groups[3] != "" {
				if rank, _ := ParseRank([]rune(groups[3])[0]); m.From.Rank() != rank {
					return false
				}
			}
			return true
		})

	case sanPromotion.MatchString(san):
		groups := sanPromotion.FindStringSubmatch(san)
		to, _ := ParseSquareStr(groups[1])
		promo, _ := ParsePiece([]rune(groups[2])[0])
		return resolveSAN(san, moves, func(m Move) bool {
			return m.Type == Promotion && m.To == to && m.Promo == promo
		})

	case sanPromoCap.MatchString(san):
		groups := sanPromoCap.FindStringSubmatch(san)
		file, _ := ParseFile([]rune(groups[1])[0])
		to, _ := ParseSquareStr(groups[2])
		promo, _ := ParsePiece([]rune(groups[3])[0])
		return resolveSAN(san, moves, func(m Move) bool {
			return m.Type == CapturePromotion && m.From.File() == file && m.To == to && m.Promo == promo
		})

	case sanCastle.MatchString(san):
		groups := sanCastle.FindStringSubmatch(san)
		long := groups[1] == "O-O-O"
		return resolveSAN(san, moves, func(m Move) bool {
			return m.Type == Castle && (m.CastleT == WhiteLong || m.CastleT == BlackLong) == long
		})

	default:
		return Move{}, fmt.Errorf("invalid move notation: '%v'", san)
	}
}

func resolveSAN(san string, moves []Move, match func(Move) bool) (Move, error) {
	var found []Move
	for _, m := range moves {
		if match(m) {
			found = append(found, m)
		}
	}
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return Move{}, fmt.Errorf("no legal move matches '%v'", san)
	default:
		return Move{}, fmt.Errorf("ambiguous move '%v': %v", san, PrintMoves(found))
	}
}

// PrintSAN renders the move in standard algebraic notation for the position,
// including disambiguation and a trailing check or mate marker.
func PrintSAN(b *Board, m Move) string {
	var sb strings.Builder

	switch m.Type {
	case Castle:
		sb.WriteString(m.CastleT.String())

	case Promotion, CapturePromotion:
		if m.Type == CapturePromotion {
			sb.WriteString(m.From.File().String())
			sb.WriteString("x")
		}
		sb.WriteString(m.To.String())
		sb.WriteString("=")
		sb.WriteString(strings.ToUpper(m.Promo.String()))

	default:
		if m.Piece == Pawn {
			if m.Type == Capture || m.Type == EnPassant {
				sb.WriteString(m.From.File().String())
				sb.WriteString("x")
			}
		} else {
			sb.WriteString(strings.ToUpper(m.Piece.String()))
			sb.WriteString(disambiguate(b, m))
			if m.Type == Capture {
				sb.WriteString("x")
			}
		}
		sb.WriteString(m.To.String())
	}

	next := *b
	if err := next.Apply(m); err == nil && next.IsChecked(next.Turn()) {
		if len(next.LegalMoves()) == 0 {
			sb.WriteString("#")
		} else {
			sb.WriteString("+")
		}
	}
	return sb.String()
}

// disambiguate returns the from-file or from-rank needed to single out the
// move among legal moves of the same piece kind to the same square.
func disambiguate(b *Board, m Move) string {
	var sameFile, sameRank, others bool
	for _, o := range b.LegalMoves() {
		if o.From == m.From || o.Piece != m.Piece || o.To != m.To {
			continue
		}
		others = true
		if o.From.File() == m.From.File() {
			sameFile = true
		}
		if o.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}

	switch {
	case !others:
		return ""
	case !sameFile:
		return m.From.File().String()
	case !sameRank:
		return m.From.Rank().String()
	default:
		return m.From.String()
	}
}

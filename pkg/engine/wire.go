package engine

import (
	"fmt"

	"github.com/fianchetto/fianchetto/pkg/board"
)

// MoveRecord is the wire form of a move at the host boundary: plain square
// indices and a tagged kind.
type MoveRecord struct {
	From int            `json:"from"`
	To   int            `json:"to"`
	Kind MoveKindRecord `json:"kind"`
}

// MoveKindRecord is the tagged move kind with its embedded payload.
type MoveKindRecord struct {
	Type      string `json:"type"`
	Piece     string `json:"piece,omitempty"`
	Castle    string `json:"castle,omitempty"`
	Promotion string `json:"promotion,omitempty"`
}

const (
	kindMove             = "move"
	kindCapture          = "capture"
	kindEnPassant        = "en_passant"
	kindCastle           = "castle"
	kindPromotion        = "promotion"
	kindPromotionCapture = "promotion_capture"
)

// EncodeMove converts a move into its wire form.
func EncodeMove(m board.Move) MoveRecord {
	rec := MoveRecord{From: int(m.From), To: int(m.To)}

	switch m.Type {
	case board.Capture:
		rec.Kind = MoveKindRecord{Type: kindCapture, Piece: m.Piece.String()}
	case board.EnPassant:
		rec.Kind = MoveKindRecord{Type: kindEnPassant}
	case board.Castle:
		rec.Kind = MoveKindRecord{Type: kindCastle, Castle: castleName(m.CastleT)}
	case board.Promotion:
		rec.Kind = MoveKindRecord{Type: kindPromotion, Promotion: m.Promo.String()}
	case board.CapturePromotion:
		rec.Kind = MoveKindRecord{Type: kindPromotionCapture, Promotion: m.Promo.String()}
	default:
		rec.Kind = MoveKindRecord{Type: kindMove, Piece: m.Piece.String()}
	}
	return rec
}

// DecodeMove resolves a wire move against the legal moves of the position, so
// that ill-formed or illegal records are rejected rather than applied.
func DecodeMove(b *board.Board, rec MoveRecord) (board.Move, error) {
	if rec.From < 0 || rec.From > int(board.H8) || rec.To < 0 || rec.To > int(board.H8) {
		return board.Move{}, fmt.Errorf("%w: %v", board.ErrOutOfBounds, rec)
	}

	from, to := board.Square(rec.From), board.Square(rec.To)
	for _, m := range b.LegalMoves() {
		if m.From != from || m.To != to {
			continue
		}
		if m.Promo != board.NoPiece && m.Promo.String() != rec.Kind.Promotion {
			continue
		}
		return m, nil
	}
	return board.Move{}, fmt.Errorf("illegal move: %v", rec)
}

func castleName(ct board.CastleType) string {
	switch ct {
	case board.WhiteShort:
		return "white_short"
	case board.WhiteLong:
		return "white_long"
	case board.BlackShort:
		return "black_short"
	default:
		return "black_long"
	}
}

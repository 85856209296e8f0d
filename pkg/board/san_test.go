package board_test

import (
	"testing"

	"github.com/fianchetto/fianchetto/pkg/board"
	"github.com/fianchetto/fianchetto/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSAN(t *testing.T) {
	tests := []struct {
		position string
		san      string
		expected board.Move
	}{
		{
			fen.Initial, "e4",
			board.Move{Type: board.Normal, From: board.E2, To: board.E4, Piece: board.Pawn},
		},
		{
			fen.Initial, "Nf3",
			board.Move{Type: board.Normal, From: board.G1, To: board.F3, Piece: board.Knight},
		},
		{
			"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2", "exd5",
			board.Move{Type: board.Capture, From: board.E4, To: board.D5, Piece: board.Pawn, Capture: board.Pawn},
		},
		{
			"rnbqkbnr/pp1ppppp/8/8/2pPP3/5N2/PPP2PPP/RNBQKB1R b KQkq d3 0 3", "cxd3",
			board.Move{Type: board.EnPassant, From: board.C4, To: board.D3, Piece: board.Pawn, Capture: board.Pawn},
		},
		{
			"r1bqkb1r/pPpp2pp/2n2n2/4pp2/8/8/PP1PPPPP/RNBQKBNR w KQkq - 1 5", "bxc8=Q",
			board.Move{Type: board.CapturePromotion, From: board.B7, To: board.C8, Piece: board.Pawn, Capture: board.Bishop, Promo: board.Queen},
		},
		{
			"k7/4P3/8/8/8/8/8/4K3 w - - 0 1", "e8=Q+",
			board.Move{Type: board.Promotion, From: board.E7, To: board.E8, Piece: board.Pawn, Promo: board.Queen},
		},
		{
			"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "O-O",
			board.Move{Type: board.Castle, From: board.E1, To: board.G1, Piece: board.King, CastleT: board.WhiteShort},
		},
		{
			"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "O-O-O",
			board.Move{Type: board.Castle, From: board.E8, To: board.C8, Piece: board.King, CastleT: board.BlackLong},
		},
		{
			// Knights on b1 and f3 both reach d2: file disambiguation.
			"rnbqkb1r/pppppppp/8/8/8/5N2/PPP1PPPP/RNBQKB1R w KQkq - 0 1", "Nbd2",
			board.Move{Type: board.Normal, From: board.B1, To: board.D2, Piece: board.Knight},
		},
		{
			// Rooks on a1 and a5 both reach a3: rank disambiguation.
			"4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "R1a3",
			board.Move{Type: board.Normal, From: board.A1, To: board.A3, Piece: board.Rook},
		},
	}

	for _, tt := range tests {
		b := decode(t, tt.position)
		m, err := board.ParseSAN(b, tt.san)
		require.NoError(t, err, "%v: %v", tt.position, tt.san)
		assert.Equal(t, tt.expected, m, "%v: %v", tt.position, tt.san)
	}
}

func TestParseSANErrors(t *testing.T) {
	tests := []struct {
		position string
		san      string
	}{
		{fen.Initial, "e5"},                        // not reachable
		{fen.Initial, "Ke2"},                       // blocked
		{fen.Initial, "O-O"},                       // not castleable
		{fen.Initial, "Nd2"},                       // own pawn on d2
		{fen.Initial, "xyz"},                       // not a move
		{fen.Initial, "i9"},                        // not a square
		{fen.Initial, "exd5=Q"},                    // malformed promotion
		{"4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "Ra3"}, // ambiguous
	}

	for _, tt := range tests {
		_, err := board.ParseSAN(decode(t, tt.position), tt.san)
		assert.Error(t, err, "%v: %v", tt.position, tt.san)
	}
}

func TestPrintSAN(t *testing.T) {
	tests := []struct {
		position string
		san      string
	}{
		{fen.Initial, "e4"},
		{fen.Initial, "Nf3"},
		{"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2", "exd5"},
		{"rnbqkbnr/pp1ppppp/8/8/2pPP3/5N2/PPP2PPP/RNBQKB1R b KQkq d3 0 3", "cxd3"},
		{"r1bqkb1r/pPpp2pp/2n2n2/4pp2/8/8/PP1PPPPP/RNBQKBNR w KQkq - 1 5", "bxc8=Q"},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "O-O"},
		{"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "O-O-O"},
		{"rnbqkb1r/pppppppp/8/8/8/5N2/PPP1PPPP/RNBQKB1R w KQkq - 0 1", "Nbd2"},
		{"4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "R1a3"},
		{"7k/6pp/8/8/8/8/8/R6K w - - 0 1", "Ra8#"},
		{"4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "Ra8+"},
	}

	for _, tt := range tests {
		b := decode(t, tt.position)
		m, err := board.ParseSAN(b, tt.san)
		require.NoError(t, err, tt.san)
		assert.Equal(t, tt.san, board.PrintSAN(b, m), tt.position)
	}
}

// TestSANRoundTrip prints and re-parses every legal move in assorted positions.
func TestSANRoundTrip(t *testing.T) {
	positions := []string{
		fen.Initial,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbqkbnr/pp1ppppp/8/8/2pPP3/5N2/PPP2PPP/RNBQKB1R b KQkq d3 0 3",
	}

	for _, position := range positions {
		b := decode(t, position)
		for _, m := range b.LegalMoves() {
			san := board.PrintSAN(b, m)
			parsed, err := board.ParseSAN(b, san)
			require.NoError(t, err, "%v: %v (%v)", position, san, m)
			assert.Equal(t, m, parsed, "%v: %v", position, san)
		}
	}
}

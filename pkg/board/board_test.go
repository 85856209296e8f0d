package board_test

import (
	"testing"

	"github.com/fianchetto/fianchetto/pkg/board"
	"github.com/fianchetto/fianchetto/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, position string) *board.Board {
	t.Helper()
	b, err := fen.Decode(position)
	require.NoError(t, err)
	return b
}

func mustParseSAN(t *testing.T, b *board.Board, san string) board.Move {
	t.Helper()
	m, err := board.ParseSAN(b, san)
	require.NoError(t, err)
	return m
}

func TestApplyPawnDoubleStep(t *testing.T) {
	b := decode(t, fen.Initial)

	m := mustParseSAN(t, b, "e4")
	assert.Equal(t, board.E2, m.From)
	assert.Equal(t, board.E4, m.To)
	assert.Equal(t, board.Normal, m.Type)
	assert.Equal(t, board.Pawn, m.Piece)

	require.NoError(t, b.Apply(m))

	ep, ok := b.EnPassant()
	require.True(t, ok)
	assert.Equal(t, board.E3, ep)
	assert.Equal(t, board.Black, b.Turn())
	assert.Equal(t, uint8(0), b.HalfMoveClock())
	assert.Equal(t, uint16(1), b.FullMoves())

	// Any reply clears the target again.
	require.NoError(t, b.Apply(mustParseSAN(t, b, "Nf6")))
	_, ok = b.EnPassant()
	assert.False(t, ok)
	assert.Equal(t, uint16(2), b.FullMoves())
}

func TestApplyCapture(t *testing.T) {
	b := decode(t, "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")

	m := mustParseSAN(t, b, "exd5")
	assert.Equal(t, board.Capture, m.Type)
	assert.Equal(t, board.E4, m.From)
	assert.Equal(t, board.D5, m.To)
	assert.Equal(t, board.Pawn, m.Piece)

	require.NoError(t, b.Apply(m))
	assert.Equal(t, uint8(0), b.HalfMoveClock())

	c, p, ok := b.At(board.D5)
	require.True(t, ok)
	assert.Equal(t, board.White, c)
	assert.Equal(t, board.Pawn, p)
	assert.True(t, b.IsEmpty(board.E4))
}

func TestApplyEnPassant(t *testing.T) {
	b := decode(t, "rnbqkbnr/pp1ppppp/8/8/2pPP3/5N2/PPP2PPP/RNBQKB1R b KQkq d3 0 3")

	m := mustParseSAN(t, b, "cxd3")
	assert.Equal(t, board.EnPassant, m.Type)
	assert.Equal(t, board.C4, m.From)
	assert.Equal(t, board.D3, m.To)

	require.NoError(t, b.Apply(m))

	c, p, ok := b.At(board.D3)
	require.True(t, ok)
	assert.Equal(t, board.Black, c)
	assert.Equal(t, board.Pawn, p)
	assert.True(t, b.IsEmpty(board.D4), "captured pawn removed")
	assert.True(t, b.IsEmpty(board.C4))
}

func TestApplyPromotionCapture(t *testing.T) {
	b := decode(t, "r1bqkb1r/pPpp2pp/2n2n2/4pp2/8/8/PP1PPPPP/RNBQKBNR w KQkq - 1 5")

	m := mustParseSAN(t, b, "bxc8=Q")
	assert.Equal(t, board.CapturePromotion, m.Type)
	assert.Equal(t, board.B7, m.From)
	assert.Equal(t, board.C8, m.To)
	assert.Equal(t, board.Queen, m.Promo)

	white := b.MatingMaterial(board.White)
	black := b.MatingMaterial(board.Black)
	require.NoError(t, b.Apply(m))

	c, p, ok := b.At(board.C8)
	require.True(t, ok)
	assert.Equal(t, board.White, c)
	assert.Equal(t, board.Queen, p)

	// Pawn (3) became a queen (3); the bishop (2) came off.
	assert.Equal(t, white, b.MatingMaterial(board.White))
	assert.Equal(t, black-2, b.MatingMaterial(board.Black))
}

func TestApplyCastle(t *testing.T) {
	tests := []struct {
		position string
		san      string
		kingTo   board.Square
		rookTo   board.Square
		cleared  board.Castling
	}{
		{"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1", "O-O", board.G1, board.F1, board.WhiteShortCastle | board.WhiteLongCastle},
		{"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1", "O-O-O", board.C1, board.D1, board.WhiteShortCastle | board.WhiteLongCastle},
		{"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1", "O-O", board.G8, board.F8, board.BlackShortCastle | board.BlackLongCastle},
		{"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1", "O-O-O", board.C8, board.D8, board.BlackShortCastle | board.BlackLongCastle},
	}

	for _, tt := range tests {
		t.Run(tt.san+"-"+tt.position[:10], func(t *testing.T) {
			b := decode(t, tt.position)
			turn := b.Turn()

			m := mustParseSAN(t, b, tt.san)
			require.NoError(t, b.Apply(m))

			c, p, ok := b.At(tt.kingTo)
			require.True(t, ok)
			assert.Equal(t, turn, c)
			assert.Equal(t, board.King, p)
			assert.Equal(t, tt.kingTo, b.King(turn))

			c, p, ok = b.At(tt.rookTo)
			require.True(t, ok)
			assert.Equal(t, turn, c)
			assert.Equal(t, board.Rook, p)

			assert.False(t, b.Castling().IsAllowed(tt.cleared&board.CastlingRights(turn)))
			assert.True(t, b.Castling().IsAllowed(board.CastlingRights(turn.Opponent())))
		})
	}
}

func TestCastlingRightsMonotonic(t *testing.T) {
	b := decode(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	// Rook leaves home: the short right goes and stays gone, even after the
	// rook returns.
	for _, san := range []string{"Rh3", "Rh6", "Rh1", "Rh8"} {
		require.NoError(t, b.Apply(mustParseSAN(t, b, san)))
	}
	assert.False(t, b.Castling().IsAllowed(board.WhiteShortCastle))
	assert.True(t, b.Castling().IsAllowed(board.WhiteLongCastle))
	assert.False(t, b.Castling().IsAllowed(board.BlackShortCastle), "black rook moved as well")
	assert.True(t, b.Castling().IsAllowed(board.BlackLongCastle))

	// King move clears both remaining white rights.
	require.NoError(t, b.Apply(mustParseSAN(t, b, "Kd1")))
	assert.False(t, b.Castling().IsAllowed(board.WhiteLongCastle))
}

func TestCastlingRightClearedByRookCapture(t *testing.T) {
	b := decode(t, "r3k2r/pppppppp/8/8/8/6n1/PPPPPPP1/R3K2R b KQkq - 0 1")

	m := mustParseSAN(t, b, "Nxh1")
	require.NoError(t, b.Apply(m))
	assert.False(t, b.Castling().IsAllowed(board.WhiteShortCastle))
	assert.True(t, b.Castling().IsAllowed(board.WhiteLongCastle))
}

func TestHalfMoveClock(t *testing.T) {
	b := decode(t, fen.Initial)

	require.NoError(t, b.Apply(mustParseSAN(t, b, "Nf3")))
	assert.Equal(t, uint8(1), b.HalfMoveClock())
	require.NoError(t, b.Apply(mustParseSAN(t, b, "Nf6")))
	assert.Equal(t, uint8(2), b.HalfMoveClock())
	require.NoError(t, b.Apply(mustParseSAN(t, b, "e4")))
	assert.Equal(t, uint8(0), b.HalfMoveClock(), "pawn move resets")
}

func TestKingTracking(t *testing.T) {
	b := decode(t, fen.Initial)
	assert.Equal(t, board.E1, b.King(board.White))
	assert.Equal(t, board.E8, b.King(board.Black))

	for _, san := range []string{"e4", "e5", "Ke2", "Ke7"} {
		require.NoError(t, b.Apply(mustParseSAN(t, b, san)))
	}
	assert.Equal(t, board.E2, b.King(board.White))
	assert.Equal(t, board.E7, b.King(board.Black))
}

func TestInsufficientMaterial(t *testing.T) {
	tests := []struct {
		position string
		expected bool
	}{
		{"8/8/4k3/8/8/3K4/8/8 w - - 0 1", true},    // K vs K
		{"8/8/4k3/8/8/3KN3/8/8 w - - 0 1", true},   // KN vs K
		{"8/8/4k3/8/8/3KB3/8/8 w - - 0 1", true},   // KB vs K
		{"8/8/2b1k3/8/8/3KN3/8/8 w - - 0 1", true}, // KN vs KB
		{"8/8/4k3/8/8/3KP3/8/8 w - - 0 1", false},  // a pawn can still win
		{"8/8/4k3/8/8/3KR3/8/8 w - - 0 1", false},  // rook mates
		{"8/8/4k3/8/8/2NKN3/8/8 w - - 0 1", true},  // even two knights stay below the limit
		{"8/8/4k3/8/8/2BKB3/8/8 w - - 0 1", false}, // the bishop pair does not
		{fen.Initial, false},
	}

	for _, tt := range tests {
		b := decode(t, tt.position)
		assert.Equal(t, tt.expected, b.HasInsufficientMaterial(), tt.position)
	}
}

func TestApplyErrors(t *testing.T) {
	b := decode(t, fen.Initial)

	err := b.Apply(board.Move{Type: board.Normal, From: board.E4, To: board.E5, Piece: board.Pawn})
	assert.ErrorIs(t, err, board.ErrPieceNotFound)

	err = b.Apply(board.Move{Type: board.Capture, From: board.G1, To: board.F3, Piece: board.Knight})
	assert.ErrorIs(t, err, board.ErrPieceNotFound)
}

func TestNewBoardValidation(t *testing.T) {
	_, err := fen.Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQQBNR w KQkq - 0 1")
	assert.Error(t, err, "missing white king")

	_, err = fen.Decode("8/8/8/8/8/8/8/8 w - - 0 1")
	assert.Error(t, err, "no kings")
}

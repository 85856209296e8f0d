package board

// PseudoLegalMoves returns every move the given side's pieces could make
// ignoring king safety. Castling is not included; it is emitted by
// LegalMoves directly, since its legality depends on the attacked-square
// analysis anyway.
func (b *Board) PseudoLegalMoves(c Color) []Move {
	var ret []Move
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		pc, piece, ok := b.At(sq)
		if !ok || pc != c {
			continue
		}

		switch piece {
		case Pawn:
			ret = b.pawnMoves(ret, sq, c)
		case Knight:
			ret = b.stepMoves(ret, sq, c, Knight, KnightOffsets)
		case Bishop:
			ret = b.slideMoves(ret, sq, c, Bishop, BishopDirections)
		case Rook:
			ret = b.slideMoves(ret, sq, c, Rook, RookDirections)
		case Queen:
			ret = b.slideMoves(ret, sq, c, Queen, QueenDirections)
		case King:
			ret = b.kingMoves(ret, sq, c)
		}
	}
	return ret
}

// LegalMoves returns all legal moves for the side to move.
func (b *Board) LegalMoves() []Move {
	return b.LegalMovesAnalyzed(b.Analyze(b.turn))
}

// LegalMovesAnalyzed returns all legal moves for the side to move given
// precomputed restrictions. Useful when the caller needs the restriction data
// as well, e.g. to distinguish mate from stalemate.
func (b *Board) LegalMovesAnalyzed(rs *Restrictions) []Move {
	c := b.turn

	var ret []Move
	for _, m := range b.PseudoLegalMoves(c) {
		if b.allowed(m, rs) {
			ret = append(ret, m)
		}
	}
	if rs.ChecksAmount == 0 {
		ret = b.castleMoves(ret, c, rs)
	}
	return ret
}

// allowed intersects a pseudo-legal move with the restriction data: double
// check permits only king moves, single check requires blocking or capturing
// the checker, pinned pieces must stay on their ray, and the king may not
// step onto an attacked square.
func (b *Board) allowed(m Move, rs *Restrictions) bool {
	if m.Piece == King {
		return !rs.Attacked.Has(m.To)
	}

	switch rs.ChecksAmount {
	case 2:
		return false
	case 1:
		if m.Type == EnPassant {
			// Capturing the checking pawn en passant resolves the check even
			// though the destination lies off the check ray.
			victim, _ := m.EnPassantVictim()
			if !rs.Checks.Has(victim) && !rs.Checks.Has(m.To) {
				return false
			}
		} else if !rs.Checks.Has(m.To) {
			return false
		}
	}

	if dir, ok := rs.Pins[m.From]; ok {
		if dir == EnPassantBlock {
			return m.Type != EnPassant
		}
		return dir.Allows(m.From, m.To)
	}
	return true
}

// castleMoves emits the legal castle moves for the side: the right must be
// intact, the lane empty, the rook at home, and the king path unattacked. The
// caller has already established that the king is not in check.
func (b *Board) castleMoves(moves []Move, c Color, rs *Restrictions) []Move {
	for ct := ZeroCastleType; ct < NumCastleTypes; ct++ {
		if ct.Color() != c || !b.castling.IsAllowed(ct.Right()) {
			continue
		}

		open := true
		for _, sq := range ct.Between() {
			if !b.IsEmpty(sq) {
				open = false
				break
			}
		}
		if !open {
			continue
		}

		if rc, piece, ok := b.At(ct.RookFrom()); !ok || rc != c || piece != Rook {
			continue
		}

		safe := true
		for _, sq := range ct.KingPath() {
			if rs.Attacked.Has(sq) {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}

		moves = append(moves, Move{Type: Castle, From: ct.KingFrom(), To: ct.KingTo(), Piece: King, CastleT: ct})
	}
	return moves
}

func (b *Board) pawnMoves(moves []Move, sq Square, c Color) []Move {
	forward := c.PawnDirection().Offset()

	// Forward pushes: one step, or two from the starting rank if both squares
	// are empty. Reaching the last rank turns the push into four promotions.
	steps := int8(1)
	if sq.Rank() == c.DoubleStepRank() {
		steps = 2
	}
	for i := int8(1); i <= steps; i++ {
		to, ok := sq.Add(forward.Mul(i))
		if !ok || !b.IsEmpty(to) {
			break
		}
		if to.Rank() == c.PromotionRank() {
			for _, p := range Promotions {
				moves = append(moves, Move{Type: Promotion, From: sq, To: to, Piece: Pawn, Promo: p})
			}
			break
		}
		moves = append(moves, Move{Type: Normal, From: sq, To: to, Piece: Pawn})
	}

	// Diagonal captures, promoting on the last rank.
	for _, df := range []int8{-1, 1} {
		to, ok := sq.Add(Offset{File: df, Rank: forward.Rank})
		if !ok {
			continue
		}
		pc, piece, occupied := b.At(to)
		if !occupied || pc == c {
			continue
		}
		if to.Rank() == c.PromotionRank() {
			for _, p := range Promotions {
				moves = append(moves, Move{Type: CapturePromotion, From: sq, To: to, Piece: Pawn, Capture: piece, Promo: p})
			}
		} else {
			moves = append(moves, Move{Type: Capture, From: sq, To: to, Piece: Pawn, Capture: piece})
		}
	}

	// En passant: the capture lands on the skipped square.
	if ep, ok := b.EnPassant(); ok {
		for _, df := range []int8{-1, 1} {
			if to, ok := sq.Add(Offset{File: df, Rank: forward.Rank}); ok && to == ep {
				moves = append(moves, Move{Type: EnPassant, From: sq, To: ep, Piece: Pawn, Capture: Pawn})
			}
		}
	}
	return moves
}

func (b *Board) stepMoves(moves []Move, sq Square, c Color, piece Piece, offsets []Offset) []Move {
	for _, o := range offsets {
		to, ok := sq.Add(o)
		if !ok {
			continue
		}
		pc, target, occupied := b.At(to)
		switch {
		case !occupied:
			moves = append(moves, Move{Type: Normal, From: sq, To: to, Piece: piece})
		case pc != c:
			moves = append(moves, Move{Type: Capture, From: sq, To: to, Piece: piece, Capture: target})
		}
	}
	return moves
}

func (b *Board) slideMoves(moves []Move, sq Square, c Color, piece Piece, dirs []Direction) []Move {
	for _, d := range dirs {
		step := d.Offset()
		for i := int8(1); i <= 7; i++ {
			to, ok := sq.Add(step.Mul(i))
			if !ok {
				break
			}
			pc, target, occupied := b.At(to)
			if !occupied {
				moves = append(moves, Move{Type: Normal, From: sq, To: to, Piece: piece})
				continue
			}
			if pc != c {
				moves = append(moves, Move{Type: Capture, From: sq, To: to, Piece: piece, Capture: target})
			}
			break
		}
	}
	return moves
}

func (b *Board) kingMoves(moves []Move, sq Square, c Color) []Move {
	for _, d := range QueenDirections {
		to, ok := sq.Add(d.Offset())
		if !ok {
			continue
		}
		pc, target, occupied := b.At(to)
		switch {
		case !occupied:
			moves = append(moves, Move{Type: Normal, From: sq, To: to, Piece: King})
		case pc != c:
			moves = append(moves, Move{Type: Capture, From: sq, To: to, Piece: King, Capture: target})
		}
	}
	return moves
}

package board

// SquareSet is a set of squares, one bit per square.
type SquareSet uint64

func (s SquareSet) Has(sq Square) bool {
	return s&(1<<sq) != 0
}

func (s *SquareSet) Add(sq Square) {
	*s |= 1 << sq
}

// PinDir classifies the ray a pinned piece is stuck on. EnPassantBlock is the
// special case where capturing en passant would remove two pawns from a rank
// and expose the king to a slider: every move but the en passant capture
// remains legal.
type PinDir uint8

const (
	PinVertical PinDir = iota
	PinHorizontal
	PinLeftDiag  // a8-h1 orientation
	PinRightDiag // a1-h8 orientation
	EnPassantBlock
)

// pinDir maps a queen direction to the pin classification of its ray.
func pinDir(d Direction) PinDir {
	switch d {
	case North, South:
		return PinVertical
	case East, West:
		return PinHorizontal
	case NorthWest, SouthEast:
		return PinLeftDiag
	default:
		return PinRightDiag
	}
}

// Allows returns true iff a piece pinned in this direction may make the given
// displacement: the move must stay on the pin ray.
func (d PinDir) Allows(from, to Square) bool {
	o := Sub(to, from)
	switch d {
	case PinVertical:
		return o.File == 0
	case PinHorizontal:
		return o.Rank == 0
	case PinLeftDiag:
		return o.File == -o.Rank
	case PinRightDiag:
		return o.File == o.Rank
	default: // EnPassantBlock constrains only the en passant capture itself.
		return true
	}
}

// Restrictions captures everything needed to turn pseudo-legal moves into
// legal ones for the side to move: which squares around the king are attacked,
// which squares block or capture a checker, and which pieces are pinned.
type Restrictions struct {
	// Attacked holds the attacked squares among the king's neighbors and the
	// castle lanes on its home rank.
	Attacked SquareSet
	// Checks is the union of the check rays, including the checkers
	// themselves. Empty unless ChecksAmount > 0.
	Checks SquareSet
	// ChecksAmount is the number of pieces giving check.
	ChecksAmount int
	// Pins maps each pinned piece to its pin direction.
	Pins map[Square]PinDir
}

// aroundKing are the offsets probed for the attacked-square set: the eight
// king neighbors plus the rook-lane squares examined for castling.
var aroundKing = []Offset{
	{0, 1}, {0, -1}, {-1, 0}, {1, 0}, {-1, 1}, {-1, -1}, {1, 1}, {1, -1},
	{2, 0}, {-2, 0}, {-3, 0},
}

// Analyze computes the move restrictions for the given side.
func (b *Board) Analyze(c Color) *Restrictions {
	rs := &Restrictions{
		Pins: make(map[Square]PinDir),
	}
	king := b.kings[c]

	for _, o := range aroundKing {
		sq, ok := king.Add(o)
		if !ok {
			continue
		}
		if b.IsAttacked(sq, c) {
			rs.Attacked.Add(sq)
		}
	}

	b.findChecks(c, king, rs)
	b.findPins(c, king, rs)
	b.findEnPassantPin(c, king, rs)
	return rs
}

// IsAttacked returns true iff the square is attacked by the opponent of the
// given color. The color's own king is treated as transparent, so squares
// behind a checked king along the checking ray still count as attacked.
func (b *Board) IsAttacked(sq Square, c Color) bool {
	for _, d := range QueenDirections {
		step := d.Offset()
		for i := int8(1); i <= 7; i++ {
			target, ok := sq.Add(step.Mul(i))
			if !ok {
				break
			}
			pc, piece, occupied := b.At(target)
			if !occupied {
				continue
			}
			if pc == c && piece == King {
				continue // transparent
			}
			if pc != c && attacks(piece, pc, step.Mul(i)) {
				return true
			}
			break
		}
	}

	for _, o := range KnightOffsets {
		target, ok := sq.Add(o)
		if !ok {
			continue
		}
		if pc, piece, occupied := b.At(target); occupied && pc != c && piece == Knight {
			return true
		}
	}
	return false
}

// IsChecked returns true iff the color's king is attacked.
func (b *Board) IsChecked(c Color) bool {
	return b.IsAttacked(b.kings[c], c)
}

// findChecks walks the queen rays and knight offsets outward from the king,
// counting checkers and collecting the squares on which a check can be blocked
// or the checker captured.
func (b *Board) findChecks(c Color, king Square, rs *Restrictions) {
	for _, d := range QueenDirections {
		step := d.Offset()
		var ray SquareSet
		for i := int8(1); i <= 7; i++ {
			target, ok := king.Add(step.Mul(i))
			if !ok {
				break
			}
			ray.Add(target)

			pc, piece, occupied := b.At(target)
			if !occupied {
				continue
			}
			if pc != c && attacks(piece, pc, step.Mul(i)) {
				rs.Checks |= ray
				rs.ChecksAmount++
			}
			break
		}
	}

	for _, o := range KnightOffsets {
		target, ok := king.Add(o)
		if !ok {
			continue
		}
		if pc, piece, occupied := b.At(target); occupied && pc != c && piece == Knight {
			rs.Checks.Add(target)
			rs.ChecksAmount++
		}
	}
}

// findPins walks each queen ray from the king: the first own piece is a pin
// candidate, confirmed if the next occupied square holds an enemy slider
// matching the ray direction.
func (b *Board) findPins(c Color, king Square, rs *Restrictions) {
	for _, d := range QueenDirections {
		step := d.Offset()
		candidate := ZeroSquare
		haveCandidate := false

		for i := int8(1); i <= 7; i++ {
			target, ok := king.Add(step.Mul(i))
			if !ok {
				break
			}
			pc, piece, occupied := b.At(target)
			if !occupied {
				continue
			}

			if pc == c && !haveCandidate {
				candidate, haveCandidate = target, true
				continue
			}
			if pc != c && haveCandidate && slides(piece, step) {
				rs.Pins[candidate] = pinDir(d)
			}
			break
		}
	}
}

// findEnPassantPin detects the horizontal discovered check hidden behind an en
// passant capture: if removing both the capturable pawn and the single
// adjacent capturing pawn would expose the king to a rook or queen along the
// rank, the capture is forbidden.
func (b *Board) findEnPassantPin(c Color, king Square, rs *Restrictions) {
	ep, ok := b.EnPassant()
	if !ok {
		return
	}
	victim, ok := ep.Add(c.PawnDirection().Opposite().Offset())
	if !ok || victim.Rank() != king.Rank() {
		return
	}

	// The pin can only bite if exactly one own pawn is in place to capture.
	pawns := 0
	for _, o := range []Offset{{1, 0}, {-1, 0}} {
		sq, ok := victim.Add(o)
		if !ok {
			continue
		}
		if pc, piece, occupied := b.At(sq); occupied && pc == c && piece == Pawn {
			pawns++
		}
	}
	if pawns != 1 {
		return
	}

	for _, d := range []Direction{East, West} {
		step := d.Offset()
		candidate := ZeroSquare
		haveCandidate := false

		for i := int8(1); i <= 7; i++ {
			target, ok := king.Add(step.Mul(i))
			if !ok {
				break
			}
			if target == victim {
				continue // the captured pawn vanishes with the capture
			}
			pc, piece, occupied := b.At(target)
			if !occupied {
				continue
			}

			if pc == c && piece == Pawn && !haveCandidate {
				candidate, haveCandidate = target, true
				continue
			}
			if _, pinned := rs.Pins[candidate]; pc != c && haveCandidate && !pinned && (piece == Rook || piece == Queen) {
				rs.Pins[candidate] = EnPassantBlock
			}
			break
		}
	}
}

// attacks returns true iff a piece of the given kind and color attacks along
// the given displacement, the ray between being empty. The displacement points
// from the attacked square to the attacker.
func attacks(p Piece, c Color, o Offset) bool {
	switch p {
	case Pawn:
		// A pawn attacks one rank forward; seen from the attacked square the
		// attacker sits one rank ahead for White's victims, one behind for
		// Black's.
		if c == White {
			return o.Rank == -1 && (o.File == 1 || o.File == -1)
		}
		return o.Rank == 1 && (o.File == 1 || o.File == -1)
	case Bishop:
		return o.File == o.Rank || o.File == -o.Rank
	case Rook:
		return o.File == 0 || o.Rank == 0
	case Queen:
		return o.File == 0 || o.Rank == 0 || o.File == o.Rank || o.File == -o.Rank
	case King:
		return o.File >= -1 && o.File <= 1 && o.Rank >= -1 && o.Rank <= 1
	default:
		return false
	}
}

// slides returns true iff the piece kind attacks along rays with the given
// unit step.
func slides(p Piece, step Offset) bool {
	diagonal := step.File != 0 && step.Rank != 0
	switch p {
	case Queen:
		return true
	case Bishop:
		return diagonal
	case Rook:
		return !diagonal
	default:
		return false
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

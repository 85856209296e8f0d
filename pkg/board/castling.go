package board

import "strings"

// Castling represents the set of castling rights. 4 bits.
type Castling uint8

const (
	WhiteShortCastle Castling = 1 << iota
	WhiteLongCastle
	BlackShortCastle
	BlackLongCastle
)

const (
	FullCastlingRights = WhiteShortCastle | WhiteLongCastle | BlackShortCastle | BlackLongCastle

	ZeroCastling Castling = 0
	NumCastling  Castling = 16
)

// IsAllowed returns true iff all the given rights are allowed.
func (c Castling) IsAllowed(right Castling) bool {
	return c&right == right
}

// CastlingRights returns the full set of rights for the color.
func CastlingRights(c Color) Castling {
	if c == White {
		return WhiteShortCastle | WhiteLongCastle
	}
	return BlackShortCastle | BlackLongCastle
}

func (c Castling) String() string {
	if c == 0 {
		return "-"
	}

	var sb strings.Builder
	if c.IsAllowed(WhiteShortCastle) {
		sb.WriteString("K")
	}
	if c.IsAllowed(WhiteLongCastle) {
		sb.WriteString("Q")
	}
	if c.IsAllowed(BlackShortCastle) {
		sb.WriteString("k")
	}
	if c.IsAllowed(BlackLongCastle) {
		sb.WriteString("q")
	}
	return sb.String()
}

// CastleType identifies one of the four castle moves. 2 bits.
type CastleType uint8

const (
	WhiteShort CastleType = iota
	WhiteLong
	BlackShort
	BlackLong
)

const (
	ZeroCastleType CastleType = 0
	NumCastleTypes CastleType = 4
)

func (ct CastleType) Color() Color {
	if ct == WhiteShort || ct == WhiteLong {
		return White
	}
	return Black
}

// Right returns the castling right consumed by the castle move.
func (ct CastleType) Right() Castling {
	return Castling(1) << ct
}

// KingFrom returns the king home square for the castle move.
func (ct CastleType) KingFrom() Square {
	if ct.Color() == White {
		return E1
	}
	return E8
}

// KingTo returns the king destination square.
func (ct CastleType) KingTo() Square {
	switch ct {
	case WhiteShort:
		return G1
	case WhiteLong:
		return C1
	case BlackShort:
		return G8
	default:
		return C8
	}
}

// RookFrom returns the rook home square.
func (ct CastleType) RookFrom() Square {
	switch ct {
	case WhiteShort:
		return H1
	case WhiteLong:
		return A1
	case BlackShort:
		return H8
	default:
		return A8
	}
}

// RookTo returns the rook destination square.
func (ct CastleType) RookTo() Square {
	switch ct {
	case WhiteShort:
		return F1
	case WhiteLong:
		return D1
	case BlackShort:
		return F8
	default:
		return D8
	}
}

// Between returns the squares strictly between king and rook, which must be
// empty for the castle to be playable.
func (ct CastleType) Between() []Square {
	switch ct {
	case WhiteShort:
		return []Square{F1, G1}
	case WhiteLong:
		return []Square{B1, C1, D1}
	case BlackShort:
		return []Square{F8, G8}
	default:
		return []Square{B8, C8, D8}
	}
}

// KingPath returns the squares the king passes through or lands on, all of
// which must be unattacked for the castle to be legal.
func (ct CastleType) KingPath() []Square {
	switch ct {
	case WhiteShort:
		return []Square{F1, G1}
	case WhiteLong:
		return []Square{D1, C1}
	case BlackShort:
		return []Square{F8, G8}
	default:
		return []Square{D8, C8}
	}
}

func (ct CastleType) String() string {
	switch ct {
	case WhiteShort, BlackShort:
		return "O-O"
	default:
		return "O-O-O"
	}
}

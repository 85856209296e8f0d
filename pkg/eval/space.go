package eval

import "github.com/fianchetto/fianchetto/pkg/board"

const (
	flankWeight   = 5
	centralWeight = 5
)

// space measures how far each side's pawns have advanced, summed per flank:
// queenside files a-c, central files d-e, kingside files f-h. Per file the
// contribution is the rank of the most advanced own pawn, from the owner's
// point of view, or zero without pawns on the file.
type space struct {
	queenside, central, kingside [board.NumColors]int
}

func newSpace(b *board.Board) space {
	var s space
	for f := board.ZeroFile; f < board.NumFiles; f++ {
		white, black := fileAdvance(b, f)

		switch {
		case f <= board.FileC:
			s.queenside[board.White] += white
			s.queenside[board.Black] += black
		case f <= board.FileE:
			s.central[board.White] += white
			s.central[board.Black] += black
		default:
			s.kingside[board.White] += white
			s.kingside[board.Black] += black
		}
	}
	return s
}

// fileAdvance returns the rank of the most advanced pawn per side on the file,
// each from its owner's point of view.
func fileAdvance(b *board.Board, f board.File) (white, black int) {
	for r := board.ZeroRank; r < board.NumRanks; r++ {
		c, p, ok := b.At(board.NewSquare(f, r))
		if !ok || p != board.Pawn {
			continue
		}
		if c == board.White {
			white = r.V()
		} else if black == 0 {
			black = 7 - r.V()
		}
	}
	return white, black
}

// spaceScore weights each flank by the side's king position: space gained on
// the flank away from the own king counts for it, space in front of the own
// king against it, and the center always counts. Pawn storms are thereby
// encouraged on the side the king is not on.
func spaceScore(b *board.Board) int {
	s := newSpace(b)

	wk, wq := flankWeights(b.King(board.White).File())
	bk, bq := flankWeights(b.King(board.Black).File())

	queenside := s.queenside[board.White]*wq - s.queenside[board.Black]*bq
	central := (s.central[board.White] - s.central[board.Black]) * centralWeight
	kingside := s.kingside[board.White]*wk - s.kingside[board.Black]*bk

	return queenside + central + kingside
}

// flankWeights returns the (kingside, queenside) weights for a king on the
// given file: the flank holding the king scores negatively, the far flank
// positively, and a centered king neutralizes both.
func flankWeights(f board.File) (kingside, queenside int) {
	switch {
	case f <= board.FileC:
		return flankWeight, -flankWeight
	case f <= board.FileE:
		return 0, 0
	default:
		return -flankWeight, flankWeight
	}
}

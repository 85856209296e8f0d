package search

import (
	"sort"

	"github.com/fianchetto/fianchetto/pkg/board"
)

// MovePriority represents the move exploration priority: higher explores
// earlier.
type MovePriority int16

// Priority ranks moves for exploration: promotion captures first, then
// promotions, captures, en passant, castles, and quiet moves last. Cheap and
// stable, so equal-priority moves keep generation order.
func Priority(m board.Move) MovePriority {
	switch m.Type {
	case board.CapturePromotion:
		return 5
	case board.Promotion:
		return 4
	case board.Capture:
		return 3
	case board.EnPassant:
		return 2
	case board.Castle:
		return 1
	default:
		return 0
	}
}

// SortByPriority sorts the moves by exploration priority, preserving order
// for same priority.
func SortByPriority(moves []board.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return Priority(moves[i]) > Priority(moves[j])
	})
}

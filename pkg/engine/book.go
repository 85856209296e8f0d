package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
)

// BookMove is a book move in SAN with its popularity weight.
type BookMove struct {
	SAN        string
	Popularity uint32
}

// UnmarshalJSON decodes the book file pair format: ["e4", 1234].
func (m *BookMove) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("invalid book move: %v", string(data))
	}
	if err := json.Unmarshal(pair[0], &m.SAN); err != nil {
		return fmt.Errorf("invalid book move notation: %w", err)
	}
	if err := json.Unmarshal(pair[1], &m.Popularity); err != nil {
		return fmt.Errorf("invalid book move popularity: %w", err)
	}
	return nil
}

// MarshalJSON encodes the book move back into the pair format.
func (m BookMove) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{m.SAN, m.Popularity})
}

// Book represents an opening book, mapping a draw FEN to a non-empty weighted
// move list. Positions outside the book yield an empty list.
type Book interface {
	// Find returns the move list -- potentially empty -- for a position.
	Find(ctx context.Context, drawFEN string) ([]BookMove, error)
}

// NoBook is an empty opening book.
var NoBook Book = mapBook{}

type mapBook map[string][]BookMove

func (b mapBook) Find(_ context.Context, drawFEN string) ([]BookMove, error) {
	return b[drawFEN], nil
}

// NewBook creates an opening book from draw FEN keyed move lists.
func NewBook(moves map[string][]BookMove) Book {
	return mapBook(moves)
}

// ReadBookFile reads a JSON opening book: an object mapping draw FEN to an
// array of [SAN, popularity] pairs.
func ReadBookFile(path string) (map[string][]BookMove, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read book: %w", err)
	}

	var moves map[string][]BookMove
	if err := json.Unmarshal(data, &moves); err != nil {
		return nil, fmt.Errorf("invalid book file '%v': %w", path, err)
	}
	return moves, nil
}

// PickBookMove samples a move from the list with probability proportional to
// popularity. Returns false on an empty list.
func PickBookMove(r *rand.Rand, moves []BookMove) (BookMove, bool) {
	var total uint64
	for _, m := range moves {
		total += uint64(m.Popularity)
	}
	if total == 0 {
		return BookMove{}, false
	}

	n := uint64(r.Int63n(int64(total)))
	for _, m := range moves {
		if n < uint64(m.Popularity) {
			return m, true
		}
		n -= uint64(m.Popularity)
	}
	return moves[len(moves)-1], true
}

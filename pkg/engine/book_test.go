package engine_test

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/fianchetto/fianchetto/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBook = `{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq": [["e4", 3000], ["d4", 2500], ["Nf3", 1200]],
	"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq": [["c5", 2800], ["e5", 2600]]
}`

func writeBookFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadBookFile(t *testing.T) {
	entries, err := engine.ReadBookFile(writeBookFile(t, testBook))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	moves := entries["rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq"]
	require.Len(t, moves, 3)
	assert.Equal(t, engine.BookMove{SAN: "e4", Popularity: 3000}, moves[0])
	assert.Equal(t, engine.BookMove{SAN: "Nf3", Popularity: 1200}, moves[2])
}

func TestReadBookFileInvalid(t *testing.T) {
	tests := []string{
		`{"key": [["e4"]]}`,         // pair too short
		`{"key": [["e4", 1, 2]]}`,   // pair too long
		`{"key": [[4, 1]]}`,         // notation not a string
		`{"key": [["e4", "many"]]}`, // popularity not a number
		`not json`,
	}

	for _, tt := range tests {
		_, err := engine.ReadBookFile(writeBookFile(t, tt))
		assert.Error(t, err, tt)
	}
}

func TestBookFind(t *testing.T) {
	ctx := context.Background()

	entries, err := engine.ReadBookFile(writeBookFile(t, testBook))
	require.NoError(t, err)
	book := engine.NewBook(entries)

	moves, err := book.Find(ctx, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq")
	require.NoError(t, err)
	assert.Len(t, moves, 3)

	moves, err = book.Find(ctx, "8/8/8/8/8/8/8/8 w -")
	require.NoError(t, err)
	assert.Empty(t, moves)

	moves, err = engine.NoBook.Find(ctx, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq")
	require.NoError(t, err)
	assert.Empty(t, moves)
}

func TestPickBookMove(t *testing.T) {
	moves := []engine.BookMove{
		{SAN: "e4", Popularity: 7000},
		{SAN: "d4", Popularity: 2000},
		{SAN: "Nf3", Popularity: 1000},
	}

	// Deterministic under a fixed seed.
	a, ok := engine.PickBookMove(rand.New(rand.NewSource(1)), moves)
	require.True(t, ok)
	b, ok := engine.PickBookMove(rand.New(rand.NewSource(1)), moves)
	require.True(t, ok)
	assert.Equal(t, a, b)

	// Sampling respects the weights, roughly.
	counts := map[string]int{}
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		m, ok := engine.PickBookMove(r, moves)
		require.True(t, ok)
		counts[m.SAN]++
	}
	assert.Greater(t, counts["e4"], counts["d4"])
	assert.Greater(t, counts["d4"], counts["Nf3"])
	assert.Greater(t, counts["Nf3"], 0)

	// Degenerate lists.
	_, ok = engine.PickBookMove(r, nil)
	assert.False(t, ok)
	_, ok = engine.PickBookMove(r, []engine.BookMove{{SAN: "e4", Popularity: 0}})
	assert.False(t, ok)
}

func TestBookStore(t *testing.T) {
	ctx := context.Background()

	store, err := engine.OpenBookStore(filepath.Join(t.TempDir(), "bookdb"))
	require.NoError(t, err)
	defer store.Close()

	n, err := store.Import(ctx, writeBookFile(t, testBook))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	moves, err := store.Find(ctx, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq")
	require.NoError(t, err)
	assert.Equal(t, []engine.BookMove{{SAN: "c5", Popularity: 2800}, {SAN: "e5", Popularity: 2600}}, moves)

	moves, err = store.Find(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, moves)
}

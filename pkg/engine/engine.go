// Package engine contains the game session logic: board and repetition
// bookkeeping, the opening book, outcome adjudication and move choice.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/fianchetto/fianchetto/pkg/board"
	"github.com/fianchetto/fianchetto/pkg/board/fen"
	"github.com/fianchetto/fianchetto/pkg/eval"
	"github.com/fianchetto/fianchetto/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 3, 1)

// Events emitted to the host layer, by name. The host wraps the session in
// its own transport; the session itself owns no I/O.
const (
	EventUpdateBoard = "update-board"
	EventEndGame     = "end-game"
	EventCancelMove  = "cancel-move"
)

// Reason explains a decided game outcome.
type Reason uint8

const (
	NoReason Reason = iota
	Checkmate
	Stalemate
	NoProgress // 50-move rule
	Repetition
	InsufficientMaterial
)

func (r Reason) String() string {
	switch r {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case NoProgress:
		return "the 50 move rule"
	case Repetition:
		return "threefold repetition"
	case InsufficientMaterial:
		return "insufficient mating material"
	default:
		return "-"
	}
}

// Outcome is the game result with its reason, Undecided while the game is
// ongoing. Game-end conditions are outcomes, never errors.
type Outcome struct {
	Result board.Result
	Reason Reason
}

func (o Outcome) String() string {
	if o.Result == board.Undecided {
		return "ongoing"
	}
	if winner, ok := o.Result.Winner(); ok {
		side := "White"
		if winner == board.Black {
			side = "Black"
		}
		return fmt.Sprintf("%v wins by %v", side, o.Reason)
	}
	return fmt.Sprintf("draw by %v", o.Reason)
}

const noProgressPlyLimit = 100

// Game is a single game session. It owns the board, the repetition map and
// the settings, and selects engine moves by book probe or search. Not
// thread-safe beyond the mutex-guarded public surface.
type Game struct {
	settings Settings
	book     Book
	zt       *board.ZobristTable
	rnd      *rand.Rand

	b           board.Board
	hash        board.ZobristHash
	repetitions map[board.ZobristHash]int

	mu sync.Mutex
}

// Option is a game creation option.
type Option func(*Game)

// WithBook configures the opening book. Defaults to NoBook.
func WithBook(book Book) Option {
	return func(g *Game) {
		g.book = book
	}
}

// WithSeed seeds the zobrist table and the book sampling deterministically.
// Defaults to seed zero, for reproducible games and tests.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.zt = board.NewZobristTable(seed)
		g.rnd = rand.New(rand.NewSource(seed))
	}
}

// NewGame starts a session from the given position.
func NewGame(ctx context.Context, position string, settings Settings, opts ...Option) (*Game, error) {
	b, err := fen.Decode(position)
	if err != nil {
		return nil, err
	}

	g := &Game{
		settings: settings.clamp(),
		book:     NoBook,
	}
	WithSeed(0)(g)
	for _, fn := range opts {
		fn(g)
	}

	g.b = *b
	g.hash = g.zt.Hash(&g.b)
	g.repetitions = map[board.ZobristHash]int{g.hash: 1}

	logw.Infof(ctx, "New game %v: %v, settings=%v", Name(), position, g.settings)
	return g, nil
}

// Name returns the engine name and version.
func Name() string {
	return fmt.Sprintf("fianchetto %v", version)
}

// Board returns a copy of the current board.
func (g *Game) Board() board.Board {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.b
}

// Hash returns the zobrist hash of the current position.
func (g *Game) Hash() board.ZobristHash {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.hash
}

// Position returns the current position in FEN notation.
func (g *Game) Position() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return fen.Encode(&g.b)
}

// LegalMoves returns the legal moves in the current position.
func (g *Game) LegalMoves() []board.Move {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.b.LegalMoves()
}

// PlayMove applies a legal move, updates the hash incrementally and records
// the new position in the repetition map. The board, hash and repetition
// count move together: Outcome observes a consistent state.
func (g *Game) PlayMove(ctx context.Context, m board.Move) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	next := g.zt.Move(g.hash, &g.b, m)
	if err := g.b.Apply(m); err != nil {
		return err
	}
	g.hash = next
	g.repetitions[g.hash]++

	logw.Infof(ctx, "Move %v: %v, hash=%x (%v)", m, g.b.String(), g.hash, g.repetitions[g.hash])
	return nil
}

// Outcome adjudicates the current position.
func (g *Game) Outcome() Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.b.HalfMoveClock() >= noProgressPlyLimit {
		return Outcome{Result: board.Draw, Reason: NoProgress}
	}
	if g.b.HasInsufficientMaterial() {
		return Outcome{Result: board.Draw, Reason: InsufficientMaterial}
	}

	rs := g.b.Analyze(g.b.Turn())
	if len(g.b.LegalMovesAnalyzed(rs)) == 0 {
		if rs.ChecksAmount > 0 {
			return Outcome{Result: board.Loss(g.b.Turn()), Reason: Checkmate}
		}
		return Outcome{Result: board.Draw, Reason: Stalemate}
	}

	for _, count := range g.repetitions {
		if count >= 3 {
			return Outcome{Result: board.Draw, Reason: Repetition}
		}
	}
	return Outcome{}
}

// ChooseMove selects the engine move for the side to move: a weighted book
// move when the position is in the book, otherwise the search result. The
// context cancels an in-flight search; a cancelled choice returns ErrHalted
// and leaves the session untouched.
func (g *Game) ChooseMove(ctx context.Context) (board.Move, error) {
	g.mu.Lock()
	b := g.b
	key := fen.EncodeDraw(&g.b)
	g.mu.Unlock()

	if m, ok := g.bookMove(ctx, &b, key); ok {
		return m, nil
	}

	s := search.Minimax{
		Depth:            g.settings.SearchDepth,
		AlphaBeta:        g.settings.Pruning,
		PositionalFactor: g.settings.PositionalValueFactor,
	}
	pv, ok, err := s.Search(ctx, &b)
	if err != nil {
		return board.Move{}, err
	}
	if !ok {
		return board.Move{}, fmt.Errorf("no legal move in %v", fen.Encode(&b))
	}

	logw.Infof(ctx, "Search: %v", pv)
	if g.settings.EvalPrint {
		logw.Infof(ctx, "Eval: %v", eval.Evaluate(&b).Scale(g.settings.PositionalValueFactor))
	}
	return pv.Move, nil
}

// bookMove probes the opening book and samples a move by popularity.
func (g *Game) bookMove(ctx context.Context, b *board.Board, key string) (board.Move, bool) {
	moves, err := g.book.Find(ctx, key)
	if err != nil {
		logw.Errorf(ctx, "Book lookup failed for '%v': %v", key, err)
		return board.Move{}, false
	}
	if len(moves) == 0 {
		return board.Move{}, false
	}

	g.mu.Lock()
	pick, ok := PickBookMove(g.rnd, moves)
	g.mu.Unlock()
	if !ok {
		return board.Move{}, false
	}

	m, err := board.ParseSAN(b, pick.SAN)
	if err != nil {
		logw.Errorf(ctx, "Invalid book move '%v' for '%v': %v", pick.SAN, key, err)
		return board.Move{}, false
	}

	logw.Infof(ctx, "Book move: %v (%v games)", pick.SAN, pick.Popularity)
	return m, true
}

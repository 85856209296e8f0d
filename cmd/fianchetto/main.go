// fianchetto is a chess engine with a console play loop: it prints the legal
// moves of the current position, accepts a move in algebraic notation, and
// answers with its own move.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fianchetto/fianchetto/pkg/board"
	"github.com/fianchetto/fianchetto/pkg/board/fen"
	"github.com/fianchetto/fianchetto/pkg/engine"
	"github.com/seekerror/logw"
)

var (
	settingsFile = flag.String("settings", "", "Settings file (TOML). Defaults used if empty")
	bookFile     = flag.String("book", "", "Opening book file (JSON)")
	bookDB       = flag.String("bookdb", "", "Opening book store directory. Imports -book if given")
	position     = flag.String("fen", fen.Initial, "Start position")
	seed         = flag.Int64("seed", 0, "Random seed for hashing and book sampling")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: fianchetto [options]

fianchetto is a chess engine built around a rules-accurate move generator,
incremental zobrist hashing and a minimax search with a composite
evaluation. It plays a console game against the user.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	settings := engine.DefaultSettings()
	if *settingsFile != "" {
		var err error
		if settings, err = engine.LoadSettings(*settingsFile); err != nil {
			logw.Exitf(ctx, "Invalid settings: %v", err)
		}
	}

	book := engine.NoBook
	switch {
	case *bookDB != "":
		store, err := engine.OpenBookStore(*bookDB)
		if err != nil {
			logw.Exitf(ctx, "Invalid book store: %v", err)
		}
		defer store.Close()

		if *bookFile != "" {
			if _, err := store.Import(ctx, *bookFile); err != nil {
				logw.Exitf(ctx, "Book import failed: %v", err)
			}
		}
		book = store

	case *bookFile != "":
		entries, err := engine.ReadBookFile(*bookFile)
		if err != nil {
			logw.Exitf(ctx, "Invalid book: %v", err)
		}
		book = engine.NewBook(entries)
	}

	g, err := engine.NewGame(ctx, *position, settings, engine.WithBook(book), engine.WithSeed(*seed))
	if err != nil {
		logw.Exitf(ctx, "Invalid position: %v", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		b := g.Board()
		fmt.Println(render(&b))

		if outcome := g.Outcome(); outcome.Result != board.Undecided {
			fmt.Printf("Game over: %v.\n", outcome)
			return
		}

		moves := g.LegalMoves()
		fmt.Printf("Available moves: %v\n", board.FormatMoves(moves, func(m board.Move) string {
			return board.PrintSAN(&b, m)
		}))
		fmt.Print("Your move: ")

		if !scanner.Scan() {
			logw.Infof(ctx, "Input stream closed. Exiting")
			return
		}
		m, err := board.ParseSAN(&b, strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Printf("Invalid move: %v\n", err)
			continue
		}
		if err := g.PlayMove(ctx, m); err != nil {
			logw.Exitf(ctx, "Move failed: %v", err)
		}

		if outcome := g.Outcome(); outcome.Result != board.Undecided {
			b = g.Board()
			fmt.Println(render(&b))
			fmt.Printf("Game over: %v.\n", outcome)
			return
		}

		reply, err := g.ChooseMove(ctx)
		if err != nil {
			logw.Exitf(ctx, "Failed to choose move: %v", err)
		}
		b = g.Board()
		fmt.Printf("Engine plays %v.\n", board.PrintSAN(&b, reply))
		if err := g.PlayMove(ctx, reply); err != nil {
			logw.Exitf(ctx, "Move failed: %v", err)
		}
	}
}

// render draws the board rank by rank from White's point of view.
func render(b *board.Board) string {
	var sb strings.Builder
	for _, rank := range strings.Split(b.String(), "/") {
		sb.WriteString(rank)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

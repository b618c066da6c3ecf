// Package perft counts move-tree leaves, the standard check of move
// generation correctness.
package perft

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/game"
)

// Entry is the leaf count below one root move.
type Entry struct {
	Move  board.Move
	Nodes int64
}

// Count returns the number of leaf nodes depth plies below g's position.
// g is not modified.
func Count(g *game.Game, depth int) int64 {
	if depth <= 0 {
		return 1
	}

	moves := g.AllValidMoves()
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		child := g.Clone()
		if err := child.MakeMove(m); err != nil {
			// AllValidMoves only returns moves MakeMove accepts.
			panic(err)
		}
		nodes += Count(child, depth-1)
	}
	return nodes
}

// Divide counts leaves below each root move, splitting the root moves over
// at most workers goroutines (GOMAXPROCS when workers < 1). Entries are in
// root move order. Cancelling ctx stops scheduling further root moves.
func Divide(ctx context.Context, g *game.Game, depth, workers int) ([]Entry, int64, error) {
	if depth < 1 {
		return nil, 0, fmt.Errorf("perft: depth must be at least 1, got %d", depth)
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	moves := g.AllValidMoves()
	entries := make([]Entry, len(moves))

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	var total atomic.Int64
	for i, m := range moves {
		if egctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			child := g.Clone()
			if err := child.MakeMove(m); err != nil {
				return err
			}
			n := Count(child, depth-1)
			entries[i] = Entry{Move: m, Nodes: n}
			total.Add(n)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	return entries, total.Load(), nil
}

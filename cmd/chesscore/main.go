// Command chesscore plays and inspects games from the terminal.
package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/hailam/chesscore/internal/console"
	"github.com/hailam/chesscore/internal/game"
	"github.com/hailam/chesscore/internal/storage"
)

func main() {
	// Flags (env fallbacks).
	dbDir := flag.String("db", getenv("CHESSCORE_DB", ""), "database directory (default: platform data dir)")
	memory := flag.Bool("memory", false, "keep saved games in memory only")
	gameID := flag.String("game", getenv("CHESSCORE_GAME", console.DefaultGameID), "id used by save and load; resumed on startup if present")
	fen := flag.String("fen", getenv("CHESSCORE_FEN", ""), "start from this FEN instead of a saved or new game")
	workers := flag.Int("workers", getenvInt("CHESSCORE_WORKERS", 0), "perft goroutines (0: GOMAXPROCS)")
	flag.Parse()

	var (
		store *storage.Storage
		err   error
	)
	if *memory {
		store, err = storage.OpenInMemory()
	} else {
		store, err = storage.Open(*dbDir)
	}
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	defer store.Close()

	c := console.New(store, os.Stdout)
	c.SetGameID(*gameID)
	c.SetWorkers(*workers)

	switch {
	case *fen != "":
		g, err := game.ParseFEN(*fen)
		if err != nil {
			log.Fatalf("fen: %v", err)
		}
		c.SetGame(g)
	default:
		snap, err := store.LoadGame(*gameID)
		switch {
		case errors.Is(err, storage.ErrGameNotFound):
		case err != nil:
			log.Fatalf("load %s: %v", *gameID, err)
		default:
			g, err := snap.Restore()
			if err != nil {
				log.Fatalf("load %s: %v", *gameID, err)
			}
			c.SetGame(g)
			log.Printf("Resumed game %s (%d moves played)", *gameID, len(snap.Moves))
		}
	}

	c.Execute("board", nil)
	if err := c.Run(os.Stdin); err != nil {
		log.Fatal(err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", key, v, err)
		return def
	}
	return n
}

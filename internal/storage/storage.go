package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/game"
	"github.com/hailam/chesscore/internal/notation"
)

// Storage keys
const (
	gamePrefix = "game/"
	keyStats   = "stats"
)

// ErrGameNotFound is returned when no snapshot is stored under an ID.
var ErrGameNotFound = errors.New("game not found")

// Snapshot is the persisted form of a game.
type Snapshot struct {
	ID        string    `json:"id"`
	Start     string    `json:"start,omitempty"`
	FEN       string    `json:"fen"`
	Moves     []string  `json:"moves"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SnapshotOf captures g's current position and move history under id.
func SnapshotOf(id string, g *game.Game) *Snapshot {
	history := g.History()
	moves := make([]string, len(history))
	for i, m := range history {
		moves[i] = m.String()
	}
	return &Snapshot{
		ID:    id,
		Start: g.StartingFEN(),
		FEN:   g.FEN(),
		Moves: moves,
	}
}

// Restore rebuilds the game. With a starting position the moves are
// replayed so the history survives, and the result must match FEN.
// Otherwise the game starts at FEN with no history.
func (s *Snapshot) Restore() (*game.Game, error) {
	if s.Start == "" {
		g, err := game.ParseFEN(s.FEN)
		if err != nil {
			return nil, fmt.Errorf("restore %s: %w", s.ID, err)
		}
		return g, nil
	}

	moves, err := notation.ParseMoves(s.Moves)
	if err != nil {
		return nil, fmt.Errorf("restore %s: %w", s.ID, err)
	}

	g, err := game.Replay(s.Start, moves)
	if err != nil {
		return nil, fmt.Errorf("restore %s: %w", s.ID, err)
	}
	if g.FEN() != s.FEN {
		return nil, fmt.Errorf("restore %s: replay reached %q, want %q", s.ID, g.FEN(), s.FEN)
	}
	return g, nil
}

// Stats tallies finished games.
type Stats struct {
	GamesFinished int `json:"games_finished"`
	WhiteWins     int `json:"white_wins"`
	BlackWins     int `json:"black_wins"`
	Stalemates    int `json:"stalemates"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) the database in dir. An empty dir uses
// DatabaseDir().
func Open(dir string) (*Storage, error) {
	if dir == "" {
		var err error
		dir, err = DatabaseDir()
		if err != nil {
			return nil, err
		}
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	return open(opts)
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(id string) []byte {
	return []byte(gamePrefix + id)
}

// SaveGame stores snap under its ID, replacing any previous snapshot.
func (s *Storage) SaveGame(snap *Snapshot) error {
	if snap.ID == "" {
		return errors.New("save game: empty id")
	}
	snap.UpdatedAt = time.Now()

	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(snap.ID), data)
	})
}

// LoadGame returns the snapshot stored under id.
func (s *Storage) LoadGame(id string) (*Snapshot, error) {
	snap := &Snapshot{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrGameNotFound, id)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, snap)
		})
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}

// DeleteGame removes the snapshot stored under id.
func (s *Storage) DeleteGame(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(gameKey(id)); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %s", ErrGameNotFound, id)
			}
			return err
		}
		return txn.Delete(gameKey(id))
	})
}

// ListGames returns the IDs of all stored games in lexical order.
func (s *Storage) ListGames() ([]string, error) {
	var ids []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(gamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			ids = append(ids, strings.TrimPrefix(key, gamePrefix))
		}
		return nil
	})

	sort.Strings(ids)
	return ids, err
}

// LoadStats loads game statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil // Use empty stats
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordResult updates the statistics for a game that ended with side to
// move in status. Statuses that do not end the game are ignored.
func (s *Storage) RecordResult(toMove board.Color, status game.Status) error {
	if !status.IsOver() {
		return nil
	}

	return s.db.Update(func(txn *badger.Txn) error {
		stats := &Stats{}

		item, err := txn.Get([]byte(keyStats))
		switch {
		case errors.Is(err, badger.ErrKeyNotFound):
		case err != nil:
			return err
		default:
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, stats)
			}); err != nil {
				return err
			}
		}

		stats.GamesFinished++
		switch {
		case status == game.Stalemate:
			stats.Stalemates++
		case toMove == board.White:
			stats.BlackWins++
		default:
			stats.WhiteWins++
		}

		data, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		return txn.Set([]byte(keyStats), data)
	})
}

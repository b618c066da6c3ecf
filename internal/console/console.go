// Package console implements a line-oriented command loop for playing and
// inspecting games. It accepts a subset of UCI's "position" syntax so move
// lists can be pasted from other tools.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/game"
	"github.com/hailam/chesscore/internal/notation"
	"github.com/hailam/chesscore/internal/perft"
	"github.com/hailam/chesscore/internal/storage"
)

// DefaultGameID names the snapshot used by "save" and "load" without an id.
const DefaultGameID = "default"

// Console reads commands from in and writes replies to out.
type Console struct {
	game   *game.Game
	store  *storage.Storage
	gameID string

	out io.Writer

	// Worker count for the perft command
	workers int
}

// New creates a console at the starting position. store may be nil, in which
// case persistence commands report an error.
func New(store *storage.Storage, out io.Writer) *Console {
	return &Console{
		game:   game.New(),
		store:  store,
		gameID: DefaultGameID,
		out:    out,
	}
}

// SetGame replaces the current game.
func (c *Console) SetGame(g *game.Game) {
	c.game = g
}

// Game returns the current game.
func (c *Console) Game() *game.Game {
	return c.game
}

// SetGameID sets the default id for save and load.
func (c *Console) SetGameID(id string) {
	if id != "" {
		c.gameID = id
	}
}

// SetWorkers sets the goroutine limit for perft.
func (c *Console) SetWorkers(n int) {
	c.workers = n
}

// Run processes commands until in is exhausted or "quit" is read.
func (c *Console) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		if !c.Execute(parts[0], parts[1:]) {
			return nil
		}
	}
	return scanner.Err()
}

// Execute runs a single command. It returns false when the loop should stop.
func (c *Console) Execute(cmd string, args []string) bool {
	var err error

	switch cmd {
	case "quit", "exit":
		return false
	case "board", "d":
		fmt.Fprint(c.out, c.game.Board().String())
		fmt.Fprintf(c.out, "%s to move\n", c.game.Turn())
	case "fen":
		fmt.Fprintln(c.out, c.game.FEN())
	case "new", "ucinewgame":
		c.game = game.New()
		fmt.Fprintln(c.out, "new game")
	case "position":
		err = c.handlePosition(args)
	case "moves":
		err = c.handleMoves(args)
	case "status":
		c.printStatus()
	case "history":
		c.printHistory()
	case "perft":
		err = c.handlePerft(args)
	case "save":
		err = c.handleSave(args)
	case "load":
		err = c.handleLoad(args)
	case "delete":
		err = c.handleDelete(args)
	case "list":
		err = c.handleList()
	case "stats":
		err = c.handleStats()
	case "help":
		c.printHelp()
	default:
		err = c.handleMove(cmd)
	}

	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
	}
	return true
}

func (c *Console) handleMove(text string) error {
	m, err := notation.ParseMove(text)
	if err != nil {
		m, err = notation.ParseSAN(c.game, text)
		if errors.Is(err, game.ErrIllegalMove) || errors.Is(err, notation.ErrAmbiguousMove) {
			return err
		}
		if err != nil {
			return fmt.Errorf("unknown command %q", text)
		}
	}

	san, err := notation.SAN(c.game, m)
	if err != nil {
		return err
	}
	mover := c.game.Turn()
	if err := c.game.MakeMove(m); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s played %s\n", mover, san)

	status := c.printStatus()
	if status.IsOver() && c.store != nil {
		return c.store.RecordResult(c.game.Turn(), status)
	}
	return nil
}

// handlePosition sets up a position.
// Formats:
//   - position startpos
//   - position startpos moves e2e4 e7e5
//   - position fen <fen>
//   - position fen <fen> moves e2e4
func (c *Console) handlePosition(args []string) error {
	setup, moves := args, []string(nil)
	for i, arg := range args {
		if arg == "moves" {
			setup, moves = args[:i], args[i+1:]
			break
		}
	}
	if len(setup) == 0 {
		return errors.New("position: expected startpos or fen")
	}

	var g *game.Game
	switch setup[0] {
	case "startpos":
		g = game.New()
	case "fen":
		var err error
		g, err = game.ParseFEN(strings.Join(setup[1:], " "))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("position: unknown setup %q", setup[0])
	}

	parsed, err := notation.ParseMoves(moves)
	if err != nil {
		return err
	}
	for _, m := range parsed {
		if err := g.MakeMove(m); err != nil {
			return err
		}
	}

	c.game = g
	return nil
}

func (c *Console) handleMoves(args []string) error {
	var moves []board.Move

	if len(args) == 0 {
		moves = c.game.AllValidMoves()
	} else {
		sq, err := board.ParseSquare(args[0])
		if err != nil {
			return err
		}
		moves = c.game.ValidMoves(sq).Moves()
	}

	strs := make([]string, len(moves))
	for i, m := range moves {
		strs[i] = m.String()
	}
	fmt.Fprintf(c.out, "%d moves: %s\n", len(moves), strings.Join(strs, " "))
	return nil
}

func (c *Console) printStatus() game.Status {
	turn := c.game.Turn()
	status := c.game.Status(turn)

	switch status {
	case game.Checkmate:
		fmt.Fprintf(c.out, "checkmate, %s wins\n", turn.Other())
	case game.Stalemate:
		fmt.Fprintln(c.out, "stalemate")
	case game.Check:
		fmt.Fprintf(c.out, "%s to move, in check\n", turn)
	default:
		fmt.Fprintf(c.out, "%s to move\n", turn)
	}
	return status
}

func (c *Console) printHistory() {
	fmt.Fprintln(c.out, strings.Join(notation.HistorySAN(c.game), " "))
}

func (c *Console) handlePerft(args []string) error {
	depth := 3
	if len(args) > 0 {
		var err error
		depth, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("perft: invalid depth %q", args[0])
		}
	}

	start := time.Now()
	entries, nodes, err := perft.Divide(context.Background(), c.game, depth, c.workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	for _, e := range entries {
		fmt.Fprintf(c.out, "%s: %d\n", e.Move, e.Nodes)
	}
	fmt.Fprintf(c.out, "Nodes: %d\n", nodes)
	fmt.Fprintf(c.out, "Time: %v\n", elapsed)
	if elapsed > 0 {
		nps := float64(nodes) / elapsed.Seconds()
		fmt.Fprintf(c.out, "NPS: %.0f\n", nps)
	}
	return nil
}

var errNoStorage = errors.New("no database open")

func (c *Console) idArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return c.gameID
}

func (c *Console) handleSave(args []string) error {
	if c.store == nil {
		return errNoStorage
	}
	id := c.idArg(args)
	if err := c.store.SaveGame(storage.SnapshotOf(id, c.game)); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "saved %s\n", id)
	return nil
}

func (c *Console) handleLoad(args []string) error {
	if c.store == nil {
		return errNoStorage
	}
	id := c.idArg(args)
	snap, err := c.store.LoadGame(id)
	if err != nil {
		return err
	}
	g, err := snap.Restore()
	if err != nil {
		return err
	}
	c.game = g
	fmt.Fprintf(c.out, "loaded %s (%d moves played)\n", id, len(snap.Moves))
	return nil
}

func (c *Console) handleDelete(args []string) error {
	if c.store == nil {
		return errNoStorage
	}
	if len(args) == 0 {
		return errors.New("delete: missing game id")
	}
	if err := c.store.DeleteGame(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "deleted %s\n", args[0])
	return nil
}

func (c *Console) handleList() error {
	if c.store == nil {
		return errNoStorage
	}
	ids, err := c.store.ListGames()
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Fprintln(c.out, id)
	}
	return nil
}

func (c *Console) handleStats() error {
	if c.store == nil {
		return errNoStorage
	}
	stats, err := c.store.LoadStats()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "finished %d, white wins %d, black wins %d, stalemates %d\n",
		stats.GamesFinished, stats.WhiteWins, stats.BlackWins, stats.Stalemates)
	return nil
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `commands:
  e2e4, a7a8q, Nf3, exd5  play a move
  moves [square]          list legal moves
  board | fen | status    show the position
  history                 list moves played
  new                     start over
  position startpos|fen <fen> [moves ...]
  perft [depth]           count leaf nodes
  save [id] | load [id] | delete <id> | list | stats
  quit
`)
}

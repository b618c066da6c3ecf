// Command perft prints per-move leaf counts for a position.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/pprof"
	"time"

	"github.com/hailam/chesscore/internal/game"
	"github.com/hailam/chesscore/internal/perft"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	fen        = flag.String("fen", game.StartFEN, "position to count from")
	depth      = flag.Int("depth", 4, "search depth in plies")
	workers    = flag.Int("workers", 0, "goroutines splitting the root moves (0: GOMAXPROCS)")
)

func main() {
	flag.Parse()

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	g, err := game.ParseFEN(*fen)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	entries, nodes, err := perft.Divide(ctx, g, *depth, *workers)
	if err != nil {
		log.Printf("perft: %v", err)
		return
	}
	elapsed := time.Since(start)

	for _, e := range entries {
		fmt.Printf("%s: %d\n", e.Move, e.Nodes)
	}
	fmt.Printf("\nNodes: %d\n", nodes)
	fmt.Printf("Time: %v\n", elapsed)
	if elapsed > 0 {
		fmt.Printf("NPS: %.0f\n", float64(nodes)/elapsed.Seconds())
	}
}

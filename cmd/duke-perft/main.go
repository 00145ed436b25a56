// duke-perft is a rules-engine debugging tool: it counts the action trees
// reachable from a starting position to a given depth. See:
// https://www.chessprogramming.org/Perft_Results for the chess analogue
// this tool's shape is borrowed from.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/610th/rusty-duke/pkg/board"
	"github.com/seekerror/logw"
)

var (
	depth  = flag.Int("depth", 4, "Search depth")
	divide = flag.Bool("divide", false, "Divide counts by initial action")
	seed   = flag.Int64("seed", 1, "RNG seed for bag draws")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	state := board.NewGameWithRNG(rand.New(rand.NewSource(*seed)))

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := search(state, i, *divide && i == *depth)
		duration := time.Since(start)

		logw.Infof(ctx, "perft,%v,%v,%v", i, nodes, duration.Microseconds())
	}
}

func search(state *board.GameState, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, a := range board.GetActions(state) {
		next := board.DoUnsafeActionCopy(state, a)
		count := search(next, depth-1, false)
		if d {
			fmt.Printf("%v: %v\n", a, count)
		}
		nodes += count
	}
	return nodes
}

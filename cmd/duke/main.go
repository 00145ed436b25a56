package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/610th/rusty-duke/pkg/engine"
	"github.com/610th/rusty-duke/pkg/engine/console"
)

var (
	depth    = flag.Int("depth", 0, "Search depth limit (zero defers to -duration, or 4 if neither is set)")
	duration = flag.Int("duration", 0, "Search wall-clock budget in milliseconds (zero if unbounded)")
	seed     = flag.Int64("seed", 0, "RNG seed for bag draws (zero for a time-derived seed)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: duke [options]

duke is a console driver for the Duke board game rules engine and
search agent.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "duke", "rusty-duke",
		engine.WithOptions(engine.Options{
			Depth:    *depth,
			Duration: time.Duration(*duration) * time.Millisecond,
		}),
		engine.WithSeed(*seed),
	)

	in := engine.ReadStdinLines(ctx)
	driver, out := console.NewDriver(ctx, e, in)
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()
}

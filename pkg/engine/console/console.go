// Package console implements a line-oriented debugging protocol for the
// Duke engine, analogous in shape to a chess engine's console driver but
// built around the rules engine's Action/GameState types instead of FEN
// and algebraic moves.
package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/610th/rusty-duke/pkg/board"
	"github.com/610th/rusty-duke/pkg/engine"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

const ProtocolName = "console"

// Driver implements a console driver for debugging.
type Driver struct {
	iox.AsyncCloser

	e *engine.Engine

	out chan<- string

	active atomic.Bool // analyze in progress
}

// NewDriver starts a console driver that reads commands from in and writes
// output lines to the returned channel, until in is closed or a quit
// command is received.
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		out:         out,
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized")

	d.out <- fmt.Sprintf("engine %v (%v)", d.e.Name(), d.e.Author())
	d.printBoard(ctx)

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			parts := strings.Split(strings.TrimSpace(line), " ")
			if len(parts) == 0 {
				break
			}

			cmd := parts[0]
			args := parts[1:]

			switch strings.ToLower(cmd) {
			case "reset", "r":
				d.e.Reset(ctx)
				d.printBoard(ctx)

			case "print", "p":
				d.printBoard(ctx)

			case "actions", "moves":
				d.printActions(ctx)

			case "go", "analyze", "a":
				// go <color> [depth]
				if len(args) == 0 {
					d.out <- "usage: go <black|white> [depth]"
					break
				}

				color, ok := parseColor(args[0])
				if !ok {
					d.out <- fmt.Sprintf("invalid color: %v", args[0])
					break
				}

				if len(args) > 1 {
					depth, _ := strconv.Atoi(args[1])
					if depth > 0 {
						d.e.SetDepth(depth)
					}
				}

				d.active.Store(true)
				action, found, err := d.e.Analyze(ctx, color)
				d.active.Store(false)

				if err != nil {
					d.out <- fmt.Sprintf("analyze failed: %v", err)
					break
				}
				if !found {
					d.out <- "no legal action"
					break
				}

				d.out <- fmt.Sprintf("bestaction %v", action)
				if err := d.e.Apply(ctx, action); err != nil {
					d.out <- fmt.Sprintf("apply failed: %v", err)
					break
				}
				d.printBoard(ctx)

			case "depth", "d":
				if len(args) > 0 {
					depth, _ := strconv.Atoi(args[0])
					d.e.SetDepth(depth)
				}

			case "time", "t":
				if len(args) > 0 {
					ms, _ := strconv.Atoi(args[0])
					d.e.SetDuration(time.Duration(ms) * time.Millisecond)
				}

			case "apply":
				// apply <index into GetActions>
				if len(args) == 0 {
					d.out <- "usage: apply <index>"
					break
				}
				idx, err := strconv.Atoi(args[0])
				if err != nil {
					d.out <- fmt.Sprintf("invalid index: %v", args[0])
					break
				}

				actions := board.GetActions(d.e.State())
				if idx < 0 || idx >= len(actions) {
					d.out <- fmt.Sprintf("index out of range: %v", idx)
					break
				}
				if err := d.e.Apply(ctx, actions[idx]); err != nil {
					d.out <- fmt.Sprintf("apply failed: %v", err)
					break
				}
				d.printBoard(ctx)

			case "quit", "exit", "q":
				return

			case "":
				// ignore empty command

			default:
				d.out <- fmt.Sprintf("unrecognized command: '%v'", cmd)
			}

		case <-d.Closed():
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

func parseColor(s string) (board.Color, bool) {
	switch strings.ToLower(s) {
	case "black", "b":
		return board.Black, true
	case "white", "w":
		return board.White, true
	default:
		return 0, false
	}
}

func (d *Driver) printActions(ctx context.Context) {
	actions := board.GetActions(d.e.State())
	d.out <- fmt.Sprintf("%v legal actions:", len(actions))
	for i, a := range actions {
		d.out <- fmt.Sprintf(" %2d. %v", i, a)
	}
}

const (
	files      = "    0   1   2   3   4   5"
	horizontal = "  ------------------------"
	vertical   = " | "
)

func (d *Driver) printBoard(ctx context.Context) {
	s := d.e.State()

	d.out <- ""
	d.out <- files
	d.out <- horizontal
	for y := board.Height - 1; y >= 0; y-- {
		var sb strings.Builder
		sb.WriteString(strconv.Itoa(y) + vertical)
		for x := 0; x < board.Width; x++ {
			sq := s.Square(board.Coordinate{X: int8(x), Y: int8(y)})
			sb.WriteString(printSquare(*sq))
			sb.WriteString(vertical)
		}
		d.out <- sb.String()
		d.out <- horizontal
	}
	d.out <- files
	d.out <- ""
	gameOver := "no"
	if w, ok := s.GameOver.V(); ok {
		gameOver = w.String()
	}
	d.out <- fmt.Sprintf("ply: %v, game over: %v", s.Ply, gameOver)
	d.out <- fmt.Sprintf("drawn[black]: %v", s.Drawn[board.Black])
	d.out <- fmt.Sprintf("drawn[white]: %v", s.Drawn[board.White])
	d.out <- ""
}

func printSquare(sq board.Square) string {
	if sq.Tile == nil {
		return "  "
	}
	return printTile(*sq.Tile)
}

func printTile(t board.Tile) string {
	abbrev := tileAbbrev(t.Kind)
	if t.Color == board.White {
		return strings.ToUpper(abbrev)
	}
	return strings.ToLower(abbrev)
}

func tileAbbrev(kind board.TileType) string {
	s := kind.String()
	if len(s) >= 2 {
		return s[:2]
	}
	return s
}

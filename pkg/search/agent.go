// Package search implements the alpha-beta search agent.
package search

import (
	"context"
	"time"

	"github.com/610th/rusty-duke/pkg/board"
	"github.com/610th/rusty-duke/pkg/eval"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Agent plays one color by alpha-beta search. Depth and/or duration must
// be set: depth is a hard ply limit, duration a wall-clock soft cutoff
// checked at the top of each recursive call. If both are set, depth is
// the hard limit and duration the cutoff; if only one is set, the other
// is unbounded.
type Agent struct {
	Color    board.Color
	Depth    lang.Optional[int]
	Duration lang.Optional[time.Duration]
}

// NewAgent returns a new Agent. Panics if neither depth nor duration is
// set.
func NewAgent(color board.Color, depth lang.Optional[int], duration lang.Optional[time.Duration]) *Agent {
	_, hasDepth := depth.V()
	_, hasDuration := duration.V()
	if !hasDepth && !hasDuration {
		panic("search: depth and/or duration has to be set")
	}
	return &Agent{Color: color, Depth: depth, Duration: duration}
}

// GetAction returns the agent's best action from state, or the zero value
// and false if the game is over or the agent (mistakenly) has no legal
// action from this state.
func (a *Agent) GetAction(ctx context.Context, state *board.GameState) (board.Action, bool) {
	runCtx := ctx
	if d, ok := a.Duration.V(); ok {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	if depth, ok := a.Depth.V(); ok {
		action, _ := AlphaBeta(runCtx, a, state, depth, eval.NegInf, eval.Inf, true)
		return action.V()
	}

	// Duration-only: depth is unbounded, so deepen iteratively until the
	// deadline fires, keeping the action returned by the last iteration that
	// returned one. An iteration cut short by the deadline still returns the
	// best root action among the children it scored, and that action
	// replaces the previous depth's.
	var best lang.Optional[board.Action]
	for depth := 1; !contextx.IsCancelled(runCtx); depth++ {
		action, _ := AlphaBeta(runCtx, a, state, depth, eval.NegInf, eval.Inf, true)
		if _, ok := action.V(); ok {
			best = action
		}
	}
	return best.V()
}

package search

import (
	"context"

	"github.com/610th/rusty-duke/pkg/board"
	"github.com/610th/rusty-duke/pkg/eval"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// AlphaBeta implements fail-hard alpha-beta pruning for the agent. Unlike a
// symmetric negamax search, utility is always computed from agent.Color's
// fixed perspective (the score never gets negated across plies) — depth
// parity alone decides whether a node maximizes or minimizes. Pseudo-code:
//
// function alphabeta(node, depth, α, β, maximizing) is
//
//	if deadline passed or depth = 0 or node is terminal then
//	    return utility(agent, node)
//	if maximizing then
//	    value := −∞
//	    for each action, highest move-order priority first do
//	        value := max(value, alphabeta(child, depth−1, α, β, false))
//	        α := max(α, value)
//	        if value ≥ β then break (* β cutoff *)
//	    return value
//	else
//	    value := +∞
//	    for each action, highest move-order priority first do
//	        value := min(value, alphabeta(child, depth−1, α, β, true))
//	        β := min(β, value)
//	        if value ≤ α then break (* α cutoff *)
//	    return value
//
// See: https://en.wikipedia.org/wiki/Alpha%E2%80%93beta_pruning.
func AlphaBeta(ctx context.Context, agent *Agent, state *board.GameState, depth int, alpha, beta eval.Score, maximizing bool) (lang.Optional[board.Action], eval.Score) {
	if contextx.IsCancelled(ctx) {
		return lang.Optional[board.Action]{}, eval.Evaluate(state, agent.Color)
	}
	if depth == 0 || state.IsTerminal() {
		return lang.Optional[board.Action]{}, eval.Evaluate(state, agent.Color)
	}

	moves := NewMoveList(state, board.GetActions(state))

	var best lang.Optional[board.Action]
	var value eval.Score

	if maximizing {
		value = eval.NegInf
		for {
			action, ok := moves.Next()
			if !ok {
				break
			}
			u := tryBranch(ctx, agent, state, action, depth, alpha, beta, false)
			if u > value {
				value = u
				best = lang.Some(action)
				if value > alpha {
					alpha = value
				}
			}
			if value >= beta {
				break
			}
		}
	} else {
		value = eval.Inf
		for {
			action, ok := moves.Next()
			if !ok {
				break
			}
			u := tryBranch(ctx, agent, state, action, depth, alpha, beta, true)
			if u < value {
				value = u
				best = lang.Some(action)
				if value < beta {
					beta = value
				}
			}
			if value <= alpha {
				break
			}
		}
	}

	return best, value
}

// tryBranch evaluates a single candidate action. NewFromBag is a chance
// node: because its outcome involves the random draw, the search does not
// expand it into one child per possible tile. Instead its value is
// approximated as the average tile utility in the bag plus the parent
// state's utility, and the action is never recursed into — this keeps the
// branching factor finite.
func tryBranch(ctx context.Context, agent *Agent, state *board.GameState, action board.Action, depth int, alpha, beta eval.Score, maximizing bool) eval.Score {
	if action.Type == board.NewFromBag {
		bag := state.Bag()
		var sum eval.Score
		for _, t := range bag {
			sum += eval.TileUtility(t.Kind)
		}
		return sum/eval.Score(len(bag)) + eval.Evaluate(state, agent.Color)
	}

	next := board.DoUnsafeActionCopy(state, action)
	_, u := AlphaBeta(ctx, agent, next, depth-1, alpha, beta, maximizing)
	return u
}

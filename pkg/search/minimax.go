package search

import (
	"context"

	"github.com/610th/rusty-duke/pkg/board"
	"github.com/610th/rusty-duke/pkg/eval"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Minimax implements naive, unpruned minimax search. It shares AlphaBeta's
// utility function and NewFromBag chance-node approximation, so property
// tests can assert AlphaBeta returns the same utility as an exhaustive
// search over small trees. Pseudo-code:
//
// function minimax(node, depth, maximizing) is
//
//	if depth = 0 or node is terminal then
//	    return utility(agent, node)
//	if maximizing then
//	    value := −∞
//	    for each action do value := max(value, minimax(child, depth−1, false))
//	    return value
//	else
//	    value := +∞
//	    for each action do value := min(value, minimax(child, depth−1, true))
//	    return value
//
// See: https://en.wikipedia.org/wiki/Minimax.
func Minimax(ctx context.Context, agent *Agent, state *board.GameState, depth int, maximizing bool) (lang.Optional[board.Action], eval.Score) {
	if depth == 0 || state.IsTerminal() {
		return lang.Optional[board.Action]{}, eval.Evaluate(state, agent.Color)
	}

	actions := board.GetActions(state)

	var best lang.Optional[board.Action]
	var value eval.Score
	if maximizing {
		value = eval.NegInf
	} else {
		value = eval.Inf
	}

	for _, action := range actions {
		var u eval.Score
		if action.Type == board.NewFromBag {
			bag := state.Bag()
			var sum eval.Score
			for _, t := range bag {
				sum += eval.TileUtility(t.Kind)
			}
			u = sum/eval.Score(len(bag)) + eval.Evaluate(state, agent.Color)
		} else {
			next := board.DoUnsafeActionCopy(state, action)
			_, u = Minimax(ctx, agent, next, depth-1, !maximizing)
		}

		if maximizing && u > value || !maximizing && u < value {
			value = u
			best = lang.Some(action)
		}
	}

	return best, value
}

// Package eval contains position evaluation logic for the Duke search.
package eval

import (
	"github.com/610th/rusty-duke/pkg/board"
)

// Evaluator is a static position evaluator, relative to a color.
type Evaluator interface {
	// Evaluate returns the position score for color's perspective.
	Evaluate(state *board.GameState, color board.Color) Score
}

// Material is the standard Evaluate implementation: material balance from
// TileUtility plus the checkmate detector and mobility bonus described in
// Evaluate's doc comment.
type Material struct{}

func (Material) Evaluate(state *board.GameState, color board.Color) Score {
	return Evaluate(state, color)
}

const checkMateUtility Score = 100000

// tileUtility holds the precomputed intrinsic value of each tile type,
// populated once at init. The Duke is fixed at 1000; every other tile's
// value sums its front- and back-side action/effect vocabulary
// contributions: Move=1, Slide=2, Jump=3, JumpSlide=4, Command=2, Strike=3
// per action; Dread=1, Defence=3 per effect.
var tileUtility [board.NumTileTypes]Score

func init() {
	for k := board.TileType(0); k < board.NumTileTypes; k++ {
		tileUtility[k] = computeTileUtility(k)
	}
}

// TileUtility returns the precomputed intrinsic value of a tile type.
func TileUtility(kind board.TileType) Score {
	return tileUtility[kind]
}

func computeTileUtility(kind board.TileType) Score {
	if kind == board.Duke {
		return 1000
	}

	var u Score
	front, back := board.Vocabulary(kind)
	u += actionUtility(front) + actionUtility(back)

	efront, eback := board.EffectVocabulary(kind)
	u += effectUtility(efront) + effectUtility(eback)

	return u
}

func actionUtility(actions []board.AvailableAction) Score {
	var u Score
	for _, a := range actions {
		switch a.Kind {
		case board.KindMove:
			u += 1
		case board.KindJump:
			u += 3
		case board.KindJumpSlide:
			u += 4
		case board.KindSlide:
			u += 2
		case board.KindCommand:
			u += 2
		case board.KindStrike:
			u += 3
		}
	}
	return u
}

func effectUtility(effects []board.AvailableEffect) Score {
	var u Score
	for _, e := range effects {
		switch e.Kind {
		case board.Dread:
			u += 1
		case board.Defence:
			u += 3
		}
	}
	return u
}

// Evaluate returns the utility of state for color. High is better for
// color. If the game has already ended, the evaluation collapses to
// +/-1,000,000. Otherwise it is the signed TileUtility balance over every
// tile on the board, adjusted by a checkmate detector (a duke-capturing
// action in the offing is worth +/-100,000 when the threatened duke's side
// is not to move — an immediate mate — and +/-1,000 when it is to move —
// merely being in check), plus a mobility bonus of 5 per spawn square
// available to the side to move.
func Evaluate(state *board.GameState, color board.Color) Score {
	if winner, ok := state.GameOver.V(); ok {
		if winner.Color == color {
			return MaxScore
		}
		return NegInf + 1
	}

	var u Score
	for y := int8(0); y < board.Height; y++ {
		for x := int8(0); x < board.Width; x++ {
			pos := board.Coordinate{X: x, Y: y}
			sq := state.Square(pos)
			if sq.Tile == nil {
				continue
			}

			for _, a := range board.GetTileActions(state, pos) {
				if mate, found := checkMate(state, color, a); found {
					u += mate
					if abs(u) >= checkMateUtility {
						return u
					}
				}
			}

			if sq.Tile.Color == color {
				u += TileUtility(sq.Tile.Kind)
			} else {
				u -= TileUtility(sq.Tile.Kind)
			}
		}
	}

	u += Score(len(board.GetSpawnSquares(state))) * 5

	return u
}

// checkMate inspects a single action for a duke capture and returns the
// checkmate-detector contribution, if the action captures a duke.
func checkMate(state *board.GameState, color board.Color, a board.Action) (Score, bool) {
	if a.Result != board.ResultCapture {
		return 0, false
	}
	target := state.Square(a.TargetPos).Tile
	if target == nil || target.Kind != board.Duke {
		return 0, false
	}

	toMove := state.Ply == color
	if target.Color == color {
		if toMove {
			return -1000, true
		}
		return -checkMateUtility, true
	}
	if toMove {
		return checkMateUtility, true
	}
	return 1000, true
}

func abs(s Score) Score {
	if s < 0 {
		return -s
	}
	return s
}

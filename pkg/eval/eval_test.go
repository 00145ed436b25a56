package eval_test

import (
	"math/rand"
	"testing"

	"github.com/610th/rusty-duke/pkg/board"
	"github.com/610th/rusty-duke/pkg/eval"
	"github.com/stretchr/testify/assert"
)

func TestTileUtilityDuke(t *testing.T) {
	assert.Equal(t, eval.Score(1000), eval.TileUtility(board.Duke))
}

func TestTileUtilityPositiveForOrdinaryTiles(t *testing.T) {
	for k := board.TileType(0); k < board.NumTileTypes; k++ {
		if k == board.Duke {
			continue
		}
		assert.Greaterf(t, eval.TileUtility(k), eval.Score(0), "tile kind %v", k)
	}
}

func TestEvaluateMaterialBalance(t *testing.T) {
	// Equal material on both sides cancels out, leaving only the mobility
	// bonus (the side to move always gets credit for its spawn squares).
	s := board.NewGameWithRNG(rand.New(rand.NewSource(1)))

	own := board.Coordinate{X: 0, Y: 0}
	t1 := board.NewTile(board.Footman, board.Black)
	s.Square(own).Tile = &t1

	opp := board.Coordinate{X: 5, Y: 5}
	t2 := board.NewTile(board.Footman, board.White)
	s.Square(opp).Tile = &t2

	mobility := eval.Score(len(board.GetSpawnSquares(s))) * 5
	assert.Equal(t, mobility, eval.Evaluate(s, board.Black))
}

func TestEvaluateFavorsOwnMaterial(t *testing.T) {
	s := board.NewGameWithRNG(rand.New(rand.NewSource(1)))

	pos := board.Coordinate{X: 0, Y: 0}
	tile := board.NewTile(board.Marshall, board.Black)
	s.Square(pos).Tile = &tile

	assert.Greater(t, eval.Evaluate(s, board.Black), eval.Score(0))
	assert.Less(t, eval.Evaluate(s, board.White), eval.Score(0))
}

func TestEvaluateCheckmateDetector(t *testing.T) {
	// A lone Black Footman poised to capture White's duke next ply: the
	// checkmate detector contributes -1000 from White's own perspective
	// (merely "checked", reversible) and +1000 from Black's perspective
	// ("opponent checked"), a swing of 2000 between the two Evaluate
	// calls on top of whatever the ordinary material/mobility terms add.
	s := board.NewGameWithRNG(rand.New(rand.NewSource(1)))
	s.Ply = board.White

	attacker := board.Coordinate{X: 0, Y: 0}
	a := board.NewTile(board.Footman, board.Black)
	s.Square(attacker).Tile = &a

	dukePos := board.Coordinate{X: 0, Y: 1}
	d := board.NewTile(board.Duke, board.White)
	s.Square(dukePos).Tile = &d

	wScore := eval.Evaluate(s, board.White)
	bScore := eval.Evaluate(s, board.Black)

	assert.Greater(t, bScore, wScore, "the side not under threat should score strictly higher")
}

func TestEvaluateTerminalCollapses(t *testing.T) {
	// Dukes must be deployed through the real PlaceNew path so the drawn
	// queue for White is actually empty; otherwise switchPlyAndCheckTerminal
	// treats White's duke as still recoverable from its drawn queue.
	s := board.NewGameWithRNG(rand.New(rand.NewSource(1)))

	s.Drawn[board.Black] = []board.Tile{board.NewTile(board.Duke, board.Black)}
	s.Ply = board.Black
	board.DoUnsafeAction(s, board.Action{Type: board.PlaceNew, TargetPos: board.Coordinate{X: 2, Y: 4}})

	dukePos := board.Coordinate{X: 0, Y: 1}
	s.Drawn[board.White] = []board.Tile{board.NewTile(board.Duke, board.White)}
	s.Ply = board.White
	board.DoUnsafeAction(s, board.Action{Type: board.PlaceNew, TargetPos: dukePos})

	s.Ply = board.Black
	attacker := board.Coordinate{X: 0, Y: 0}
	a := board.NewTile(board.Footman, board.Black)
	s.Square(attacker).Tile = &a

	board.DoUnsafeAction(s, board.Action{Type: board.Move, TilePos: attacker, TargetPos: dukePos, Result: board.ResultCapture})

	assert.Equal(t, eval.MaxScore, eval.Evaluate(s, board.Black))
	assert.Equal(t, eval.NegInf+1, eval.Evaluate(s, board.White))
}

package board_test

import (
	"math/rand"
	"testing"

	"github.com/610th/rusty-duke/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpeningDeployment(t *testing.T) {
	// S1: opening deployment for Black.
	s := board.NewGameWithRNG(rand.New(rand.NewSource(1)))

	actions := board.GetActions(s)
	require.Len(t, actions, 2)
	assert.Equal(t, board.Action{Type: board.PlaceNew, TargetPos: board.Coordinate{X: 2, Y: 0}}, actions[0])
	assert.Equal(t, board.Action{Type: board.PlaceNew, TargetPos: board.Coordinate{X: 3, Y: 0}}, actions[1])
}

func TestDukePlacedFootmanDrawnNext(t *testing.T) {
	// S2: after PlaceNew((3,0)), drawn[Black] == [Footman, Footman],
	// dukes[Black] == Some((3,0)), ply flips to White, and White's
	// actions begin with PlaceNew((2,5)), PlaceNew((3,5)).
	s := board.NewGameWithRNG(rand.New(rand.NewSource(1)))

	board.DoUnsafeAction(s, board.Action{Type: board.PlaceNew, TargetPos: board.Coordinate{X: 3, Y: 0}})

	require.Equal(t, []board.Tile{board.NewTile(board.Footman, board.Black), board.NewTile(board.Footman, board.Black)}, s.Drawn[board.Black])

	duke, ok := s.DukeOf(board.Black).V()
	require.True(t, ok)
	assert.Equal(t, board.Coordinate{X: 3, Y: 0}, duke)

	assert.Equal(t, board.White, s.Ply)

	actions := board.GetActions(s)
	require.GreaterOrEqual(t, len(actions), 2)
	assert.Equal(t, board.Action{Type: board.PlaceNew, TargetPos: board.Coordinate{X: 2, Y: 5}}, actions[0])
	assert.Equal(t, board.Action{Type: board.PlaceNew, TargetPos: board.Coordinate{X: 3, Y: 5}}, actions[1])
}

func TestFootmanFrontSideMoveSet(t *testing.T) {
	// S3: a lone Black Footman at (2,2) with no effects moves to all four
	// orthogonal neighbors.
	s := board.NewGameWithRNG(rand.New(rand.NewSource(1)))
	pos := board.Coordinate{X: 2, Y: 2}
	tile := board.NewTile(board.Footman, board.Black)
	s.Square(pos).Tile = &tile

	actions := board.GetTileActions(s, pos)

	want := []board.Coordinate{{X: 2, Y: 3}, {X: 3, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 2}}
	require.Len(t, actions, len(want))
	for i, a := range actions {
		assert.Equal(t, board.Move, a.Type)
		assert.Equal(t, board.ResultMove, a.Result)
		assert.Equal(t, pos, a.TilePos)
		assert.Contains(t, want, a.TargetPos)
		_ = i
	}
}

func TestDefenceBlocksSlide(t *testing.T) {
	// S4: a Defence effect on an otherwise clear slide path stops the
	// slide before the defended square; no capture beyond it is produced.
	s := board.NewGameWithRNG(rand.New(rand.NewSource(1)))

	pos := board.Coordinate{X: 0, Y: 0}
	slider := board.NewTile(board.Marshall, board.Black) // front side slides along x
	s.Square(pos).Tile = &slider

	defended := board.Coordinate{X: 3, Y: 0}
	s.Square(defended).AddEffect(board.Defence)

	beyond := board.Coordinate{X: 5, Y: 0}
	victim := board.NewTile(board.Footman, board.White)
	s.Square(beyond).Tile = &victim

	for _, a := range board.GetTileActions(s, pos) {
		if a.Type == board.Slide || a.Type == board.JumpSlide {
			assert.NotEqual(t, beyond, a.TargetPos, "slide must not reach past a defended square")
			assert.NotEqual(t, defended, a.TargetPos, "slide must not land on the defended square itself")
		}
	}
}

func TestGeneralCommand(t *testing.T) {
	// S5: a Black General at (2,2) with a Black Footman at (3,2) produces
	// at least one Command action with tile_pos=(2,2),
	// command_tile_pos=(3,2), target_pos in the General's back-side
	// command-offset set.
	s := board.NewGameWithRNG(rand.New(rand.NewSource(1)))

	generalPos := board.Coordinate{X: 2, Y: 2}
	general := board.NewTile(board.General, board.Black)
	general.Flipped = true // back side carries Command actions
	s.Square(generalPos).Tile = &general

	footmanPos := board.Coordinate{X: 3, Y: 2}
	footman := board.NewTile(board.Footman, board.Black)
	s.Square(footmanPos).Tile = &footman

	var found bool
	for _, a := range board.GetTileActions(s, generalPos) {
		if a.Type == board.Command && a.CommandTilePos == footmanPos {
			found = true
			assert.Equal(t, generalPos, a.TilePos)
		}
	}
	assert.True(t, found, "expected at least one Command action commanding the footman")
}

// deployedDukeGame returns a state with both dukes already deployed (so the
// dukes cache and drawn queues are in the same shape a real game reaches
// after opening deployment), via the real PlaceNew path rather than poking
// unexported state.
func deployedDukeGame(seed int64, blackDuke, whiteDuke board.Coordinate) *board.GameState {
	s := board.NewGameWithRNG(rand.New(rand.NewSource(seed)))

	s.Drawn[board.Black] = []board.Tile{board.NewTile(board.Duke, board.Black)}
	s.Ply = board.Black
	board.DoUnsafeAction(s, board.Action{Type: board.PlaceNew, TargetPos: blackDuke})

	s.Drawn[board.White] = []board.Tile{board.NewTile(board.Duke, board.White)}
	s.Ply = board.White
	board.DoUnsafeAction(s, board.Action{Type: board.PlaceNew, TargetPos: whiteDuke})

	s.Ply = board.Black
	return s
}

func TestDukeCaptureEndsGame(t *testing.T) {
	// S6: applying the only duke-capturing action ends the game and the
	// next GetActions call returns an empty slice.
	s := deployedDukeGame(1, board.Coordinate{X: 2, Y: 4}, board.Coordinate{X: 0, Y: 1})

	attacker := board.Coordinate{X: 0, Y: 0}
	a := board.NewTile(board.Footman, board.Black)
	s.Square(attacker).Tile = &a

	dukePos := board.Coordinate{X: 0, Y: 1}
	capture := board.Action{Type: board.Move, TilePos: attacker, TargetPos: dukePos, Result: board.ResultCapture}
	board.DoUnsafeAction(s, capture)

	require.True(t, s.IsTerminal())
	winner, ok := s.GameOver.V()
	require.True(t, ok)
	assert.Equal(t, board.Black, winner.Color)
	assert.Empty(t, board.GetActions(s))
}

func TestTerminalityAbsorbsAllActions(t *testing.T) {
	s := deployedDukeGame(1, board.Coordinate{X: 2, Y: 4}, board.Coordinate{X: 0, Y: 1})

	attacker := board.Coordinate{X: 0, Y: 0}
	a := board.NewTile(board.Footman, board.Black)
	s.Square(attacker).Tile = &a
	dukePos := board.Coordinate{X: 0, Y: 1}
	board.DoUnsafeAction(s, board.Action{Type: board.Move, TilePos: attacker, TargetPos: dukePos, Result: board.ResultCapture})

	assert.Empty(t, board.GetActions(s))
	assert.Empty(t, board.GetSpawnSquares(s))
	assert.Empty(t, board.GetTileActions(s, dukePos))
}

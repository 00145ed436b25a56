package engine_test

import (
	"context"
	"testing"

	"github.com/610th/rusty-duke/pkg/board"
	"github.com/610th/rusty-duke/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartsAtOpeningDeployment(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "duke", "test", engine.WithSeed(1))

	actions := board.GetActions(e.State())
	require.Len(t, actions, 2)
	assert.Equal(t, board.PlaceNew, actions[0].Type)
}

func TestApplyRejectsIllegalAction(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "duke", "test", engine.WithSeed(1))

	err := e.Apply(ctx, board.Action{Type: board.PlaceNew, TargetPos: board.Coordinate{X: 0, Y: 0}})
	assert.Error(t, err)
}

func TestApplyAcceptsLegalAction(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "duke", "test", engine.WithSeed(1))

	legal := board.GetActions(e.State())[0]
	require.NoError(t, e.Apply(ctx, legal))

	assert.Equal(t, board.White, e.State().Ply)
}

func TestResetReturnsToOpeningDeployment(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "duke", "test", engine.WithSeed(1))

	legal := board.GetActions(e.State())[0]
	require.NoError(t, e.Apply(ctx, legal))

	e.Reset(ctx)
	assert.Equal(t, board.Black, e.State().Ply)
	require.Len(t, board.GetActions(e.State()), 2)
}

func TestAnalyzeReturnsLegalAction(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "duke", "test",
		engine.WithSeed(1),
		engine.WithOptions(engine.Options{Depth: 2}),
	)

	action, ok, err := e.Analyze(ctx, board.Black)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Contains(t, board.GetActions(e.State()), action)
}

package board

import "github.com/seekerror/stdlib/pkg/lang"

// addTileEffects projects the tile at pos's active-side effects onto nearby
// squares.
func addTileEffects(state *GameState, pos Coordinate) {
	sq := state.Square(pos)
	if sq.Tile == nil {
		panic("board: add effects, but no tile")
	}
	for _, e := range sq.Tile.Effects() {
		target := pos.Add(e.Offset)
		if IsLegal(target.X, target.Y) {
			state.Square(target).AddEffect(e.Kind)
		}
	}
}

// clearTileEffects removes one occurrence of each of the tile at pos's
// active-side effect projections from the squares they were projected onto.
func clearTileEffects(state *GameState, pos Coordinate) {
	sq := state.Square(pos)
	if sq.Tile == nil {
		panic("board: clear effects, but no tile")
	}
	for _, e := range sq.Tile.Effects() {
		target := pos.Add(e.Offset)
		if IsLegal(target.X, target.Y) {
			state.Square(target).RemoveEffect(e.Kind)
		}
	}
}

// DoUnsafeAction mutates state by applying action. It assumes action came
// from GetActions(state) (or GetTileActions(state, pos)) for this exact
// state; applying an action from any other state, or one the engine did not
// itself produce, is undefined behavior (hence "unsafe").
func DoUnsafeAction(state *GameState, action Action) {
	switch action.Type {
	case NewFromBag:
		bag := state.Bag()
		idx := state.rng.Intn(len(bag))
		tile := bag[idx]
		bag[idx] = bag[len(bag)-1]
		state.Bags[state.Ply] = bag[:len(bag)-1]
		state.Drawn[state.Ply] = append(state.Drawn[state.Ply], tile)
		// Two-stage turn: ply does not advance and terminal is not
		// evaluated. A PlaceNew for the same side must follow.
		return

	case PlaceNew:
		drawn := state.Drawn[state.Ply]
		tile := drawn[len(drawn)-1]
		state.Drawn[state.Ply] = drawn[:len(drawn)-1]

		if tile.Color != state.Ply {
			panic("board: drawn tile color mismatch")
		}
		if tile.Kind == Duke {
			state.setOwnDuke(action.TargetPos)
		}
		state.Square(action.TargetPos).Tile = &tile
		addTileEffects(state, action.TargetPos)

	case Move, Jump, Slide, JumpSlide:
		applyStandardAction(state, action)

	case Command:
		applyCommandAction(state, action)

	case Strike:
		applyStrikeAction(state, action)

	default:
		panic("board: illegal action type")
	}

	switchPlyAndCheckTerminal(state)
}

// applyStandardAction implements Move/Jump/Slide/JumpSlide: the acting tile
// flips, leaves its source square, and (capturing or not) lands on
// TargetPos with its new-side effects re-projected.
func applyStandardAction(state *GameState, action Action) {
	tile := *state.Square(action.TilePos).Tile
	if tile.Color != state.Ply {
		panic("board: acting tile color mismatch")
	}

	clearTileEffects(state, action.TilePos)
	tile.Flip()
	state.Square(action.TilePos).Tile = nil

	if action.Result == ResultCapture {
		clearTileEffects(state, action.TargetPos)
		captured := *state.Square(action.TargetPos).Tile
		if captured.Kind == Duke {
			state.clearOpponentDuke()
		}
		state.Graveyard = append(state.Graveyard, captured)
	}
	state.Square(action.TargetPos).Tile = &tile

	addTileEffects(state, action.TargetPos)

	if tile.Kind == Duke {
		state.setOwnDuke(action.TargetPos)
	}
}

// applyCommandAction implements Command: the commander (at TilePos) stays
// put but flips; the commanded tile (at CommandTilePos) is reassigned to
// TargetPos without flipping. Both tiles' effects are cleared at their own
// squares first, then re-projected: the commander's at TilePos, the
// commanded tile's at TargetPos. See DESIGN.md's Open Question resolution.
func applyCommandAction(state *GameState, action Action) {
	if state.Square(action.TilePos).Tile.Color != state.Ply {
		panic("board: commander color mismatch")
	}

	commanded := *state.Square(action.CommandTilePos).Tile

	clearTileEffects(state, action.TilePos)
	clearTileEffects(state, action.CommandTilePos)

	state.Square(action.CommandTilePos).Tile = nil

	if action.Result == ResultCapture {
		clearTileEffects(state, action.TargetPos)
		captured := *state.Square(action.TargetPos).Tile
		if captured.Kind == Duke {
			state.clearOpponentDuke()
		}
		state.Graveyard = append(state.Graveyard, captured)
	}
	state.Square(action.TargetPos).Tile = &commanded

	commander := state.Square(action.TilePos).Tile
	commander.Flip()

	addTileEffects(state, action.TilePos)
	addTileEffects(state, action.TargetPos)
}

// applyStrikeAction implements Strike: a ranged capture. The striker never
// moves; it flips in place after the target is removed to the graveyard.
func applyStrikeAction(state *GameState, action Action) {
	if state.Square(action.TilePos).Tile.Color != state.Ply {
		panic("board: striker color mismatch")
	}

	clearTileEffects(state, action.TargetPos)
	captured := *state.Square(action.TargetPos).Tile
	if captured.Kind == Duke {
		state.clearOpponentDuke()
	}
	state.Graveyard = append(state.Graveyard, captured)
	state.Square(action.TargetPos).Tile = nil

	clearTileEffects(state, action.TilePos)
	striker := state.Square(action.TilePos).Tile
	striker.Flip()
	addTileEffects(state, action.TilePos)
}

// switchPlyAndCheckTerminal advances the ply and then evaluates whether the
// new side to move has lost: either its duke is gone and unrecoverable
// (not the next drawn tile), or it simply has no legal actions. The winner
// is always the side not to move once terminal is declared.
func switchPlyAndCheckTerminal(state *GameState) {
	state.Ply = state.Ply.Opponent()

	if _, ok := state.OwnDuke().V(); !ok {
		drawn := state.DrawnQueue()
		recoverable := len(drawn) > 0 && drawn[len(drawn)-1].Kind == Duke
		if !recoverable {
			state.GameOver = lang.Some(Winner{Color: state.Ply.Opponent()})
			return
		}
	} else if len(GetActions(state)) == 0 {
		state.GameOver = lang.Some(Winner{Color: state.Ply.Opponent()})
		return
	}
}

// DoUnsafeActionCopy applies action to a deep copy of state and returns the
// copy, leaving state untouched. This is the primitive the search uses.
func DoUnsafeActionCopy(state *GameState, action Action) *GameState {
	next := state.Clone()
	DoUnsafeAction(next, action)
	return next
}

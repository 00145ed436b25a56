package board

// pathBlocked decides whether an action of the given kind (Move or Jump)
// by a tile of tileColor from start to end is blocked. Walks the squares
// strictly between start and end (exclusive of start, inclusive of end)
// along the direction from start to end.
//
// A Defence effect on any walked square blocks unconditionally. For Move,
// any tile on an interior square blocks; for Jump, interior tiles never
// block (the tile leaps over them). At end, occupation by a same-color tile
// always blocks. Non-straight (L-shaped) paths are blocked only if both
// axis-first candidate routes are blocked.
func pathBlocked(state *GameState, tileColor Color, kind ActionKind, start, end Coordinate) bool {
	dir := GetDirection(start, end)

	if StraightPath(start, end) {
		cur := start
		for {
			cur = Coordinate{X: cur.X + dir.DX, Y: cur.Y + dir.DY}
			sq := state.Square(cur)

			if sq.HasDefence() {
				return true
			}

			if cur != end {
				if kind == KindMove && sq.Tile != nil {
					return true
				}
			} else {
				if sq.Tile != nil && sq.Tile.Color == tileColor {
					return true
				}
				break
			}
		}
		return false
	}

	return nonStraightBlocked(state, tileColor, kind, start, end, dir, true) &&
		nonStraightBlocked(state, tileColor, kind, start, end, dir, false)
}

// nonStraightBlocked walks one axis-first candidate route of an L-shaped
// path (x-then-y, or y-then-x) and reports whether it is blocked.
func nonStraightBlocked(state *GameState, tileColor Color, kind ActionKind, start, end Coordinate, dir direction, xFirst bool) bool {
	cur := start

	for {
		if xFirst {
			cur.X += dir.DX
		} else {
			cur.Y += dir.DY
		}
		sq := state.Square(cur)
		if sq.HasDefence() {
			return true
		}
		if kind == KindMove && sq.Tile != nil {
			return true
		}
		if xFirst && cur.X == end.X || !xFirst && cur.Y == end.Y {
			break
		}
	}

	for {
		if xFirst {
			cur.Y += dir.DY
		} else {
			cur.X += dir.DX
		}
		sq := state.Square(cur)
		if sq.HasDefence() {
			return true
		}

		reachedEnd := (xFirst && cur.Y == end.Y) || (!xFirst && cur.X == end.X)
		if !reachedEnd {
			if kind == KindMove && sq.Tile != nil {
				return true
			}
			continue
		}
		if sq.Tile != nil && sq.Tile.Color == tileColor {
			return true
		}
		return false
	}
}

func getMoveAction(state *GameState, pos Coordinate, tile Tile, target Coordinate) (Action, bool) {
	if pathBlocked(state, tile.Color, KindMove, pos, target) {
		return Action{}, false
	}
	sq := state.Square(target)
	if sq.Tile != nil {
		if sq.Tile.Color == tile.Color {
			return Action{}, false
		}
		return Action{Type: Move, TilePos: pos, TargetPos: target, Result: ResultCapture}, true
	}
	return Action{Type: Move, TilePos: pos, TargetPos: target, Result: ResultMove}, true
}

func getJumpAction(state *GameState, pos Coordinate, tile Tile, target Coordinate) (Action, bool) {
	if pathBlocked(state, tile.Color, KindJump, pos, target) {
		return Action{}, false
	}
	sq := state.Square(target)
	if sq.Tile != nil {
		if sq.Tile.Color == tile.Color {
			return Action{}, false
		}
		return Action{Type: Jump, TilePos: pos, TargetPos: target, Result: ResultCapture}, true
	}
	return Action{Type: Jump, TilePos: pos, TargetPos: target, Result: ResultMove}, true
}

func getStrikeAction(state *GameState, pos Coordinate, tile Tile, target Coordinate) (Action, bool) {
	if pathBlocked(state, tile.Color, KindJump, pos, target) {
		return Action{}, false
	}
	sq := state.Square(target)
	if sq.Tile == nil || sq.Tile.Color == tile.Color {
		return Action{}, false
	}
	return Action{Type: Strike, TilePos: pos, TargetPos: target, Result: ResultCapture}, true
}

// getSlideActions walks the ray in the direction of start (relative to pos)
// until blocked, producing one Slide (or JumpSlide) action per walked
// square. A hostile tile ends the ray with a capturing action; a Defence
// effect ends it with nothing further.
func getSlideActions(state *GameState, pos Coordinate, tile Tile, jumpSlide bool, start Coordinate) []Action {
	var actions []Action

	if jumpSlide && pathBlocked(state, tile.Color, KindJump, pos, start) {
		return actions
	}

	dir := GetDirection(pos, start)
	kind := Slide
	if jumpSlide {
		kind = JumpSlide
	}

	cur := start
	for cur.X >= 0 && cur.X < Width && cur.Y >= 0 && cur.Y < Height {
		sq := state.Square(cur)
		if sq.HasDefence() {
			return actions
		}

		if sq.Tile != nil {
			if sq.Tile.Color != tile.Color {
				actions = append(actions, Action{Type: kind, TilePos: pos, TargetPos: cur, Result: ResultCapture})
			}
			return actions
		}

		actions = append(actions, Action{Type: kind, TilePos: pos, TargetPos: cur, Result: ResultMove})

		cur = Coordinate{X: cur.X + dir.DX, Y: cur.Y + dir.DY}
	}

	return actions
}

// getCommandActions enumerates Command actions for the tile at pos,
// given a candidate commanded-tile square. The candidate squares a
// commanded tile may be sent to are the acting tile's own Command-offset
// squares (not the single candidate offset that discovered the commanded
// tile) — see DESIGN.md's Open Question resolution. Command is never
// blockable by interior tiles or Defence.
func getCommandActions(state *GameState, pos Coordinate, tile Tile, target Coordinate) []Action {
	var actions []Action

	commandSquare := state.Square(target)
	if commandSquare.Tile == nil || commandSquare.Tile.Color != tile.Color {
		return actions
	}

	var commandSquares []Coordinate
	for _, a := range tile.Actions() {
		if a.Kind != KindCommand {
			continue
		}
		c := pos.Add(a.Offset)
		if IsLegal(c.X, c.Y) {
			commandSquares = append(commandSquares, c)
		}
	}

	for _, c := range commandSquares {
		sq := state.Square(c)
		if sq.Tile != nil {
			if sq.Tile.Color != tile.Color {
				actions = append(actions, Action{
					Type: Command, TilePos: pos, CommandTilePos: target, TargetPos: c, Result: ResultCapture,
				})
			}
			continue
		}
		actions = append(actions, Action{
			Type: Command, TilePos: pos, CommandTilePos: target, TargetPos: c, Result: ResultMove,
		})
	}

	return actions
}

// GetSpawnSquares returns the squares on which the side to move may place a
// drawn tile: the two fixed opening squares while its duke is not yet on
// the board (valid only while the next drawn tile is the duke), or
// otherwise the empty orthogonal neighbors of its duke.
func GetSpawnSquares(state *GameState) []Coordinate {
	var squares []Coordinate
	if state.IsTerminal() {
		return squares
	}

	duke, ok := state.OwnDuke().V()
	if !ok {
		drawn := state.DrawnQueue()
		if len(drawn) == 0 || drawn[len(drawn)-1].Kind != Duke {
			panic("board: expected game over")
		}
		if state.Ply == Black {
			return []Coordinate{{X: 2, Y: 0}, {X: 3, Y: 0}}
		}
		return []Coordinate{{X: 2, Y: Height - 1}, {X: 3, Y: Height - 1}}
	}

	tryAdd := func(x, y int8) {
		if IsLegal(x, y) {
			c := Coordinate{X: x, Y: y}
			if state.Square(c).Tile == nil {
				squares = append(squares, c)
			}
		}
	}
	tryAdd(duke.X+1, duke.Y)
	tryAdd(duke.X-1, duke.Y)
	tryAdd(duke.X, duke.Y+1)
	tryAdd(duke.X, duke.Y-1)
	return squares
}

// GetTileActions enumerates the legal actions available to the tile at pos
// this ply. Returns empty if the game is over, pos has no tile, or the
// tile is inhibited by a Dread effect on its own square (dukes are immune).
func GetTileActions(state *GameState, pos Coordinate) []Action {
	var actions []Action
	if state.IsTerminal() {
		return actions
	}

	sq := state.Square(pos)
	if sq.Tile == nil {
		return actions
	}
	tile := *sq.Tile

	if sq.HasDread() && tile.Kind != Duke {
		return actions
	}

	for _, avail := range tile.Actions() {
		target := pos.Add(avail.Offset)
		if !IsLegal(target.X, target.Y) {
			continue
		}

		switch avail.Kind {
		case KindMove:
			if a, ok := getMoveAction(state, pos, tile, target); ok {
				actions = append(actions, a)
			}
		case KindJump:
			if a, ok := getJumpAction(state, pos, tile, target); ok {
				actions = append(actions, a)
			}
		case KindJumpSlide:
			actions = append(actions, getSlideActions(state, pos, tile, true, target)...)
		case KindSlide:
			actions = append(actions, getSlideActions(state, pos, tile, false, target)...)
		case KindCommand:
			actions = append(actions, getCommandActions(state, pos, tile, target)...)
		case KindStrike:
			if a, ok := getStrikeAction(state, pos, tile, target); ok {
				actions = append(actions, a)
			}
		default:
			panic("board: illegal action kind")
		}
	}

	return actions
}

// GetActions enumerates every legal action for the side to move. If that
// side has a tile awaiting deployment, the only legal actions are
// PlaceNew for each spawn square. Otherwise NewFromBag is included when
// both a spawn square and the bag are non-empty, followed by every tile
// action for every one of the side's tiles on the board.
func GetActions(state *GameState) []Action {
	var actions []Action
	if state.IsTerminal() {
		return actions
	}

	spawnSquares := GetSpawnSquares(state)

	if len(state.DrawnQueue()) > 0 {
		if len(spawnSquares) == 0 {
			panic("board: drawn tile but no spawn squares")
		}
		for _, c := range spawnSquares {
			actions = append(actions, Action{Type: PlaceNew, TargetPos: c})
		}
		return actions
	}

	if len(spawnSquares) > 0 && len(state.Bag()) > 0 {
		actions = append(actions, Action{Type: NewFromBag})
	}

	for y := int8(0); y < Height; y++ {
		for x := int8(0); x < Width; x++ {
			pos := Coordinate{X: x, Y: y}
			sq := state.Square(pos)
			if sq.Tile != nil && sq.Tile.Color == state.Ply {
				actions = append(actions, GetTileActions(state, pos)...)
			}
		}
	}

	return actions
}

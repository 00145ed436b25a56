package board

// TileType is the closed enumeration of tile kinds.
type TileType uint8

const (
	Duke TileType = iota
	Footman
	Pikeman
	Knight
	Bowman
	LightHorse
	Wizard
	Seer
	Champion
	Arbalist
	General
	Marshall
	Countess
	Ranger
	Sage
	RoyalAssassin

	// NumTileTypes is the number of tile kinds in the catalog.
	NumTileTypes
)

func (t TileType) String() string {
	switch t {
	case Duke:
		return "duke"
	case Footman:
		return "footman"
	case Pikeman:
		return "pikeman"
	case Knight:
		return "knight"
	case Bowman:
		return "bowman"
	case LightHorse:
		return "light-horse"
	case Wizard:
		return "wizard"
	case Seer:
		return "seer"
	case Champion:
		return "champion"
	case Arbalist:
		return "arbalist"
	case General:
		return "general"
	case Marshall:
		return "marshall"
	case Countess:
		return "countess"
	case Ranger:
		return "ranger"
	case Sage:
		return "sage"
	case RoyalAssassin:
		return "royal-assassin"
	default:
		return "?"
	}
}

// Tile is playable game data: exactly one of a bag, the board, a drawn
// queue, or the graveyard owns it at any moment. It is small, copyable value
// data.
type Tile struct {
	Kind    TileType
	Flipped bool
	Color   Color
}

// NewTile returns a fresh, unflipped tile of the given kind and color.
func NewTile(kind TileType, color Color) Tile {
	return Tile{Kind: kind, Color: color}
}

// Flip toggles which side (front/back) of the tile is active.
func (t *Tile) Flip() {
	t.Flipped = !t.Flipped
}

// Actions returns the tile's active-side vocabulary of available actions,
// resolved for its color (White reads the offset-inverted catalog).
func (t Tile) Actions() []AvailableAction {
	actions := tileActionsFor(t.Color)[t.Kind]
	if t.Flipped {
		return actions.Back
	}
	return actions.Front
}

// Effects returns the tile's active-side vocabulary of projected effects,
// resolved for its color.
func (t Tile) Effects() []AvailableEffect {
	effects := tileEffectsFor(t.Color)[t.Kind]
	if t.Flipped {
		return effects.Back
	}
	return effects.Front
}

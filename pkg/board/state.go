package board

import (
	"math/rand"

	"github.com/seekerror/stdlib/pkg/lang"
)

// GameState is the complete, value-copyable state of a Duke game. Tiles are
// conserved: at any moment each tile is owned by exactly one of the board,
// a bag, a drawn queue, or the graveyard.
type GameState struct {
	Board [Height][Width]Square

	// Bags[c] is the unordered multiset of tiles color c has not yet drawn.
	Bags [NumColors][]Tile

	// Drawn[c] is a LIFO queue of tiles c has pulled from the bag and not
	// yet deployed. Modeled as a slice used as a stack: the tile awaiting
	// placement is the last element.
	Drawn [NumColors][]Tile

	Graveyard []Tile

	Ply Color

	GameOver lang.Optional[Winner]

	// dukes[c] is the cached board coordinate of color c's duke, or absent
	// before deployment / after capture.
	dukes [NumColors]lang.Optional[Coordinate]

	rng *rand.Rand
}

// NewGame returns the bit-exact initial state: empty 6x6 board, Black to
// move, each side's drawn queue seeded with two Footmen and a Duke (the
// Duke is popped first — see DESIGN.md), and each bag holding one of every
// non-duke tile type plus two extra Pikemen. Uses a freshly seeded RNG; use NewGameWithRNG for
// deterministic tests.
func NewGame() *GameState {
	return NewGameWithRNG(rand.New(rand.NewSource(rand.Int63())))
}

// NewGameWithRNG is NewGame with an injected RNG, so the only
// non-determinism in the engine (the bag draw) can be seeded by tests.
func NewGameWithRNG(rng *rand.Rand) *GameState {
	s := &GameState{
		Bags: [NumColors][]Tile{
			initBag(Black),
			initBag(White),
		},
		Drawn: [NumColors][]Tile{
			{NewTile(Footman, Black), NewTile(Footman, Black), NewTile(Duke, Black)},
			{NewTile(Footman, White), NewTile(Footman, White), NewTile(Duke, White)},
		},
		Ply: Black,
		rng: rng,
	}
	return s
}

// initBag returns the 17 tiles (one of each non-duke type, with three
// Pikemen) a color's bag starts with.
func initBag(color Color) []Tile {
	kinds := []TileType{
		Footman,
		Pikeman, Pikeman, Pikeman,
		Knight,
		Bowman,
		LightHorse,
		Wizard,
		Seer,
		Champion,
		Arbalist,
		General,
		Marshall,
		Countess,
		Ranger,
		Sage,
		RoyalAssassin,
	}
	bag := make([]Tile, len(kinds))
	for i, k := range kinds {
		bag[i] = NewTile(k, color)
	}
	return bag
}

// Clone returns a deep, independent copy of the state. The two states share
// no board/bag/drawn/graveyard backing arrays after Clone returns, but they
// do share the RNG: do_unsafe_action_copy in the search tree must still
// draw from one coherent random stream, matching the single injected RNG
// spec §5 calls for.
func (s *GameState) Clone() *GameState {
	c := *s
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			sq := s.Board[y][x]
			if sq.Tile != nil {
				t := *sq.Tile
				sq.Tile = &t
			}
			if sq.Effects != nil {
				sq.Effects = append([]Effect(nil), sq.Effects...)
			}
			c.Board[y][x] = sq
		}
	}
	for i := range s.Bags {
		c.Bags[i] = append([]Tile(nil), s.Bags[i]...)
	}
	for i := range s.Drawn {
		c.Drawn[i] = append([]Tile(nil), s.Drawn[i]...)
	}
	c.Graveyard = append([]Tile(nil), s.Graveyard...)
	return &c
}

// Square returns the square at c.
func (s *GameState) Square(c Coordinate) *Square {
	return &s.Board[c.Y][c.X]
}

// Bag returns the bag for the side to move.
func (s *GameState) Bag() []Tile {
	return s.Bags[s.Ply]
}

// DrawnQueue returns the drawn queue for the side to move.
func (s *GameState) DrawnQueue() []Tile {
	return s.Drawn[s.Ply]
}

// OwnDuke returns the board coordinate of the side-to-move's duke, if any.
func (s *GameState) OwnDuke() lang.Optional[Coordinate] {
	return s.dukes[s.Ply]
}

// OpponentDuke returns the board coordinate of the opponent's duke, if any.
func (s *GameState) OpponentDuke() lang.Optional[Coordinate] {
	return s.dukes[s.Ply.Opponent()]
}

// DukeOf returns the board coordinate of color c's duke, if any.
func (s *GameState) DukeOf(c Color) lang.Optional[Coordinate] {
	return s.dukes[c]
}

func (s *GameState) setOwnDuke(c Coordinate) {
	s.dukes[s.Ply] = lang.Some(c)
}

func (s *GameState) clearOpponentDuke() {
	s.dukes[s.Ply.Opponent()] = lang.Optional[Coordinate]{}
}

// IsTerminal reports whether the game has ended.
func (s *GameState) IsTerminal() bool {
	_, ok := s.GameOver.V()
	return ok
}

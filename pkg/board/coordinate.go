package board

// Width and Height are the fixed dimensions of the Duke board.
const (
	Width  = 6
	Height = 6
)

// Coordinate is a board position (x, y) with 0 <= x < Width, 0 <= y < Height.
type Coordinate struct {
	X, Y int8
}

// IsLegal reports whether (x, y) lies on the board.
func IsLegal(x, y int8) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// NewCoordinate constructs a Coordinate, panicking if it is off-board. Every
// Coordinate in the engine is expected to flow through here or through
// arithmetic that is re-validated with IsLegal before use.
func NewCoordinate(x, y int8) Coordinate {
	if !IsLegal(x, y) {
		panic("board: illegal coordinate")
	}
	return Coordinate{X: x, Y: y}
}

func (c Coordinate) String() string {
	return string(rune('a'+c.X)) + string(rune('1'+c.Y))
}

// Offset is a signed displacement applied to a Coordinate. The result must be
// re-validated with IsLegal before use; Offset carries no legality guarantee
// of its own.
type Offset struct {
	DX, DY int8
}

// Add returns c+o without validating the result.
func (c Coordinate) Add(o Offset) Coordinate {
	return Coordinate{X: c.X + o.DX, Y: c.Y + o.DY}
}

// Invert negates both components of the offset, used to build the
// color-mirrored tile catalog for White.
func (o Offset) Invert() Offset {
	return Offset{DX: -o.DX, DY: -o.DY}
}

// direction is a unit step (-1, 0, or 1 per axis) from start towards end.
type direction struct {
	DX, DY int8
}

// GetDirection returns the unit step from start to end. Only meaningful for
// straight or diagonal paths (see StraightPath); start must not equal end.
func GetDirection(start, end Coordinate) direction {
	d := direction{}
	switch {
	case start.X < end.X:
		d.DX = 1
	case start.X > end.X:
		d.DX = -1
	}
	switch {
	case start.Y < end.Y:
		d.DY = 1
	case start.Y > end.Y:
		d.DY = -1
	}
	return d
}

// StraightPath reports whether the path from start to end is horizontal,
// vertical, or a pure diagonal — the only paths the engine walks square by
// square. L-shaped jump paths are handled separately as two candidate
// straight-then-straight routes.
func StraightPath(start, end Coordinate) bool {
	if start.X == end.X || start.Y == end.Y {
		return true
	}
	dx := int(end.X) - int(start.X)
	dy := int(end.Y) - int(start.Y)
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx == dy
}

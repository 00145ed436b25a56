package board

// Effect is a square-level modifier projected by a nearby tile.
type Effect uint8

const (
	// Dread prevents any non-duke tile on the square from acting at all.
	Dread Effect = iota
	// Defence blocks any action path from passing through or terminating
	// on the square.
	Defence
)

func (e Effect) String() string {
	switch e {
	case Dread:
		return "dread"
	case Defence:
		return "defence"
	default:
		return "?"
	}
}

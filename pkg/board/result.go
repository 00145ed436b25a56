package board

// Winner names the side that won a terminal game. There is no draw outcome
// in Duke: the engine always declares a winner when it detects terminal.
type Winner struct {
	Color Color
}

func (w Winner) String() string {
	return w.Color.String() + " wins"
}

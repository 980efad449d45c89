package game

// Kind identifies what a grid cell currently is.
type Kind uint8

const (
	// Dot is a fixed boundary point. Dots never change.
	Dot Kind = iota
	// Box is an uncaptured 1x1 cell bounded by four spacers.
	Box
	// Spacer is an undrawn edge between two dots.
	Spacer
	// Captured is a box that has been enclosed on all four sides.
	Captured
	// Line is a spacer that has been drawn.
	Line
)

func (k Kind) String() string {
	switch k {
	case Dot:
		return "dot"
	case Box:
		return "box"
	case Spacer:
		return "spacer"
	case Captured:
		return "captured"
	case Line:
		return "line"
	}
	return "unknown"
}

// Slot is one cell of the grid. Line and Captured slots carry the turn that
// produced them; for every other kind Turn is nil. Cell transitions are
// one-way and happen at most once: Spacer to Line, Box to Captured.
type Slot struct {
	Coord Coord
	Kind  Kind
	Turn  *Turn
}

// Occupied reports whether the slot has gone through its one-way transition.
func (s Slot) Occupied() bool {
	return s.Kind == Line || s.Kind == Captured
}

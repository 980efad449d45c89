package game

import "fmt"

// Coord addresses a single cell of the expanded grid. The origin is the
// top-left dot; X grows rightward, Y grows downward.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Classify returns the kind of an unoccupied cell. The classification is
// pure coordinate parity and never depends on board state: dots sit at
// (even, even), boxes at (odd, odd), spacers everywhere else.
func Classify(x, y int) Kind {
	switch {
	case x%2 == 0 && y%2 == 0:
		return Dot
	case x%2 == 1 && y%2 == 1:
		return Box
	default:
		return Spacer
	}
}

// ClassifyOccupied mirrors Classify but returns the occupied variant of
// mutable kinds: Captured in place of Box, Line in place of Spacer.
func ClassifyOccupied(x, y int) Kind {
	switch Classify(x, y) {
	case Box:
		return Captured
	case Spacer:
		return Line
	default:
		return Dot
	}
}

// IsHorizontalSpacer reports whether (x, y) is a spacer lying between two
// horizontally adjacent dots. Horizontal spacers sit on even rows.
func IsHorizontalSpacer(x, y int) bool {
	return Classify(x, y) == Spacer && y%2 == 0
}

// IsVerticalSpacer reports whether (x, y) is a spacer lying between two
// vertically adjacent dots. Vertical spacers sit on even columns.
func IsVerticalSpacer(x, y int) bool {
	return Classify(x, y) == Spacer && x%2 == 0
}

// Config holds the logical dot-grid dimensions of a board: the number of
// dot columns and dot rows, not the expanded cell dimensions.
type Config struct {
	Columns int
	Rows    int
}

// Validate checks that the configuration describes a playable board.
func (c Config) Validate() error {
	if c.Columns < 2 || c.Rows < 2 {
		return fmt.Errorf("board must be at least 2x2 dots, got %dx%d", c.Columns, c.Rows)
	}
	return nil
}

// GridWidth returns the width of the expanded cell grid. The expansion is
// 2n-1 on each axis so the grid always begins and ends on a dot column.
func (c Config) GridWidth() int { return 2*c.Columns - 1 }

// GridHeight returns the height of the expanded cell grid.
func (c Config) GridHeight() int { return 2*c.Rows - 1 }

// Contains reports whether (x, y) lies inside the expanded grid.
func (c Config) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.GridWidth() && y < c.GridHeight()
}

// Coord constructs a bounds-checked coordinate.
func (c Config) Coord(x, y int) (Coord, error) {
	if !c.Contains(x, y) {
		return Coord{}, &CoordError{X: x, Y: y}
	}
	return Coord{X: x, Y: y}, nil
}

// Boxes returns the total number of box cells on a board of this size.
func (c Config) Boxes() int { return (c.Columns - 1) * (c.Rows - 1) }

// Spacers returns the total number of spacer cells on a board of this size.
func (c Config) Spacers() int {
	return c.Columns*(c.Rows-1) + c.Rows*(c.Columns-1)
}

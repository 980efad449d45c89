package game

import "time"

// BoardState is the read-only board view handed to player capabilities.
// It is a value copy: nothing an agent does to it can reach the live board.
type BoardState struct {
	Config           Config
	Slots            []Slot
	SpacersClaimed   int
	SpacersRemaining int
	BoxesClaimed     int
	BoxesRemaining   int
}

// SlotAt returns the snapshotted slot at (x, y).
func (bs BoardState) SlotAt(x, y int) (Slot, bool) {
	if !bs.Config.Contains(x, y) {
		return Slot{}, false
	}
	return bs.Slots[y*bs.Config.GridWidth()+x], true
}

// OpenSpacers returns the coordinates of every undrawn spacer in row-major
// order.
func (bs BoardState) OpenSpacers() []Coord {
	open := make([]Coord, 0, bs.SpacersRemaining)
	for _, slot := range bs.Slots {
		if slot.Kind == Spacer {
			open = append(open, slot.Coord)
		}
	}
	return open
}

// CountSurroundingLines returns the drawn-side count for the box at (x, y),
// or -1 if the coordinate is not a box.
func (bs BoardState) CountSurroundingLines(x, y int) int {
	if !bs.Config.Contains(x, y) || Classify(x, y) != Box {
		return -1
	}
	count := 0
	for _, c := range [4]Coord{{x, y - 1}, {x - 1, y}, {x + 1, y}, {x, y + 1}} {
		if slot, ok := bs.SlotAt(c.X, c.Y); ok && slot.Kind == Line {
			count++
		}
	}
	return count
}

// SessionState is the read-only session view handed to player capabilities.
type SessionState struct {
	// Players is the rotation; the head is the player currently to move.
	Players []Player
	// Turns is a copy of the committed turn log.
	Turns []Turn
	// NextTurnIndex is the index the next committed turn will receive.
	NextTurnIndex int
	// Deadline is the per-turn computation budget.
	Deadline time.Duration
}

// CurrentPlayer returns the rotation head, or the empty player if the
// rotation is empty.
func (ss SessionState) CurrentPlayer() Player {
	if len(ss.Players) == 0 {
		return ""
	}
	return ss.Players[0]
}

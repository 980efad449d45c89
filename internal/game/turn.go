package game

// Player identifies one participant in a match.
type Player string

// Initial returns the character used for this player's captured boxes in
// the debug board rendering.
func (p Player) Initial() rune {
	for _, r := range string(p) {
		return r
	}
	return '?'
}

// Move is a candidate coordinate proposed by a player capability. It is
// legal only if the coordinate classifies as a spacer and the board's slot
// there is still undrawn; the Session checks both before committing.
type Move struct {
	X, Y int
}

// Turn is a committed Move together with the player who made it and its
// position in the append-only turn log. Indexes are zero-based, strictly
// increasing, and never reused.
type Turn struct {
	Player Player
	Move   Move
	Index  int
}

package bot

import (
	rand "math/rand/v2"

	"github.com/dotsforbots/dotsforbots/internal/game"
)

// Greedy is a two-rule heuristic: take any spacer that completes a box
// (earning the extra turn), otherwise prefer a spacer that does not hand
// the opponent a three-sided box. Ties are broken randomly.
type Greedy struct {
	rng *rand.Rand
}

// NewGreedy creates a greedy capability with the given tie-break rng.
func NewGreedy(rng *rand.Rand) *Greedy {
	if rng == nil {
		panic("rng is required for the greedy bot")
	}
	return &Greedy{rng: rng}
}

// ComputeMove implements game.Agent.
func (g *Greedy) ComputeMove(board game.BoardState, _ game.SessionState) (game.Move, bool, error) {
	open := board.OpenSpacers()
	if len(open) == 0 {
		return game.Move{}, false, nil
	}

	var capturing, safe []game.Coord
	for _, c := range open {
		maxSides := 0
		for _, box := range adjacentBoxes(board, c) {
			if n := board.CountSurroundingLines(box.X, box.Y); n > maxSides {
				maxSides = n
			}
		}
		switch {
		case maxSides == 3:
			capturing = append(capturing, c)
		case maxSides < 2:
			// Drawing here leaves every adjacent box at two sides or
			// fewer, so it gifts nothing.
			safe = append(safe, c)
		}
	}

	pool := open
	if len(capturing) > 0 {
		pool = capturing
	} else if len(safe) > 0 {
		pool = safe
	}

	c := pool[g.rng.IntN(len(pool))]
	return game.Move{X: c.X, Y: c.Y}, true, nil
}

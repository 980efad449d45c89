// Package bot provides the built-in player capabilities: a closed set of
// Agent implementations used for matches, simulations and failure-path
// testing.
package bot

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/dotsforbots/dotsforbots/internal/game"
)

// ErrCompute is the failure an Erroring capability raises when it was not
// given a specific one.
var ErrCompute = errors.New("bot: compute refused")

// Strategies lists the capability names resolvable by New.
var Strategies = []string{"random", "greedy", "forfeit", "error"}

// New resolves a strategy name to a capability. Random and greedy need the
// rng; forfeit and error ignore it.
func New(strategy string, rng *rand.Rand) (game.Agent, error) {
	switch strategy {
	case "random":
		return NewRandom(rng), nil
	case "greedy":
		return NewGreedy(rng), nil
	case "forfeit":
		return Forfeiting{}, nil
	case "error":
		return Erroring{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
}

// Fixed always proposes the same move, legal or not. Useful for driving a
// scripted placement or exercising the invalid-placement path.
type Fixed struct {
	Move game.Move
}

// ComputeMove implements game.Agent.
func (f Fixed) ComputeMove(game.BoardState, game.SessionState) (game.Move, bool, error) {
	return f.Move, true, nil
}

// Erroring always fails its computation.
type Erroring struct {
	Err error
}

// ComputeMove implements game.Agent.
func (e Erroring) ComputeMove(game.BoardState, game.SessionState) (game.Move, bool, error) {
	if e.Err != nil {
		return game.Move{}, false, e.Err
	}
	return game.Move{}, false, ErrCompute
}

// Forfeiting always declines to move.
type Forfeiting struct{}

// ComputeMove implements game.Agent.
func (Forfeiting) ComputeMove(game.BoardState, game.SessionState) (game.Move, bool, error) {
	return game.Move{}, false, nil
}

// Random picks uniformly among the open spacers, forfeiting only when the
// board is exhausted.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random capability. The rng is required so play is
// reproducible under an injected seed.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		panic("rng is required for the random bot")
	}
	return &Random{rng: rng}
}

// ComputeMove implements game.Agent.
func (r *Random) ComputeMove(board game.BoardState, _ game.SessionState) (game.Move, bool, error) {
	open := board.OpenSpacers()
	if len(open) == 0 {
		return game.Move{}, false, nil
	}
	c := open[r.rng.IntN(len(open))]
	return game.Move{X: c.X, Y: c.Y}, true, nil
}

// Composite tries its children in order and plays the first legal move any
// of them yields. Children that error, forfeit or propose an occupied cell
// are skipped; if none produces a legal move the composite forfeits.
type Composite struct {
	Children []game.Agent
}

// ComputeMove implements game.Agent.
func (c Composite) ComputeMove(board game.BoardState, session game.SessionState) (game.Move, bool, error) {
	for _, child := range c.Children {
		move, ok, err := child.ComputeMove(board, session)
		if err != nil || !ok {
			continue
		}
		if slot, inBounds := board.SlotAt(move.X, move.Y); inBounds && slot.Kind == game.Spacer {
			return move, true, nil
		}
	}
	return game.Move{}, false, nil
}

// adjacentBoxes returns the box coordinates a spacer borders: two for an
// interior spacer, one on the board edge.
func adjacentBoxes(board game.BoardState, c game.Coord) []game.Coord {
	var candidates [2]game.Coord
	if game.IsHorizontalSpacer(c.X, c.Y) {
		candidates = [2]game.Coord{{X: c.X, Y: c.Y - 1}, {X: c.X, Y: c.Y + 1}}
	} else {
		candidates = [2]game.Coord{{X: c.X - 1, Y: c.Y}, {X: c.X + 1, Y: c.Y}}
	}

	boxes := make([]game.Coord, 0, 2)
	for _, b := range candidates {
		if board.Config.Contains(b.X, b.Y) {
			boxes = append(boxes, b)
		}
	}
	return boxes
}

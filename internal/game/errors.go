package game

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoNextPlayer is returned when a turn is requested from a session whose
// rotation is empty.
var ErrNoNextPlayer = errors.New("no next player in rotation")

// CoordError reports a coordinate outside the configured grid bounds.
type CoordError struct {
	X, Y int
}

func (e *CoordError) Error() string {
	return fmt.Sprintf("coordinate (%d,%d) outside grid bounds", e.X, e.Y)
}

// PlacementError reports an attempt to draw a line somewhere that is not an
// open spacer. It carries the offending turn; the board guarantees no
// mutation happened.
type PlacementError struct {
	Turn Turn
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("invalid placement at (%d,%d) by %s (turn %d)",
		e.Turn.Move.X, e.Turn.Move.Y, e.Turn.Player, e.Turn.Index)
}

// QueryError reports a box query against a coordinate that does not
// classify as a box.
type QueryError struct {
	X, Y int
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("coordinate (%d,%d) is not a box", e.X, e.Y)
}

// ForfeitError reports a player capability that explicitly declined to
// move. Match-fatal.
type ForfeitError struct {
	Player    Player
	TurnIndex int
}

func (e *ForfeitError) Error() string {
	return fmt.Sprintf("player %s forfeited on turn %d", e.Player, e.TurnIndex)
}

// TimeoutError reports a player capability that produced no move within
// the configured deadline. Match-fatal.
type TimeoutError struct {
	Player    Player
	TurnIndex int
	Deadline  time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("player %s exceeded %s deadline on turn %d", e.Player, e.Deadline, e.TurnIndex)
}

// ComputeError reports a player capability that failed outright. The
// underlying failure is preserved for the orchestrator. Match-fatal.
type ComputeError struct {
	Player    Player
	TurnIndex int
	Err       error
}

func (e *ComputeError) Error() string {
	return fmt.Sprintf("player %s compute failed on turn %d: %v", e.Player, e.TurnIndex, e.Err)
}

func (e *ComputeError) Unwrap() error { return e.Err }

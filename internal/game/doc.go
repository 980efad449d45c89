// Package game implements the core Dots and Boxes engine.
//
// The grid is the expanded cell grid derived from a logical dot grid: a
// Config of columns x rows dots becomes a (2*columns-1) x (2*rows-1) array
// of Slots where coordinate parity alone determines what a cell is. Dots sit
// at (even, even), boxes at (odd, odd) and spacers everywhere else. Drawing
// a line converts a spacer slot to a line slot; surrounding a box on all
// four sides converts it to a captured slot credited to the most recent of
// its enclosing lines.
//
// # Basic Usage
//
// Create a board and a session, then drive turns until the session stops:
//
//	board, _ := game.NewBoard(game.Config{Columns: 3, Rows: 3})
//	session, _ := game.NewSession(board, players, agents)
//	for !session.Done() {
//	    turn, err := session.ComputeNextPlayerTurn()
//	    if err != nil {
//	        break // match-fatal, score whatever state exists
//	    }
//	    captures, _ := session.ApplyPlayerTurn(turn)
//	    session.ShiftTurnOrder(captures)
//	}
//	result := game.ComputeResult(session, board)
//
// # Deterministic Testing
//
// Sessions take their timing from a quartz.Clock, so deadline behaviour is
// fully controllable in tests:
//
//	mClock := quartz.NewMock(t)
//	session, _ := game.NewSession(board, players, agents,
//	    game.WithClock(mClock), game.WithDeadline(time.Second))
//
// # Architecture
//
// The Board owns the grid and is the only thing that mutates it. The Session
// owns the player rotation and the turn log, and hands Agents immutable
// BoardState/SessionState snapshots; an Agent can only influence the game by
// returning a Move, which the Session validates before committing. All
// observation happens through the synchronous EventBus.
package game

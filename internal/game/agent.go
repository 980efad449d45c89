package game

// Agent is a player's move-computation capability. Implementations receive
// immutable board and session snapshots and return a candidate move; they
// never touch authoritative state directly.
//
// Returning ok=false is an explicit forfeit. Returning an error surfaces
// verbatim to the session as a compute failure. Both end the match.
type Agent interface {
	ComputeMove(board BoardState, session SessionState) (move Move, ok bool, err error)
}

// AgentFunc adapts a plain function to the Agent interface.
type AgentFunc func(board BoardState, session SessionState) (Move, bool, error)

// ComputeMove implements Agent.
func (f AgentFunc) ComputeMove(board BoardState, session SessionState) (Move, bool, error) {
	return f(board, session)
}

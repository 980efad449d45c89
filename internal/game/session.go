package game

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// DefaultDeadline is the per-turn computation budget used when no deadline
// option is given.
const DefaultDeadline = 100 * time.Millisecond

// Session owns the player rotation and the committed-turn log for one
// match. It drives one external move computation per turn against its
// board, validates and commits the result, and applies the capture-chain
// rule. The first player-facing failure freezes the session; it never
// retries or substitutes a move on a player's behalf.
type Session struct {
	board    *Board
	players  []Player
	agents   map[Player]Agent
	turns    []Turn
	deadline time.Duration
	clock    quartz.Clock
	bus      *EventBus
	logger   *log.Logger
	halted   error
}

// SessionOption configures a Session during creation.
type SessionOption func(*Session)

// WithDeadline sets the per-turn computation budget.
func WithDeadline(d time.Duration) SessionOption {
	return func(s *Session) { s.deadline = d }
}

// WithClock sets the clock used to enforce the deadline. Tests inject a
// quartz mock here.
func WithClock(clock quartz.Clock) SessionOption {
	return func(s *Session) { s.clock = clock }
}

// WithLogger sets the session logger.
func WithLogger(logger *log.Logger) SessionOption {
	return func(s *Session) { s.logger = logger }
}

// WithEventBus sets the event bus shared by the session and its board.
func WithEventBus(bus *EventBus) SessionOption {
	return func(s *Session) { s.bus = bus }
}

// NewSession creates a session over the given board and rotation. Every
// player in the rotation must have an agent. The board's event bus is
// replaced with the session's so placements, captures and turn lifecycle
// events share one ordered stream.
func NewSession(board *Board, players []Player, agents map[Player]Agent, opts ...SessionOption) (*Session, error) {
	if board == nil {
		return nil, fmt.Errorf("session requires a board")
	}

	s := &Session{
		board:    board,
		players:  append([]Player(nil), players...),
		agents:   agents,
		deadline: DefaultDeadline,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.deadline <= 0 {
		return nil, fmt.Errorf("deadline must be positive, got %s", s.deadline)
	}
	for _, p := range s.players {
		if agents[p] == nil {
			return nil, fmt.Errorf("player %s has no agent", p)
		}
	}

	if s.clock == nil {
		s.clock = quartz.NewReal()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.bus == nil {
		s.bus = NewEventBus()
	}
	board.SetEventBus(s.bus)

	return s, nil
}

// EventBus returns the bus carrying this session's notifications.
func (s *Session) EventBus() *EventBus { return s.bus }

// Board returns the board this session drives.
func (s *Session) Board() *Board { return s.board }

// CurrentPlayer returns the rotation head.
func (s *Session) CurrentPlayer() (Player, error) {
	if len(s.players) == 0 {
		return "", ErrNoNextPlayer
	}
	return s.players[0], nil
}

// Players returns a copy of the rotation, head first.
func (s *Session) Players() []Player {
	return append([]Player(nil), s.players...)
}

// Turns returns a copy of the committed turn log.
func (s *Session) Turns() []Turn {
	return append([]Turn(nil), s.turns...)
}

// NextTurnIndex returns the index the next committed turn will receive.
func (s *Session) NextTurnIndex() int { return len(s.turns) }

// Done reports whether the session has stopped advancing, either because a
// terminal failure froze it or because the board has no spacers left.
func (s *Session) Done() bool {
	return s.halted != nil || s.board.SpacersRemaining() == 0
}

// Err returns the terminal failure that froze the session, if any.
func (s *Session) Err() error { return s.halted }

// State returns an immutable snapshot of the session for handing to player
// capabilities.
func (s *Session) State() SessionState {
	return SessionState{
		Players:       s.Players(),
		Turns:         s.Turns(),
		NextTurnIndex: len(s.turns),
		Deadline:      s.deadline,
	}
}

type agentResult struct {
	move Move
	ok   bool
	err  error
}

// ComputeNextPlayerTurn asks the current player's capability for a move,
// racing it against the configured deadline, and validates the candidate.
// On success it returns the built Turn, which the caller is expected to
// commit with ApplyPlayerTurn. Every failure path (timeout, compute error,
// forfeit, illegal candidate) freezes the session and returns a typed
// error; a result arriving after the deadline is discarded, never applied.
func (s *Session) ComputeNextPlayerTurn() (Turn, error) {
	if s.halted != nil {
		return Turn{}, s.halted
	}
	if len(s.players) == 0 {
		return Turn{}, ErrNoNextPlayer
	}

	player := s.players[0]
	index := len(s.turns)
	agent := s.agents[player]

	s.logger.Debug("turn starting", "player", player, "turn", index)
	s.bus.Publish(NewTurnStartEvent(player, index))

	boardState := s.board.State()
	sessionState := s.State()

	// Register the deadline before the computation starts so a mock clock
	// advanced after ComputeMove begins always finds the timer armed.
	timedOut := make(chan struct{})
	timer := s.clock.AfterFunc(s.deadline, func() {
		close(timedOut)
	})
	defer timer.Stop()

	// Buffered so a result that loses the race parks in an abandoned
	// channel instead of reaching the board.
	results := make(chan agentResult, 1)
	go func() {
		move, ok, err := agent.ComputeMove(boardState, sessionState)
		results <- agentResult{move: move, ok: ok, err: err}
	}()

	select {
	case res := <-results:
		return s.resolveResult(player, index, res)

	case <-timedOut:
		s.logger.Warn("player timed out", "player", player, "turn", index, "deadline", s.deadline)
		s.bus.Publish(NewTimeoutEvent(player, index, s.deadline))
		return Turn{}, s.halt(&TimeoutError{Player: player, TurnIndex: index, Deadline: s.deadline})
	}
}

func (s *Session) resolveResult(player Player, index int, res agentResult) (Turn, error) {
	if res.err != nil {
		s.logger.Error("player compute failed", "player", player, "turn", index, "error", res.err)
		s.bus.Publish(NewComputeErrorEvent(player, index, res.err))
		return Turn{}, s.halt(&ComputeError{Player: player, TurnIndex: index, Err: res.err})
	}
	if !res.ok {
		s.logger.Info("player forfeited", "player", player, "turn", index)
		s.bus.Publish(NewForfeitEvent(player, index))
		return Turn{}, s.halt(&ForfeitError{Player: player, TurnIndex: index})
	}

	turn := Turn{Player: player, Move: res.move, Index: index}
	if !s.isLegalMove(res.move) {
		s.logger.Error("player proposed illegal move", "player", player, "turn", index, "move", res.move)
		return Turn{}, s.halt(&PlacementError{Turn: turn})
	}

	s.logger.Debug("move accepted", "player", player, "turn", index, "move", res.move)
	s.bus.Publish(NewMoveEvent(player, index, res.move))
	return turn, nil
}

// isLegalMove checks the candidate both ways: the coordinate must classify
// as a spacer by parity and the board's slot there must still be undrawn.
func (s *Session) isLegalMove(move Move) bool {
	if Classify(move.X, move.Y) != Spacer {
		return false
	}
	slot, err := s.board.SlotAt(move.X, move.Y)
	return err == nil && slot.Kind == Spacer
}

// ApplyPlayerTurn commits a computed turn: draws the line, resolves
// captures, appends to the turn log and publishes the turn-end event.
// Returns the number of boxes the turn captured.
func (s *Session) ApplyPlayerTurn(turn Turn) (int, error) {
	if s.halted != nil {
		return 0, s.halted
	}
	if turn.Index != len(s.turns) {
		return 0, fmt.Errorf("turn index %d out of order, expected %d", turn.Index, len(s.turns))
	}

	if err := s.board.PlaceLine(turn); err != nil {
		return 0, s.halt(err)
	}
	captures := s.board.ApplyCaptures()
	s.turns = append(s.turns, turn)

	s.logger.Debug("turn applied",
		"player", turn.Player,
		"turn", turn.Index,
		"captures", captures,
		"spacers_remaining", s.board.SpacersRemaining())
	s.bus.Publish(NewTurnEndEvent(turn.Player, turn.Index, captures))
	return captures, nil
}

// ShiftTurnOrder advances the rotation after a resolved turn. A capturing
// player keeps the head (the extra-turn rule, chainable for as long as
// captures keep occurring); otherwise the head moves to the tail.
func (s *Session) ShiftTurnOrder(capturesMade int) {
	if capturesMade > 0 || len(s.players) < 2 {
		return
	}
	head := s.players[0]
	copy(s.players, s.players[1:])
	s.players[len(s.players)-1] = head
}

func (s *Session) halt(err error) error {
	s.halted = err
	return err
}

// Package match runs complete Dots and Boxes matches: it wires boards,
// sessions and bot capabilities together from a Config, drives the turn
// loop to termination and classifies the outcome. This is the orchestrator
// role the engine's match-fatal errors are surfaced to.
package match

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/dotsforbots/dotsforbots/internal/bot"
	"github.com/dotsforbots/dotsforbots/internal/game"
	"github.com/dotsforbots/dotsforbots/internal/matchid"
	"github.com/dotsforbots/dotsforbots/internal/randutil"
)

// Outcome classifies how a match ended.
type Outcome string

const (
	// OutcomeCompleted means the board was played out to exhaustion.
	OutcomeCompleted Outcome = "completed"
	// OutcomeForfeit means a player declined to move.
	OutcomeForfeit Outcome = "forfeit"
	// OutcomeTimeout means a player missed the turn deadline.
	OutcomeTimeout Outcome = "timeout"
	// OutcomeComputeError means a player capability failed.
	OutcomeComputeError Outcome = "compute_error"
	// OutcomeIllegalMove means a player proposed an unplayable coordinate.
	OutcomeIllegalMove Outcome = "illegal_move"
)

// MatchResult is the report for one finished match. Scores are computed
// from whatever state existed when the session stopped advancing, so a
// faulted match still carries a meaningful tally.
type MatchResult struct {
	MatchID     string
	Outcome     Outcome
	Result      game.Result
	TurnsPlayed int
	// Faulted names the player responsible for a non-completed outcome.
	Faulted game.Player
	// Err is the session's terminal failure, nil when completed.
	Err error
	// Board is the final board, for rendering.
	Board *game.Board
}

// Runner runs matches sequentially. One runner can be shared across
// concurrent simulations; per-match state lives in the session it builds.
type Runner struct {
	logger *log.Logger
	clock  quartz.Clock
}

// NewRunner creates a match runner. The clock is passed through to every
// session it creates.
func NewRunner(logger *log.Logger, clock quartz.Clock) *Runner {
	return &Runner{logger: logger, clock: clock}
}

// Run plays one match to termination. Player seeds default to the match
// seed offset by seat so two random bots never mirror each other.
func (r *Runner) Run(cfg *Config, seed int64) (*MatchResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	board, err := game.NewBoard(game.Config{Columns: cfg.Match.Columns, Rows: cfg.Match.Rows})
	if err != nil {
		return nil, err
	}

	players := make([]game.Player, 0, len(cfg.Players))
	agents := make(map[game.Player]game.Agent, len(cfg.Players))
	for i, pc := range cfg.Players {
		botSeed := pc.Seed
		if botSeed == 0 {
			botSeed = seed + int64(i)
		}
		agent, err := bot.New(pc.Strategy, randutil.New(botSeed))
		if err != nil {
			return nil, err
		}
		player := game.Player(pc.Name)
		players = append(players, player)
		agents[player] = agent
	}

	id := matchid.Generate()
	logger := r.logger.With("match_id", id)

	session, err := game.NewSession(board, players, agents,
		game.WithDeadline(cfg.Deadline()),
		game.WithClock(r.clock),
		game.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	logger.Debug("match starting",
		"columns", cfg.Match.Columns,
		"rows", cfg.Match.Rows,
		"players", len(players),
		"deadline", cfg.Deadline())

	for !session.Done() {
		turn, err := session.ComputeNextPlayerTurn()
		if err != nil {
			break
		}
		captures, err := session.ApplyPlayerTurn(turn)
		if err != nil {
			break
		}
		session.ShiftTurnOrder(captures)
	}

	outcome, faulted := classify(session.Err())
	result := game.ComputeResult(session, board)

	logger.Info("match finished",
		"outcome", outcome,
		"turns", session.NextTurnIndex(),
		"highest_score", result.HighestScore,
		"win_kind", result.WinKind)

	return &MatchResult{
		MatchID:     id,
		Outcome:     outcome,
		Result:      result,
		TurnsPlayed: session.NextTurnIndex(),
		Faulted:     faulted,
		Err:         session.Err(),
		Board:       board,
	}, nil
}

// classify maps the session's terminal failure onto a match outcome and
// the player at fault.
func classify(err error) (Outcome, game.Player) {
	if err == nil {
		return OutcomeCompleted, ""
	}

	var timeoutErr *game.TimeoutError
	if errors.As(err, &timeoutErr) {
		return OutcomeTimeout, timeoutErr.Player
	}
	var forfeitErr *game.ForfeitError
	if errors.As(err, &forfeitErr) {
		return OutcomeForfeit, forfeitErr.Player
	}
	var computeErr *game.ComputeError
	if errors.As(err, &computeErr) {
		return OutcomeComputeError, computeErr.Player
	}
	var placementErr *game.PlacementError
	if errors.As(err, &placementErr) {
		return OutcomeIllegalMove, placementErr.Turn.Player
	}
	return OutcomeComputeError, ""
}

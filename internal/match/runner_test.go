package match

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotsforbots/dotsforbots/internal/bot"
	"github.com/dotsforbots/dotsforbots/internal/game"
	"github.com/dotsforbots/dotsforbots/internal/matchid"
)

func testRunner() *Runner {
	return NewRunner(log.New(io.Discard), quartz.NewReal())
}

func testConfig(strategies ...string) *Config {
	names := []string{"alice", "bob", "carol", "dave"}
	players := make([]PlayerConfig, len(strategies))
	for i, s := range strategies {
		players[i] = PlayerConfig{Name: names[i], Strategy: s}
	}
	return &Config{
		Match:   Settings{Columns: 3, Rows: 3, DeadlineMS: 1000},
		Players: players,
	}
}

func TestRunCompletedMatch(t *testing.T) {
	res, err := testRunner().Run(testConfig("greedy", "random"), 42)
	require.NoError(t, err)

	assert.NoError(t, matchid.Validate(res.MatchID))
	assert.Equal(t, OutcomeCompleted, res.Outcome)
	assert.NoError(t, res.Err)
	assert.Empty(t, res.Faulted)

	// A 3x3 board has 12 spacers and 4 boxes; a completed match draws
	// every spacer and captures every box.
	assert.Equal(t, 12, res.TurnsPlayed)
	assert.Equal(t, 0, res.Board.SpacersRemaining())
	total := 0
	for _, n := range res.Result.Scores {
		total += n
	}
	assert.Equal(t, 4, total)
	assert.NotEqual(t, game.WinKindNoContest, res.Result.WinKind)
}

func TestRunIsDeterministicUnderSeed(t *testing.T) {
	cfg := testConfig("random", "random")

	first, err := testRunner().Run(cfg, 7)
	require.NoError(t, err)
	second, err := testRunner().Run(cfg, 7)
	require.NoError(t, err)

	assert.Equal(t, first.Result.Scores, second.Result.Scores)
	assert.Equal(t, first.Board.String(), second.Board.String())
}

func TestRunForfeit(t *testing.T) {
	res, err := testRunner().Run(testConfig("forfeit", "random"), 1)
	require.NoError(t, err)

	assert.Equal(t, OutcomeForfeit, res.Outcome)
	assert.Equal(t, game.Player("alice"), res.Faulted)
	assert.Equal(t, 0, res.TurnsPlayed)
	var forfeitErr *game.ForfeitError
	assert.ErrorAs(t, res.Err, &forfeitErr)
}

func TestRunComputeError(t *testing.T) {
	res, err := testRunner().Run(testConfig("error", "random"), 1)
	require.NoError(t, err)

	assert.Equal(t, OutcomeComputeError, res.Outcome)
	assert.Equal(t, game.Player("alice"), res.Faulted)
	assert.ErrorIs(t, res.Err, bot.ErrCompute)
}

func TestRunThreePlayers(t *testing.T) {
	res, err := testRunner().Run(testConfig("greedy", "random", "random"), 99)
	require.NoError(t, err)

	assert.Equal(t, OutcomeCompleted, res.Outcome)
	assert.Len(t, res.Result.Scores, 3)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig("greedy", "random")
	cfg.Match.Columns = 1
	_, err := testRunner().Run(cfg, 1)
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		outcome Outcome
		faulted game.Player
	}{
		{"completed", nil, OutcomeCompleted, ""},
		{"timeout", &game.TimeoutError{Player: "bob"}, OutcomeTimeout, "bob"},
		{"forfeit", &game.ForfeitError{Player: "alice"}, OutcomeForfeit, "alice"},
		{"compute error", &game.ComputeError{Player: "bob", Err: bot.ErrCompute}, OutcomeComputeError, "bob"},
		{"illegal move", &game.PlacementError{Turn: game.Turn{Player: "alice"}}, OutcomeIllegalMove, "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, faulted := classify(tt.err)
			assert.Equal(t, tt.outcome, outcome)
			assert.Equal(t, tt.faulted, faulted)
		})
	}
}

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResult(t *testing.T) {
	tests := []struct {
		name    string
		scores  map[Player]int
		highest int
		winners []Player
		kind    WinKind
	}{
		{
			name:    "singular winner",
			scores:  map[Player]int{"alice": 3, "bob": 1},
			highest: 3,
			winners: []Player{"alice"},
			kind:    WinKindSingular,
		},
		{
			name:    "shared highest score",
			scores:  map[Player]int{"carol": 2, "alice": 2, "bob": 0},
			highest: 2,
			winners: []Player{"alice", "carol"},
			kind:    WinKindMultiple,
		},
		{
			name:    "no boxes captured",
			scores:  map[Player]int{"alice": 0, "bob": 0},
			highest: 0,
			winners: nil,
			kind:    WinKindNoContest,
		},
		{
			name:    "empty scores",
			scores:  map[Player]int{},
			highest: 0,
			winners: nil,
			kind:    WinKindNoContest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewResult(tt.scores)
			assert.Equal(t, tt.highest, result.HighestScore)
			assert.Equal(t, tt.winners, result.WinningPlayers)
			assert.Equal(t, tt.kind, result.WinKind)
		})
	}
}

func TestComputeResultZeroFillsRotation(t *testing.T) {
	s := newTestSession(t, 2, 2, map[Player]Agent{
		"alice": firstOpenAgent,
		"bob":   firstOpenAgent,
	})
	driveToCompletion(t, s)

	result := ComputeResult(s, s.Board())

	// Both rotation players appear even though only one captured.
	require.Contains(t, result.Scores, Player("alice"))
	require.Contains(t, result.Scores, Player("bob"))
	assert.Equal(t, 0, result.Scores["alice"])
	assert.Equal(t, 1, result.Scores["bob"])
	assert.Equal(t, []Player{"bob"}, result.WinningPlayers)
	assert.Equal(t, WinKindSingular, result.WinKind)
}

func TestComputeResultOnOpenBoard(t *testing.T) {
	s := newTestSession(t, 2, 2, map[Player]Agent{
		"alice": firstOpenAgent,
		"bob":   firstOpenAgent,
	})

	result := ComputeResult(s, s.Board())
	assert.Equal(t, WinKindNoContest, result.WinKind)
	assert.Empty(t, result.WinningPlayers)
	assert.Equal(t, map[Player]int{"alice": 0, "bob": 0}, result.Scores)
}

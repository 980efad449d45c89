package game

import "slices"

// WinKind classifies the final score distribution.
type WinKind string

const (
	// WinKindNoContest means no boxes were captured at all.
	WinKindNoContest WinKind = "no_contest"
	// WinKindSingular means exactly one player holds the highest score.
	WinKindSingular WinKind = "singular"
	// WinKindMultiple means the highest score is shared.
	WinKindMultiple WinKind = "multiple"
)

// Result is derived from a finished board and session, never stored. Scores
// covers every player in the rotation, zero-filled for players who captured
// nothing.
type Result struct {
	Scores         map[Player]int
	HighestScore   int
	WinningPlayers []Player
	WinKind        WinKind
}

// ComputeResult tallies captured boxes per player and classifies the
// outcome. It is a pure read of the board and session.
func ComputeResult(session *Session, board *Board) Result {
	scores := make(map[Player]int)
	for _, p := range session.Players() {
		scores[p] = 0
	}
	board.WalkBoxes(func(slot Slot) bool {
		if slot.Kind == Captured && slot.Turn != nil {
			scores[slot.Turn.Player]++
		}
		return true
	})
	return NewResult(scores)
}

// NewResult builds a Result from a score tally. The winning set is every
// player on the highest score; a zero highest score is a no-contest with no
// winners.
func NewResult(scores map[Player]int) Result {
	highest := 0
	for _, n := range scores {
		if n > highest {
			highest = n
		}
	}

	var winners []Player
	if highest > 0 {
		for p, n := range scores {
			if n == highest {
				winners = append(winners, p)
			}
		}
		slices.Sort(winners)
	}

	kind := WinKindNoContest
	switch {
	case highest == 0:
		kind = WinKindNoContest
	case len(winners) == 1:
		kind = WinKindSingular
	default:
		kind = WinKindMultiple
	}

	return Result{
		Scores:         scores,
		HighestScore:   highest,
		WinningPlayers: winners,
		WinKind:        kind,
	}
}

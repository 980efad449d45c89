package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"

	"github.com/dotsforbots/dotsforbots/cmd/dotsforbots/shared"
	"github.com/dotsforbots/dotsforbots/internal/game"
	"github.com/dotsforbots/dotsforbots/internal/match"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	winnerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	faultStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	boardStyle  = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
)

// PlayCmd runs one match from an HCL config file (or defaults) and prints
// the result.
type PlayCmd struct {
	Config string `help:"Path to HCL match config" type:"path" default:"dotsforbots.hcl"`
	Seed   int64  `help:"Seed for deterministic play (0 = time-based)" default:"0"`
	Board  bool   `help:"Print the final board" default:"true" negatable:""`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *PlayCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := match.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runner := match.NewRunner(logger, quartz.NewReal())
	res, err := runner.Run(cfg, seed)
	if err != nil {
		return err
	}

	printMatchResult(res, c.Board)
	return nil
}

func printMatchResult(res *match.MatchResult, showBoard bool) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("Match %s — %s after %d turns", res.MatchID, res.Outcome, res.TurnsPlayed)))

	if showBoard {
		fmt.Println(boardStyle.Render(res.Board.String()))
	}

	players := make([]string, 0, len(res.Result.Scores))
	for p := range res.Result.Scores {
		players = append(players, string(p))
	}
	sort.Strings(players)
	for _, p := range players {
		fmt.Printf("  %-12s %d boxes\n", p, res.Result.Scores[game.Player(p)])
	}

	switch res.Outcome {
	case match.OutcomeCompleted:
		switch len(res.Result.WinningPlayers) {
		case 0:
			fmt.Println("No contest: nobody captured a box")
		case 1:
			fmt.Println(winnerStyle.Render(fmt.Sprintf("Winner: %s with %d boxes", res.Result.WinningPlayers[0], res.Result.HighestScore)))
		default:
			fmt.Println(winnerStyle.Render(fmt.Sprintf("Tie at %d boxes: %v", res.Result.HighestScore, res.Result.WinningPlayers)))
		}
	default:
		fmt.Println(faultStyle.Render(fmt.Sprintf("Match ended early (%s): %v", res.Outcome, res.Err)))
	}
}

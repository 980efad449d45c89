package main

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/dotsforbots/dotsforbots/cmd/dotsforbots/shared"
	"github.com/dotsforbots/dotsforbots/internal/game"
	"github.com/dotsforbots/dotsforbots/internal/match"
)

// SimulateCmd plays many matches concurrently and aggregates the outcomes.
type SimulateCmd struct {
	Config      string `help:"Path to HCL match config" type:"path" default:"dotsforbots.hcl"`
	Count       int    `help:"Number of matches to run" default:"100"`
	Concurrency int    `help:"Concurrent matches (0 = NumCPU)" default:"0"`
	Seed        int64  `help:"Base seed for deterministic simulation (0 = time-based)" default:"0"`
	Debug       bool   `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
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
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	runner := match.NewRunner(logger, quartz.NewReal())
	start := time.Now()

	var mu sync.Mutex
	wins := make(map[game.Player]int)
	ties := 0
	outcomes := make(map[match.Outcome]int)

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i := 0; i < c.Count; i++ {
		// Stride the seed so each match gets a disjoint seed range for
		// its per-seat rngs.
		matchSeed := seed + int64(i)*1000
		g.Go(func() error {
			res, err := runner.Run(cfg, matchSeed)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			outcomes[res.Outcome]++
			if len(res.Result.WinningPlayers) == 1 {
				wins[res.Result.WinningPlayers[0]]++
			} else if len(res.Result.WinningPlayers) > 1 {
				ties++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	elapsed := time.Since(start)
	logger.Info("simulation complete", "matches", c.Count, "elapsed", elapsed)

	fmt.Println(titleStyle.Render(fmt.Sprintf("%d matches in %s", c.Count, elapsed.Round(time.Millisecond))))
	players := make([]string, 0, len(wins))
	for p := range wins {
		players = append(players, string(p))
	}
	sort.Strings(players)
	for _, p := range players {
		n := wins[game.Player(p)]
		fmt.Printf("  %-12s %4d wins (%.1f%%)\n", p, n, 100*float64(n)/float64(c.Count))
	}
	if ties > 0 {
		fmt.Printf("  %-12s %4d (%.1f%%)\n", "ties", ties, 100*float64(ties)/float64(c.Count))
	}
	for outcome, n := range outcomes {
		if outcome != match.OutcomeCompleted {
			fmt.Println(faultStyle.Render(fmt.Sprintf("  %s: %d", outcome, n)))
		}
	}
	return nil
}

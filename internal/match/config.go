package match

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/dotsforbots/dotsforbots/internal/bot"
)

// Config represents a complete match configuration
type Config struct {
	Match   Settings       `hcl:"match,block"`
	Players []PlayerConfig `hcl:"player,block"`
}

// Settings contains match-level configuration
type Settings struct {
	Columns    int    `hcl:"columns,optional"`
	Rows       int    `hcl:"rows,optional"`
	DeadlineMS int    `hcl:"deadline_ms,optional"`
	LogLevel   string `hcl:"log_level,optional"`
}

// PlayerConfig defines one seat in the rotation
type PlayerConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy"`
	Seed     int64  `hcl:"seed,optional"`
}

// DefaultConfig returns the default match configuration
func DefaultConfig() *Config {
	return &Config{
		Match: Settings{
			Columns:    5,
			Rows:       5,
			DeadlineMS: 100,
			LogLevel:   "info",
		},
		Players: []PlayerConfig{
			{Name: "alice", Strategy: "greedy"},
			{Name: "bob", Strategy: "random"},
		},
	}
}

// LoadConfig loads a match configuration from an HCL file. A missing file
// yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Match.Columns == 0 {
		config.Match.Columns = 5
	}
	if config.Match.Rows == 0 {
		config.Match.Rows = 5
	}
	if config.Match.DeadlineMS == 0 {
		config.Match.DeadlineMS = 100
	}
	if config.Match.LogLevel == "" {
		config.Match.LogLevel = "info"
	}
	for i := range config.Players {
		if config.Players[i].Strategy == "" {
			config.Players[i].Strategy = "random"
		}
	}

	return &config, nil
}

// Deadline returns the per-turn computation budget.
func (c *Config) Deadline() time.Duration {
	return time.Duration(c.Match.DeadlineMS) * time.Millisecond
}

// Validate validates the match configuration
func (c *Config) Validate() error {
	if c.Match.Columns < 2 || c.Match.Rows < 2 {
		return fmt.Errorf("board must be at least 2x2 dots, got %dx%d", c.Match.Columns, c.Match.Rows)
	}
	if c.Match.DeadlineMS <= 0 {
		return fmt.Errorf("deadline_ms must be positive, got %d", c.Match.DeadlineMS)
	}
	if len(c.Players) < 2 {
		return fmt.Errorf("at least two players must be configured")
	}

	validStrategies := make(map[string]bool, len(bot.Strategies))
	for _, s := range bot.Strategies {
		validStrategies[s] = true
	}

	seen := map[string]bool{}
	for _, p := range c.Players {
		if p.Name == "" {
			return fmt.Errorf("player name must not be empty")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate player name %q", p.Name)
		}
		seen[p.Name] = true
		if !validStrategies[p.Strategy] {
			return fmt.Errorf("player %s: invalid strategy %s", p.Name, p.Strategy)
		}
	}

	return nil
}

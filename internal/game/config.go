package game

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var levelsYAML []byte

// BonusConfig describes the fruit spawned mid-level.
type BonusConfig struct {
	Kind     string  `yaml:"kind"`
	Value    int     `yaml:"value"`
	Lifespan float64 `yaml:"lifespan"`
}

// LevelConfig is one row of the difficulty table. Speeds are pixels per
// second, durations seconds.
type LevelConfig struct {
	PlayerSpeed           float64            `yaml:"player_speed"`
	GhostSpeed            float64            `yaml:"ghost_speed"`
	FrightenedDuration    float64            `yaml:"frightened_duration"`
	FrightenedSpeedFactor float64            `yaml:"frightened_speed_factor"`
	EatenSpeedFactor      float64            `yaml:"eaten_speed_factor"`
	ScatterDuration       float64            `yaml:"scatter_duration"`
	ChaseDuration         float64            `yaml:"chase_duration"`
	PenDelays             map[string]float64 `yaml:"pen_delays"`
	RespawnPenWait        float64            `yaml:"respawn_pen_wait"`
	Bonus                 BonusConfig        `yaml:"bonus"`
}

// PenDelay returns the pre-exit wait for a ghost by personality name,
// defaulting to zero for personalities the table does not mention.
func (lc LevelConfig) PenDelay(name string) float64 {
	return lc.PenDelays[name]
}

// Config is the per-level difficulty table. The last row applies to every
// level past the end of the table.
type Config struct {
	Levels []LevelConfig `yaml:"levels"`
}

// LoadConfig parses and validates the embedded level table. A malformed
// table cannot be simulated meaningfully, so this fails fast.
func LoadConfig() (*Config, error) {
	return parseConfig(levelsYAML)
}

func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("game: parsing level table: %w", err)
	}
	if len(cfg.Levels) == 0 {
		return nil, fmt.Errorf("game: level table is empty")
	}
	for i, lc := range cfg.Levels {
		if lc.PlayerSpeed <= 0 || lc.GhostSpeed <= 0 {
			return nil, fmt.Errorf("game: level %d: speeds must be positive", i+1)
		}
		if lc.FrightenedDuration < 0 || lc.ScatterDuration <= 0 || lc.ChaseDuration <= 0 {
			return nil, fmt.Errorf("game: level %d: durations must be positive", i+1)
		}
		if lc.FrightenedSpeedFactor <= 0 || lc.EatenSpeedFactor <= 0 {
			return nil, fmt.Errorf("game: level %d: speed factors must be positive", i+1)
		}
		if lc.Bonus.Value < 0 || lc.Bonus.Lifespan < 0 {
			return nil, fmt.Errorf("game: level %d: bonus values must be non-negative", i+1)
		}
	}
	return &cfg, nil
}

// Level returns the table row for a zero-based level index, clamping to the
// last row.
func (c *Config) Level(n int) LevelConfig {
	if n < 0 {
		n = 0
	}
	if n >= len(c.Levels) {
		n = len(c.Levels) - 1
	}
	return c.Levels[n]
}

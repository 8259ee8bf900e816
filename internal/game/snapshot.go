package game

// Snapshot is the read-only view of a round published to renderers and
// spectators. It carries everything needed to draw a frame and nothing that
// lets a consumer reach back into the simulation.
type Snapshot struct {
	Rows         []string              `json:"rows"`
	Collectibles []CollectibleSnapshot `json:"collectibles"`
	Player       PlayerSnapshot        `json:"player"`
	Ghosts       []GhostSnapshot       `json:"ghosts"`
	Bonus        *BonusSnapshot        `json:"bonus,omitempty"`
	Score        int                   `json:"score"`
	Lives        int                   `json:"lives"`
	Level        int                   `json:"level"`
	Phase        string                `json:"phase"`
	LevelClear   bool                  `json:"levelClear"`
	GameOver     bool                  `json:"gameOver"`
}

type CollectibleSnapshot struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Kind string  `json:"kind"`
}

type PlayerSnapshot struct {
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Facing        string  `json:"facing"`
	ChompTimer    float64 `json:"chompTimer"`
	DyingProgress float64 `json:"dyingProgress"`
}

type GhostSnapshot struct {
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	Personality     string  `json:"personality"`
	Mode            string  `json:"mode"`
	FrightRemaining float64 `json:"frightRemaining,omitempty"`
}

type BonusSnapshot struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Kind     string  `json:"kind"`
	TimeLeft float64 `json:"timeLeft"`
}

// Snapshot captures the round's current state.
func (r Round) Snapshot() Snapshot {
	s := Snapshot{
		Rows: r.Grid.Render(),
		Player: PlayerSnapshot{
			X:             r.Player.X,
			Y:             r.Player.Y,
			Facing:        r.Player.Facing.String(),
			ChompTimer:    r.Player.ChompTimer,
			DyingProgress: r.DyingProgress,
		},
		Score:      r.Score,
		Lives:      r.Lives,
		Level:      r.Level + 1,
		Phase:      r.Phase.String(),
		LevelClear: r.LevelClear,
		GameOver:   r.GameOver,
	}
	s.Collectibles = make([]CollectibleSnapshot, 0, len(r.Collectibles))
	for _, c := range r.Collectibles {
		s.Collectibles = append(s.Collectibles, CollectibleSnapshot{X: c.X, Y: c.Y, Kind: c.Kind.String()})
	}
	s.Ghosts = make([]GhostSnapshot, 0, len(r.Ghosts))
	for _, g := range r.Ghosts {
		s.Ghosts = append(s.Ghosts, GhostSnapshot{
			X:               g.X,
			Y:               g.Y,
			Personality:     g.Personality.String(),
			Mode:            g.Mode.String(),
			FrightRemaining: g.FrightTimer,
		})
	}
	if r.BonusActive {
		s.Bonus = &BonusSnapshot{X: r.Bonus.X, Y: r.Bonus.Y, Kind: r.Bonus.Kind, TimeLeft: r.Bonus.TimeLeft}
	}
	return s
}

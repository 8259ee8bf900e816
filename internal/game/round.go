package game

import (
	"math/rand"

	"github.com/sorensenNiels/neurAI-Pac/internal/entities"
	"github.com/sorensenNiels/neurAI-Pac/internal/tilemap"
)

const (
	tileSize    = 16
	agentRadius = tileSize/2 - 2

	dotPoints       = 10
	powerPoints     = 50
	baseGhostPoints = 200
	maxGhostPoints  = 1600

	collisionForgiveness = 2.0

	deathDuration       = 1.1
	respawnFreeze       = 1.5
	celebrationDuration = 2.0

	startingLives = 3

	// maxDelta caps a tick's elapsed time so a stalled host cannot cause
	// catastrophic position skips.
	maxDelta = 0.1
)

// BonusItem is the fruit active on the board, if any.
type BonusItem struct {
	X, Y     float64
	Kind     string
	Value    int
	TimeLeft float64
}

// Round is the full simulation state for one session: one immutable snapshot
// per tick. Advance returns a fresh Round and never mutates its input; the
// caller holds the latest snapshot and replaces it wholesale.
type Round struct {
	Grid   *tilemap.Grid
	Layout tilemap.Layout
	Config *Config

	Player entities.Player
	Ghosts []entities.Ghost

	Collectibles []Collectible
	TotalDots    int
	DotsEaten    int

	Score int
	Lives int
	Level int

	Phase      entities.Mode
	PhaseTimer float64

	Dying         bool
	DyingProgress float64
	FreezeTimer   float64

	LevelClear       bool
	CelebrationTimer float64
	GameOver         bool

	BonusActive  bool
	Bonus        BonusItem
	BonusSpawned int

	GhostCombo int
}

// NewRound builds the starting snapshot for a session.
func NewRound(layout tilemap.Layout, cfg *Config) (Round, error) {
	grid, err := layout.Build(tileSize)
	if err != nil {
		return Round{}, err
	}
	r := Round{
		Grid:   grid,
		Layout: layout,
		Config: cfg,
		Lives:  startingLives,
	}
	r.Collectibles = collectiblesFrom(grid)
	r.TotalDots = len(r.Collectibles)
	r.Phase = entities.ModeScatter
	r.PhaseTimer = cfg.Level(0).ScatterDuration
	r = r.withSpawnPositions()
	return r, nil
}

// Advance runs one simulation tick in the fixed order: player step, tunnel
// wrap, collectible pickup, frighten broadcast, bonus bookkeeping, phase
// timer, ghost steps, collision resolution, terminal conditions. dt at or
// below zero is a true no-op.
func Advance(r Round, intent entities.Direction, dt float64, rng *rand.Rand) Round {
	if dt <= 0 || r.GameOver {
		return r
	}
	if dt > maxDelta {
		dt = maxDelta
	}
	r.Ghosts = append([]entities.Ghost(nil), r.Ghosts...)

	if r.LevelClear {
		r.CelebrationTimer -= dt
		if r.CelebrationTimer <= 0 {
			r = r.nextLevel()
		}
		return r
	}
	if r.Dying {
		r.DyingProgress += dt / deathDuration
		if r.DyingProgress >= 1 {
			r = r.resolveDeath()
		}
		return r
	}
	if r.FreezeTimer > 0 {
		r.FreezeTimer -= dt
		return r
	}

	lvl := r.Config.Level(r.Level)
	env := r.env()

	r.Player = r.Player.Step(intent, dt, env)
	r.Player.X = r.wrapTunnel(r.Player.X, r.Player.Y)

	r = r.pickupCollectibles(lvl)
	r = r.updateBonus(dt, lvl)
	r = r.updatePhase(dt, lvl)

	world := r.world(lvl, env)
	for i := range r.Ghosts {
		g := r.Ghosts[i].Step(world, dt, rng)
		g.X = r.wrapTunnel(g.X, g.Y)
		r.Ghosts[i] = g
	}

	r = r.resolveCollisions(lvl)

	if len(r.Collectibles) == 0 && !r.LevelClear {
		r.LevelClear = true
		r.CelebrationTimer = celebrationDuration
	}
	return r
}

// env exposes the grid to the step functions as a pixel predicate plus clamp
// bounds.
func (r Round) env() entities.Env {
	grid := r.Grid
	return entities.Env{
		TileSize: tileSize,
		Radius:   agentRadius,
		Blocked: func(x, y float64, throughDoor bool) bool {
			pass := tilemap.PassNormal
			if throughDoor {
				pass = tilemap.PassDoor
			}
			return grid.Blocks(x, y, pass)
		},
		MinX:       agentRadius,
		MaxX:       float64(grid.PixelWidth()) - agentRadius,
		MinY:       agentRadius,
		MaxY:       float64(grid.PixelHeight()) - agentRadius,
		TunnelRow:  grid.TunnelRow,
		TunnelMinX: -2 * tileSize,
		TunnelMaxX: float64(grid.PixelWidth()) + 2*tileSize,
	}
}

func (r Round) world(lvl LevelConfig, env entities.Env) entities.World {
	exitX, exitY := r.Grid.CellCenter(r.Layout.PenExit.Col, r.Layout.PenExit.Row)
	entX, entY := r.Grid.CellCenter(r.Layout.PenEntrance.Col, r.Layout.PenEntrance.Row)
	return entities.World{
		Env:                   env,
		PenExitX:              exitX,
		PenExitY:              exitY,
		PenEntranceX:          entX,
		PenEntranceY:          entY,
		Phase:                 r.Phase,
		PlayerX:               r.Player.X,
		PlayerY:               r.Player.Y,
		PlayerFacing:          r.Player.Facing,
		FrightenedSpeedFactor: lvl.FrightenedSpeedFactor,
		EatenSpeedFactor:      lvl.EatenSpeedFactor,
		RespawnPenWait:        lvl.RespawnPenWait,
	}
}

// wrapTunnel teleports an agent crossing a horizontal screen edge on the
// tunnel row to the opposite edge. Off the tunnel row coordinates were
// already clamped by the step function.
func (r Round) wrapTunnel(x, y float64) float64 {
	if int(y)/tileSize != r.Grid.TunnelRow {
		return x
	}
	width := float64(r.Grid.PixelWidth())
	if x < 0 {
		return width - agentRadius
	}
	if x >= width {
		return agentRadius
	}
	return x
}

func (r Round) pickupCollectibles(lvl LevelConfig) Round {
	remaining, picked := Pickup(r.Collectibles, r.Player.X, r.Player.Y, agentRadius)
	r.Collectibles = remaining
	for _, c := range picked {
		r.DotsEaten++
		switch c.Kind {
		case KindPower:
			r.Score += powerPoints
			r = r.frightenGhosts(lvl)
		default:
			r.Score += dotPoints
		}
	}
	return r
}

// frightenGhosts broadcasts the power-pellet override to every ghost in a
// roaming or already-frightened mode. Ghosts in pen, exiting or eaten cannot
// be ambushed mid-transit.
func (r Round) frightenGhosts(lvl LevelConfig) Round {
	for i := range r.Ghosts {
		g := r.Ghosts[i]
		if !g.Mode.Roaming() && g.Mode != entities.ModeFrightened {
			continue
		}
		g.CurrentDir = entities.ReverseDir(g.CurrentDir)
		g.Mode = entities.ModeFrightened
		g.FrightTimer = lvl.FrightenedDuration
		r.Ghosts[i] = g
	}
	r.GhostCombo = 0
	return r
}

func (r Round) updateBonus(dt float64, lvl LevelConfig) Round {
	if r.BonusActive {
		r.Bonus.TimeLeft -= dt
		if r.Bonus.TimeLeft <= 0 {
			r.BonusActive = false
		} else {
			dx, dy := r.Bonus.X-r.Player.X, r.Bonus.Y-r.Player.Y
			reach := float64(agentRadius + tileSize/4)
			if dx*dx+dy*dy <= reach*reach {
				r.Score += r.Bonus.Value
				r.BonusActive = false
			}
		}
	}
	if r.BonusSpawned < 2 && !r.BonusActive && r.TotalDots > 0 {
		threshold := r.TotalDots / 3
		if r.BonusSpawned == 1 {
			threshold = 2 * r.TotalDots / 3
		}
		if r.DotsEaten >= threshold && threshold > 0 {
			x, y := r.Grid.CellCenter(r.Layout.BonusSpawn.Col, r.Layout.BonusSpawn.Row)
			r.Bonus = BonusItem{
				X:        x,
				Y:        y,
				Kind:     lvl.Bonus.Kind,
				Value:    lvl.Bonus.Value,
				TimeLeft: lvl.Bonus.Lifespan,
			}
			r.BonusActive = true
			r.BonusSpawned++
		}
	}
	return r
}

// updatePhase advances the global scatter/chase alternation. The timer holds
// while any ghost is frightened; flipping reverses every roaming ghost, the
// deliberate tell the player can read.
func (r Round) updatePhase(dt float64, lvl LevelConfig) Round {
	for _, g := range r.Ghosts {
		if g.Mode == entities.ModeFrightened {
			return r
		}
	}
	r.PhaseTimer -= dt
	if r.PhaseTimer > 0 {
		return r
	}
	if r.Phase == entities.ModeScatter {
		r.Phase = entities.ModeChase
		r.PhaseTimer = lvl.ChaseDuration
	} else {
		r.Phase = entities.ModeScatter
		r.PhaseTimer = lvl.ScatterDuration
	}
	for i := range r.Ghosts {
		if r.Ghosts[i].Mode.Roaming() {
			r.Ghosts[i].CurrentDir = entities.ReverseDir(r.Ghosts[i].CurrentDir)
		}
	}
	return r
}

// resolveCollisions settles player/ghost contact. All frightened-ghost eat
// events resolve before any lethal check, and at most one death registers
// per tick regardless of how many ghosts are in contact.
func (r Round) resolveCollisions(lvl LevelConfig) Round {
	threshold := float64(2*agentRadius) - collisionForgiveness
	thresholdSq := threshold * threshold

	for i := range r.Ghosts {
		g := r.Ghosts[i]
		if g.Mode != entities.ModeFrightened {
			continue
		}
		if distSq(r.Player.X, r.Player.Y, g.X, g.Y) > thresholdSq {
			continue
		}
		points := baseGhostPoints << r.GhostCombo
		if points > maxGhostPoints {
			points = maxGhostPoints
		}
		r.Score += points
		r.GhostCombo++
		g.Mode = entities.ModeEaten
		g.FrightTimer = 0
		r.Ghosts[i] = g
	}

	for _, g := range r.Ghosts {
		if !g.Mode.Lethal() {
			continue
		}
		if distSq(r.Player.X, r.Player.Y, g.X, g.Y) <= thresholdSq {
			r.Dying = true
			r.DyingProgress = 0
			break
		}
	}
	return r
}

func (r Round) resolveDeath() Round {
	r.Dying = false
	r.DyingProgress = 0
	r.Lives--
	if r.Lives <= 0 {
		r.Lives = 0
		r.GameOver = true
		return r
	}
	r = r.withSpawnPositions()
	r.FreezeTimer = respawnFreeze
	return r
}

// nextLevel starts the following level. A death registered on the tick that
// cleared the board is preempted: the level is won, no life is lost.
func (r Round) nextLevel() Round {
	r.Level++
	r.LevelClear = false
	r.CelebrationTimer = 0
	r.Dying = false
	r.DyingProgress = 0
	r.Collectibles = collectiblesFrom(r.Grid)
	r.TotalDots = len(r.Collectibles)
	r.DotsEaten = 0
	r.BonusActive = false
	r.BonusSpawned = 0
	r.Phase = entities.ModeScatter
	r.PhaseTimer = r.Config.Level(r.Level).ScatterDuration
	r = r.withSpawnPositions()
	r.FreezeTimer = respawnFreeze
	return r
}

// withSpawnPositions resets the player and every ghost to their spawn state
// for the current level. This is the only place agent positions are assigned
// directly rather than through the step functions.
func (r Round) withSpawnPositions() Round {
	lvl := r.Config.Level(r.Level)
	px, py := r.Grid.CellCenter(r.Layout.PlayerSpawn.Col, r.Layout.PlayerSpawn.Row)
	r.Player = entities.Player{
		X:      px,
		Y:      py,
		Facing: entities.DirLeft,
		Speed:  lvl.PlayerSpeed,
	}
	personalities := []entities.Personality{entities.Blinky, entities.Pinky, entities.Inky, entities.Clyde}
	ghosts := make([]entities.Ghost, 0, len(r.Layout.GhostSpawns))
	for i, spawn := range r.Layout.GhostSpawns {
		p := personalities[i%len(personalities)]
		x, y := r.Grid.CellCenter(spawn.Col, spawn.Row)
		hx, hy := r.homeCorner(p)
		ghosts = append(ghosts, entities.Ghost{
			X:           x,
			Y:           y,
			Mode:        entities.ModePen,
			PenTimer:    lvl.PenDelay(p.String()),
			Personality: p,
			Speed:       lvl.GhostSpeed,
			HomeX:       hx,
			HomeY:       hy,
		})
	}
	r.Ghosts = ghosts
	r.GhostCombo = 0
	return r
}

// homeCorner places each personality's scatter target just off one corner of
// the grid. The point need not be reachable; only its distance matters.
func (r Round) homeCorner(p entities.Personality) (float64, float64) {
	w := float64(r.Grid.PixelWidth())
	h := float64(r.Grid.PixelHeight())
	switch p {
	case entities.Blinky:
		return w - 3*tileSize, -2 * tileSize
	case entities.Pinky:
		return 2 * tileSize, -2 * tileSize
	case entities.Inky:
		return w - tileSize, h + 2*tileSize
	case entities.Clyde:
		return tileSize, h + 2*tileSize
	default:
		return w / 2, h / 2
	}
}

func distSq(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

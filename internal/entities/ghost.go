package entities

import (
	"math"
	"math/rand"
)

type Mode int

const (
	ModePen Mode = iota
	ModeExiting
	ModeScatter
	ModeChase
	ModeFrightened
	ModeEaten
)

func (m Mode) String() string {
	switch m {
	case ModePen:
		return "pen"
	case ModeExiting:
		return "exiting"
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	case ModeFrightened:
		return "frightened"
	case ModeEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// Roaming reports whether the mode is scatter or chase, the two modes subject
// to global phase flips and frighten broadcasts.
func (m Mode) Roaming() bool {
	return m == ModeScatter || m == ModeChase
}

// Lethal reports whether contact with the player in this mode kills the
// player. A ghost still emerging through the door is harmless.
func (m Mode) Lethal() bool {
	return m.Roaming()
}

// throughDoor reports whether the ghost-house door is open in this mode.
func (m Mode) throughDoor() bool {
	return m == ModePen || m == ModeExiting || m == ModeEaten
}

// Ghost is one adversary's motion and AI state. Personality is immutable for
// the ghost's lifetime; Mode is driven by timers, waypoint arrival and the
// round's broadcasts.
type Ghost struct {
	X, Y        float64
	CurrentDir  Direction
	Mode        Mode
	FrightTimer float64
	PenTimer    float64
	Personality Personality
	Speed       float64

	// HomeX, HomeY is the fixed scatter-corner target. It may lie outside
	// the grid; only its distance matters.
	HomeX, HomeY float64
}

// World is everything a ghost step may consult beyond its own state.
type World struct {
	Env
	PenExitX, PenExitY         float64
	PenEntranceX, PenEntranceY float64
	Phase                      Mode
	PlayerX, PlayerY           float64
	PlayerFacing               Direction
	FrightenedSpeedFactor      float64
	EatenSpeedFactor           float64
	RespawnPenWait             float64
}

const waypointTolerance = 1.0

// Step advances the ghost by dt seconds. Pen mode only decrements its wait
// timer. Every moving mode shares one procedure: displace, detect tile-centre
// crossings, snap, transition on waypoint arrival, retarget, choose a
// direction and spend the leftover distance in the new direction.
func (g Ghost) Step(w World, dt float64, rng *rand.Rand) Ghost {
	if dt <= 0 {
		return g
	}
	if g.Mode == ModePen {
		g.PenTimer -= dt
		if g.PenTimer <= 0 {
			g.PenTimer = 0
			g.Mode = ModeExiting
			if g.CurrentDir == DirNone {
				g.CurrentDir = DirUp
			}
		}
		return g
	}
	if g.Mode == ModeFrightened {
		g.FrightTimer -= dt
		if g.FrightTimer <= 0 {
			g.FrightTimer = 0
			g.Mode = w.Phase
		}
	}
	if g.CurrentDir == DirNone {
		g.CurrentDir = DirUp
	}

	speed := g.Speed
	switch g.Mode {
	case ModeFrightened:
		speed *= w.FrightenedSpeedFactor
	case ModeEaten:
		speed *= w.EatenSpeedFactor
	}

	remaining := speed * dt
	for i := 0; remaining > 1e-9 && i < 8; i++ {
		dx, dy := DirDelta(g.CurrentDir)
		axis := g.X
		if !Horizontal(g.CurrentDir) {
			axis = g.Y
		}
		centre, ok := nextCenter(axis, dx+dy, w.TileSize)
		if !ok {
			break
		}
		toCentre := math.Abs(centre - axis)
		if toCentre > remaining {
			// No crossing this segment: the pre/post positions do not
			// straddle a centre.
			g.X += dx * remaining
			g.Y += dy * remaining
			remaining = 0
			break
		}
		// Crossed a tile centre: snap both axes, killing float drift.
		remaining -= toCentre
		g.X = w.snapToCenter(g.X + dx*toCentre)
		g.Y = w.snapToCenter(g.Y + dy*toCentre)

		if g.Mode == ModeExiting && near(g.X, g.Y, w.PenExitX, w.PenExitY) {
			g.Mode = w.Phase
		}
		if g.Mode == ModeEaten && near(g.X, g.Y, w.PenEntranceX, w.PenEntranceY) {
			g.Mode = ModePen
			g.PenTimer = w.RespawnPenWait
			return g
		}
		g.CurrentDir = g.chooseDirection(w, rng)
	}
	g.X, g.Y = w.clamp(g.X, g.Y)
	return g
}

// nextCenter finds the first tile-centre coordinate strictly ahead of axis in
// the direction of travel. sign is +1 or -1 (or 0 for no movement).
func nextCenter(axis, sign, tileSize float64) (float64, bool) {
	if sign == 0 {
		return 0, false
	}
	c := math.Floor(axis/tileSize)*tileSize + tileSize/2
	const eps = 1e-9
	if sign > 0 {
		if c <= axis+eps {
			c += tileSize
		}
	} else {
		if c >= axis-eps {
			c -= tileSize
		}
	}
	return c, true
}

func near(x, y, wx, wy float64) bool {
	return math.Abs(x-wx) <= waypointTolerance && math.Abs(y-wy) <= waypointTolerance
}

// chooseDirection picks the ghost's next direction at a tile centre. The
// candidate set excludes the exact reverse and any direction whose one-tile-
// ahead tile blocks under the current mode; a dead end waives the no-reversal
// rule. Non-frightened modes take the candidate closest to the target, ties
// resolving to the fixed order up, down, left, right. Frightened mode drops
// the candidate nearest the player and picks uniformly among the rest.
func (g Ghost) chooseDirection(w World, rng *rand.Rand) Direction {
	door := g.Mode.throughDoor()
	var candidates []Direction
	for _, d := range Directions {
		if IsReverse(g.CurrentDir, d) {
			continue
		}
		dx, dy := DirDelta(d)
		if w.Blocked(g.X+dx*w.TileSize, g.Y+dy*w.TileSize, door) {
			continue
		}
		candidates = append(candidates, d)
	}
	if len(candidates) == 0 {
		return ReverseDir(g.CurrentDir)
	}

	if g.Mode == ModeFrightened {
		danger := -1
		best := math.MaxFloat64
		for i, d := range candidates {
			dx, dy := DirDelta(d)
			dsq := distSq(g.X+dx*w.TileSize, g.Y+dy*w.TileSize, w.PlayerX, w.PlayerY)
			if dsq < best {
				best = dsq
				danger = i
			}
		}
		pool := make([]Direction, 0, len(candidates))
		for i, d := range candidates {
			if i != danger {
				pool = append(pool, d)
			}
		}
		if len(pool) == 0 {
			pool = candidates
		}
		return pool[rng.Intn(len(pool))]
	}

	tx, ty := g.target(w)
	best := candidates[0]
	bestSq := math.MaxFloat64
	for _, d := range candidates {
		dx, dy := DirDelta(d)
		dsq := distSq(g.X+dx*w.TileSize, g.Y+dy*w.TileSize, tx, ty)
		if dsq < bestSq {
			bestSq = dsq
			best = d
		}
	}
	return best
}

// target computes the point the ghost steers toward in its current mode.
func (g Ghost) target(w World) (float64, float64) {
	switch g.Mode {
	case ModeExiting:
		return w.PenExitX, w.PenExitY
	case ModeEaten:
		return w.PenEntranceX, w.PenEntranceY
	case ModeScatter:
		return g.HomeX, g.HomeY
	case ModeChase:
		return chaseTarget(g, w)
	default:
		return w.PlayerX, w.PlayerY
	}
}

func distSq(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

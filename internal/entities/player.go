package entities

// Player is the player's motion state. It is a value; Step returns a new one
// and never mutates its receiver.
type Player struct {
	X, Y       float64
	CurrentDir Direction
	QueuedDir  Direction
	Facing     Direction
	Speed      float64

	// ChompTimer drives the mouth animation and advances only while the
	// player actually moved this tick.
	ChompTimer float64
}

// Step advances the player by dt seconds. Directional intent only ever queues
// a turn: once moving, the player travels autonomously in CurrentDir and
// stops only when blocked. A perpendicular turn is granted after snapping the
// off-axis coordinate to the nearest tile centre, so all probes land inside
// one tile; a same-axis change needs no snap.
func (p Player) Step(intent Direction, dt float64, env Env) Player {
	if dt <= 0 {
		return p
	}
	if intent != DirNone {
		p.QueuedDir = intent
	}
	if p.CurrentDir == DirNone && p.QueuedDir == DirNone {
		// Never started; nothing to do.
		return p
	}

	p = p.applyQueuedTurn(env)
	if p.CurrentDir == DirNone {
		return p
	}

	dx, dy := DirDelta(p.CurrentDir)
	dist := p.Speed * dt
	nx, ny := p.X+dx*dist, p.Y+dy*dist
	// Probe the destination, not the pre-move position: integer tile
	// truncation would otherwise hide an approaching wall when moving in the
	// negative direction.
	if !env.pathClear(nx, ny, p.CurrentDir, false) {
		// Blocked: position unchanged, queued intent retained.
		return p
	}
	px, py := p.X, p.Y
	p.X, p.Y = env.clamp(nx, ny)
	if p.X != px || p.Y != py {
		p.ChompTimer += dt
	}
	return p
}

func (p Player) applyQueuedTurn(env Env) Player {
	q := p.QueuedDir
	if q == DirNone || q == p.CurrentDir {
		return p
	}
	if p.CurrentDir == DirNone {
		// First move of the round: grant only if the path is clear.
		if env.pathClear(p.X, p.Y, q, false) {
			p.CurrentDir = q
			p.Facing = q
			p.QueuedDir = DirNone
		}
		return p
	}
	if SameAxis(q, p.CurrentDir) {
		// Continue or reverse on the same axis; no snap required.
		if env.pathClear(p.X, p.Y, q, false) {
			p.CurrentDir = q
			p.Facing = q
			p.QueuedDir = DirNone
		}
		return p
	}
	// Perpendicular turn: snap the coordinate of the current movement axis
	// before probing, and commit the snapped coordinate on grant.
	if Horizontal(p.CurrentDir) {
		sx := env.snapToCenter(p.X)
		if env.pathClear(sx, p.Y, q, false) {
			p.X = sx
			p.CurrentDir = q
			p.Facing = q
			p.QueuedDir = DirNone
		}
	} else {
		sy := env.snapToCenter(p.Y)
		if env.pathClear(p.X, sy, q, false) {
			p.Y = sy
			p.CurrentDir = q
			p.Facing = q
			p.QueuedDir = DirNone
		}
	}
	return p
}

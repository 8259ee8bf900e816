package entities

import "math"

// Env is the slice of the world an agent step function is allowed to see: a
// pixel-space blocking predicate plus clamp bounds. The round wires Blocked
// to the grid; the step functions never touch the grid directly.
type Env struct {
	TileSize float64
	Radius   float64

	// Blocked reports whether a pixel coordinate is impassable. throughDoor
	// is true for agents allowed past the ghost-house door.
	Blocked func(x, y float64, throughDoor bool) bool

	MinX, MaxX float64
	MinY, MaxY float64

	// On the tunnel row the horizontal clamp widens so the wrap logic, which
	// runs after the step, actually sees an out-of-range coordinate.
	TunnelRow  int
	TunnelMinX float64
	TunnelMaxX float64
}

func (e Env) rowAt(y float64) int {
	return int(math.Floor(y / e.TileSize))
}

// clamp bounds a destination position, honoring the tunnel-row override.
func (e Env) clamp(x, y float64) (float64, float64) {
	minX, maxX := e.MinX, e.MaxX
	if e.rowAt(y) == e.TunnelRow {
		minX, maxX = e.TunnelMinX, e.TunnelMaxX
	}
	if x < minX {
		x = minX
	}
	if x > maxX {
		x = maxX
	}
	if y < e.MinY {
		y = e.MinY
	}
	if y > e.MaxY {
		y = e.MaxY
	}
	return x, y
}

// snapToCenter moves a single-axis coordinate to the nearest tile centre.
func (e Env) snapToCenter(v float64) float64 {
	return math.Floor(v/e.TileSize)*e.TileSize + e.TileSize/2
}

// pathClear tests the three probe points approximating the leading edge of a
// circular body at pos facing dir: directly ahead plus two points offset 45
// degrees either side at radius/sqrt2. The diagonal probes catch corner clips
// a single centre-line probe misses.
func (e Env) pathClear(x, y float64, dir Direction, throughDoor bool) bool {
	dx, dy := DirDelta(dir)
	px, py := -dy, dx // perpendicular
	o := e.Radius / math.Sqrt2
	probes := [3][2]float64{
		{x + dx*e.Radius, y + dy*e.Radius},
		{x + dx*o + px*o, y + dy*o + py*o},
		{x + dx*o - px*o, y + dy*o - py*o},
	}
	for _, p := range probes {
		if e.Blocked(p[0], p[1], throughDoor) {
			return false
		}
	}
	return true
}

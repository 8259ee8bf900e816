package game

import "github.com/sorensenNiels/neurAI-Pac/internal/tilemap"

type CollectibleKind int

const (
	KindDot CollectibleKind = iota
	KindPower
)

func (k CollectibleKind) String() string {
	if k == KindPower {
		return "power"
	}
	return "dot"
}

// Collectible is a dot or power pellet at a tile centre, removable on
// proximity.
type Collectible struct {
	X, Y float64
	Kind CollectibleKind
}

// collectiblesFrom builds one collectible per dot/power tile, positioned at
// the tile centre.
func collectiblesFrom(g *tilemap.Grid) []Collectible {
	var set []Collectible
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			var kind CollectibleKind
			switch g.TileAt(col, row) {
			case tilemap.TileDot:
				kind = KindDot
			case tilemap.TilePower:
				kind = KindPower
			default:
				continue
			}
			x, y := g.CellCenter(col, row)
			set = append(set, Collectible{X: x, Y: y, Kind: kind})
		}
	}
	return set
}

// Pickup removes exactly the collectibles whose centre lies within r of
// (x, y), boundary inclusive. The input slice is never mutated; survivors
// come back in a fresh slice.
func Pickup(set []Collectible, x, y, r float64) (remaining, picked []Collectible) {
	remaining = make([]Collectible, 0, len(set))
	for _, c := range set {
		dx, dy := c.X-x, c.Y-y
		if dx*dx+dy*dy <= r*r {
			picked = append(picked, c)
		} else {
			remaining = append(remaining, c)
		}
	}
	return remaining, picked
}

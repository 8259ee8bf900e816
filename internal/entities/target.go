package entities

// Personality selects a ghost's chase-target rule. It is an open enumeration:
// identity determines the target computation only, never the state machine.
type Personality int

const (
	Blinky Personality = iota
	Pinky
	Inky
	Clyde
)

func (p Personality) String() string {
	switch p {
	case Blinky:
		return "blinky"
	case Pinky:
		return "pinky"
	case Inky:
		return "inky"
	case Clyde:
		return "clyde"
	default:
		return "ghost"
	}
}

// chaseTarget is the per-personality target function for chase mode, looked
// up per tick as a tagged variant rather than through subclassing.
//
//   - blinky aims at the player directly
//   - pinky aims four tiles ahead of the player's facing
//   - inky doubles the vector from itself to a point two tiles ahead of the
//     player, producing flanking pressure
//   - clyde chases directly while more than eight tiles away, then retreats
//     to its scatter corner
func chaseTarget(g Ghost, w World) (float64, float64) {
	switch g.Personality {
	case Pinky:
		dx, dy := DirDelta(w.PlayerFacing)
		return w.PlayerX + dx*4*w.TileSize, w.PlayerY + dy*4*w.TileSize
	case Inky:
		dx, dy := DirDelta(w.PlayerFacing)
		ax := w.PlayerX + dx*2*w.TileSize
		ay := w.PlayerY + dy*2*w.TileSize
		return 2*ax - g.X, 2*ay - g.Y
	case Clyde:
		limit := 8 * w.TileSize
		if distSq(g.X, g.Y, w.PlayerX, w.PlayerY) > limit*limit {
			return w.PlayerX, w.PlayerY
		}
		return g.HomeX, g.HomeY
	default:
		return w.PlayerX, w.PlayerY
	}
}

package entities

type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions is the fixed enumeration order used everywhere a choice between
// directions must be deterministic.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

func DirDelta(d Direction) (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func ReverseDir(d Direction) Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

func IsReverse(a, b Direction) bool {
	return a != DirNone && b == ReverseDir(a)
}

// Horizontal reports whether d moves along the x axis.
func Horizontal(d Direction) bool {
	return d == DirLeft || d == DirRight
}

// SameAxis reports whether two directions share a movement axis, i.e. one is
// the other or its reverse.
func SameAxis(a, b Direction) bool {
	if a == DirNone || b == DirNone {
		return false
	}
	return Horizontal(a) == Horizontal(b)
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

package tilemap

import (
	"fmt"
	"math"
	"strings"
)

type Tile int

const (
	TileFloor Tile = iota
	TileWall
	TileDot
	TilePower
	TileDoor
)

// Passability selects which tiles block motion. Ordinary agents are stopped
// by the ghost-house door; agents inside the house (or returning to it) pass
// through.
type Passability int

const (
	PassNormal Passability = iota
	PassDoor
)

// Point is a grid coordinate in tile units.
type Point struct {
	Col, Row int
}

// Grid is the parsed maze. It never mutates after Parse; eaten collectibles
// are tracked separately by the round.
type Grid struct {
	Width     int
	Height    int
	TileSize  int
	TunnelRow int
	tiles     [][]Tile
}

// Parse converts character rows into a typed grid. Short rows are padded with
// floor. Symbols: '#' wall, '.' dot, 'o' power pellet, '-' door, anything
// else floor.
func Parse(rows []string, tileSize, tunnelRow int) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("tilemap: empty layout")
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("tilemap: tile size must be positive, got %d", tileSize)
	}
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	if width == 0 {
		return nil, fmt.Errorf("tilemap: layout has no columns")
	}
	if tunnelRow < 0 || tunnelRow >= len(rows) {
		return nil, fmt.Errorf("tilemap: tunnel row %d outside layout of %d rows", tunnelRow, len(rows))
	}
	tiles := make([][]Tile, len(rows))
	for y, r := range rows {
		tiles[y] = make([]Tile, width)
		for x := 0; x < width; x++ {
			if x >= len(r) {
				tiles[y][x] = TileFloor
				continue
			}
			switch r[x] {
			case '#':
				tiles[y][x] = TileWall
			case '.':
				tiles[y][x] = TileDot
			case 'o':
				tiles[y][x] = TilePower
			case '-':
				tiles[y][x] = TileDoor
			default:
				tiles[y][x] = TileFloor
			}
		}
	}
	return &Grid{
		Width:     width,
		Height:    len(rows),
		TileSize:  tileSize,
		TunnelRow: tunnelRow,
		tiles:     tiles,
	}, nil
}

// TileAt returns the tile at a grid coordinate. Any out-of-bounds coordinate
// reads as wall, which is what gives the maze border its hard boundary.
func (g *Grid) TileAt(col, row int) Tile {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return TileWall
	}
	return g.tiles[row][col]
}

// Blocks reports whether the tile under a pixel coordinate stops motion for
// the given passability mode. On the tunnel row, pixels left or right of the
// grid are passable so agents can reach the wrap point.
func (g *Grid) Blocks(px, py float64, pass Passability) bool {
	col := int(math.Floor(px / float64(g.TileSize)))
	row := int(math.Floor(py / float64(g.TileSize)))
	if row == g.TunnelRow && (col < 0 || col >= g.Width) {
		return false
	}
	switch g.TileAt(col, row) {
	case TileWall:
		return true
	case TileDoor:
		return pass != PassDoor
	default:
		return false
	}
}

// CellCenter returns the pixel midpoint of a tile.
func (g *Grid) CellCenter(col, row int) (float64, float64) {
	return float64(col*g.TileSize + g.TileSize/2), float64(row*g.TileSize + g.TileSize/2)
}

// CellAt converts a pixel coordinate to the containing grid coordinate.
func (g *Grid) CellAt(px, py float64) (int, int) {
	return int(math.Floor(px / float64(g.TileSize))), int(math.Floor(py / float64(g.TileSize)))
}

// PixelWidth is the maze width in pixels.
func (g *Grid) PixelWidth() int {
	return g.Width * g.TileSize
}

// PixelHeight is the maze height in pixels.
func (g *Grid) PixelHeight() int {
	return g.Height * g.TileSize
}

// Render converts the grid back to its character representation. Parse and
// Render round-trip for every cell.
func (g *Grid) Render() []string {
	rows := make([]string, g.Height)
	for y := 0; y < g.Height; y++ {
		var b strings.Builder
		for x := 0; x < g.Width; x++ {
			switch g.tiles[y][x] {
			case TileWall:
				b.WriteByte('#')
			case TileDot:
				b.WriteByte('.')
			case TilePower:
				b.WriteByte('o')
			case TileDoor:
				b.WriteByte('-')
			default:
				b.WriteByte(' ')
			}
		}
		rows[y] = b.String()
	}
	return rows
}

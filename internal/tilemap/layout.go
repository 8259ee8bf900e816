package tilemap

import "fmt"

// Layout bundles a maze's character rows with the coordinates the simulation
// needs: spawn tiles, the ghost-house waypoints, the bonus spawn tile and the
// tunnel row.
type Layout struct {
	Rows        []string
	TunnelRow   int
	PlayerSpawn Point
	GhostSpawns []Point
	PenExit     Point
	PenEntrance Point
	BonusSpawn  Point
}

var defaultRows = []string{
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o####.#####.##.#####.####o#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.##### ## #####.######",
	"######.##### ## #####.######",
	"######.##          ##.######",
	"######.## ###--### ##.######",
	"######.## #      # ##.######",
	"      .   #      #   .      ",
	"######.## #      # ##.######",
	"######.## ######## ##.######",
	"######.##          ##.######",
	"######.## ######## ##.######",
	"######.## ######## ##.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#.####.#####.##.#####.####.#",
	"#o..##.......  .......##..o#",
	"###.##.##.########.##.##.###",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
}

// DefaultLayout is the classic 28x31 maze.
func DefaultLayout() Layout {
	return Layout{
		Rows:        defaultRows,
		TunnelRow:   14,
		PlayerSpawn: Point{Col: 14, Row: 23},
		GhostSpawns: []Point{
			{Col: 13, Row: 14},
			{Col: 12, Row: 14},
			{Col: 14, Row: 14},
			{Col: 15, Row: 14},
		},
		PenExit:     Point{Col: 13, Row: 11},
		PenEntrance: Point{Col: 13, Row: 14},
		BonusSpawn:  Point{Col: 13, Row: 17},
	}
}

// Build parses the layout and validates its coordinates. A maze that cannot
// place its agents is a configuration error and fails here, at load time.
func (l Layout) Build(tileSize int) (*Grid, error) {
	g, err := Parse(l.Rows, tileSize, l.TunnelRow)
	if err != nil {
		return nil, err
	}
	if len(l.GhostSpawns) == 0 {
		return nil, fmt.Errorf("tilemap: layout has no ghost spawns")
	}
	check := func(name string, p Point, allowDoor bool) error {
		t := g.TileAt(p.Col, p.Row)
		if t == TileWall || (t == TileDoor && !allowDoor) {
			return fmt.Errorf("tilemap: %s at (%d,%d) is not a walkable tile", name, p.Col, p.Row)
		}
		return nil
	}
	if err := check("player spawn", l.PlayerSpawn, false); err != nil {
		return nil, err
	}
	for i, p := range l.GhostSpawns {
		if err := check(fmt.Sprintf("ghost spawn %d", i), p, true); err != nil {
			return nil, err
		}
	}
	if err := check("pen exit", l.PenExit, true); err != nil {
		return nil, err
	}
	if err := check("pen entrance", l.PenEntrance, true); err != nil {
		return nil, err
	}
	if err := check("bonus spawn", l.BonusSpawn, false); err != nil {
		return nil, err
	}
	return g, nil
}

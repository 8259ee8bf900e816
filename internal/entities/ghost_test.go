package entities

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorensenNiels/neurAI-Pac/internal/tilemap"
)

func gridEnv(t *testing.T, rows []string) Env {
	t.Helper()
	g, err := tilemap.Parse(rows, 16, 0)
	require.NoError(t, err)
	return Env{
		TileSize: 16,
		Radius:   6,
		Blocked: func(x, y float64, door bool) bool {
			pass := tilemap.PassNormal
			if door {
				pass = tilemap.PassDoor
			}
			return g.Blocks(x, y, pass)
		},
		MinX:       6,
		MaxX:       float64(g.PixelWidth()) - 6,
		MinY:       6,
		MaxY:       float64(g.PixelHeight()) - 6,
		TunnelRow:  -1,
		TunnelMinX: -32,
		TunnelMaxX: float64(g.PixelWidth()) + 32,
	}
}

// plusRows is a four-way intersection centred on tile (2,2).
var plusRows = []string{
	"#####",
	"## ##",
	"#   #",
	"## ##",
	"#####",
}

// corridorRows is a straight horizontal corridor, tiles (1,1)..(5,1).
var corridorRows = []string{
	"#######",
	"#     #",
	"#######",
}

func baseWorld(t *testing.T, rows []string) World {
	return World{
		Env:                   gridEnv(t, rows),
		Phase:                 ModeScatter,
		FrightenedSpeedFactor: 0.5,
		EatenSpeedFactor:      2.0,
		RespawnPenWait:        3.0,
	}
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestModeClassification(t *testing.T) {
	lethal := map[Mode]bool{ModeScatter: true, ModeChase: true}
	roaming := map[Mode]bool{ModeScatter: true, ModeChase: true}
	for _, m := range []Mode{ModePen, ModeExiting, ModeScatter, ModeChase, ModeFrightened, ModeEaten} {
		assert.Equal(t, lethal[m], m.Lethal(), "Lethal(%v)", m)
		assert.Equal(t, roaming[m], m.Roaming(), "Roaming(%v)", m)
	}
}

func TestGhostZeroElapsedIsNoOp(t *testing.T) {
	w := baseWorld(t, corridorRows)
	g := Ghost{X: 24, Y: 24, CurrentDir: DirRight, Mode: ModeChase, Speed: 32}
	assert.Equal(t, g, g.Step(w, 0, testRNG()))
	assert.Equal(t, g, g.Step(w, -1, testRNG()))
}

func TestPenGhostOnlyTicksTimer(t *testing.T) {
	w := baseWorld(t, plusRows)
	g := Ghost{X: 40, Y: 40, Mode: ModePen, PenTimer: 1.0, Speed: 32}

	g = g.Step(w, 0.4, testRNG())
	require.Equal(t, ModePen, g.Mode)
	assert.Equal(t, 40.0, g.X)
	assert.Equal(t, 40.0, g.Y)
	assert.InDelta(t, 0.6, g.PenTimer, 1e-9)

	g = g.Step(w, 0.4, testRNG())
	require.Equal(t, ModePen, g.Mode)
	assert.Equal(t, 40.0, g.X)

	// Timer reaching zero flips to exiting on the same tick.
	g = g.Step(w, 0.4, testRNG())
	assert.Equal(t, ModeExiting, g.Mode)
	assert.Equal(t, 0.0, g.PenTimer)
	assert.Equal(t, 40.0, g.X, "pen ghost never changes position")
	assert.Equal(t, 40.0, g.Y)
}

func TestFrightenedExpiryFollowsGlobalPhase(t *testing.T) {
	w := baseWorld(t, corridorRows)
	w.Phase = ModeChase
	g := Ghost{X: 24, Y: 24, CurrentDir: DirRight, Mode: ModeFrightened, FrightTimer: 0.05, Speed: 32}

	g = g.Step(w, 0.1, testRNG())
	assert.Equal(t, ModeChase, g.Mode, "expiry must route to the global phase, never to eaten")
	assert.Equal(t, 0.0, g.FrightTimer)
	assert.Greater(t, g.X, 24.0, "ghost keeps moving in the tick it recovers")
}

func TestCrossingDetectionNeverFreezes(t *testing.T) {
	w := baseWorld(t, corridorRows)
	w.PlayerX, w.PlayerY = 200, 24
	g := Ghost{X: 24, Y: 24, CurrentDir: DirRight, Mode: ModeChase, Personality: Blinky, Speed: 32}

	// 8px per tick: snapping at a centre must not re-trigger and stall there.
	want := []float64{32, 40, 48, 56, 64, 72, 80, 88}
	for i, x := range want {
		g = g.Step(w, 0.25, testRNG())
		require.Equal(t, x, g.X, "tick %d", i)
		require.Equal(t, 24.0, g.Y)
	}

	// Dead end: the no-reversal rule is waived, not an error.
	g = g.Step(w, 0.25, testRNG())
	assert.Equal(t, DirLeft, g.CurrentDir)
	assert.Equal(t, 80.0, g.X)
}

func TestGreedyChoiceAndLeftoverDistance(t *testing.T) {
	w := baseWorld(t, plusRows)
	w.Phase = ModeChase
	w.PlayerX, w.PlayerY = 40, 88 // below the intersection
	g := Ghost{X: 24, Y: 40, CurrentDir: DirRight, Mode: ModeChase, Personality: Blinky, Speed: 16}

	// 24px of travel: 16 to the centre, direction re-chosen there, the
	// remaining 8 spent downward.
	g = g.Step(w, 1.5, testRNG())
	assert.Equal(t, DirDown, g.CurrentDir)
	assert.Equal(t, 40.0, g.X)
	assert.Equal(t, 48.0, g.Y)
}

func TestTargetTieBreaksInEnumerationOrder(t *testing.T) {
	rows := []string{
		"#####",
		"## ##",
		"#  ##",
		"## ##",
		"#####",
	}
	w := baseWorld(t, rows)
	w.Phase = ModeChase
	w.PlayerX, w.PlayerY = 100, 40 // equidistant from the up and down exits
	g := Ghost{X: 24, Y: 40, CurrentDir: DirRight, Mode: ModeChase, Personality: Blinky, Speed: 16}

	g = g.Step(w, 1.0, testRNG())
	assert.Equal(t, DirUp, g.CurrentDir, "ties resolve to up, down, left, right order")
}

func TestFrightenedNeverBeelinesAtPlayer(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		w := baseWorld(t, plusRows)
		w.PlayerX, w.PlayerY = 40, 88 // player waits below
		g := Ghost{X: 24, Y: 40, CurrentDir: DirRight, Mode: ModeFrightened, FrightTimer: 5, Speed: 32}

		g = g.Step(w, 1.0, rand.New(rand.NewSource(seed)))
		require.NotEqual(t, DirDown, g.CurrentDir, "seed %d: most dangerous direction must be excluded", seed)
		require.Contains(t, []Direction{DirUp, DirRight}, g.CurrentDir, "seed %d", seed)
	}
}

func TestEatenGhostReentersPen(t *testing.T) {
	w := baseWorld(t, plusRows)
	w.PenEntranceX, w.PenEntranceY = 40, 40
	g := Ghost{X: 24, Y: 40, CurrentDir: DirRight, Mode: ModeEaten, Speed: 16}

	g = g.Step(w, 0.5, testRNG()) // 16px at the doubled eaten speed
	assert.Equal(t, ModePen, g.Mode)
	assert.Equal(t, 3.0, g.PenTimer, "respawn wait starts on arrival")
	assert.Equal(t, 40.0, g.X)
	assert.Equal(t, 40.0, g.Y)
}

func TestExitingGhostJoinsGlobalPhase(t *testing.T) {
	w := baseWorld(t, plusRows)
	w.PenExitX, w.PenExitY = 40, 40
	w.Phase = ModeScatter
	g := Ghost{X: 24, Y: 40, CurrentDir: DirRight, Mode: ModeExiting, Speed: 16, HomeX: 40, HomeY: -32}

	g = g.Step(w, 1.0, testRNG())
	assert.Equal(t, ModeScatter, g.Mode)
}

func TestDoorBlocksRoamersButNotEaten(t *testing.T) {
	rows := []string{
		"#####",
		"#   #",
		"#---#",
		"#   #",
		"#####",
	}
	w := baseWorld(t, rows)
	w.Phase = ModeChase
	w.PlayerX, w.PlayerY = 40, 88

	chaser := Ghost{X: 24, Y: 24, CurrentDir: DirRight, Mode: ModeChase, Personality: Blinky, Speed: 16}
	chaser = chaser.Step(w, 1.0, testRNG())
	assert.Equal(t, DirRight, chaser.CurrentDir, "door must block a chasing ghost")

	w.PenEntranceX, w.PenEntranceY = 40, 88
	eaten := Ghost{X: 24, Y: 24, CurrentDir: DirRight, Mode: ModeEaten, Speed: 8}
	eaten = eaten.Step(w, 1.0, testRNG()) // 16px at the doubled eaten speed
	assert.Equal(t, DirDown, eaten.CurrentDir, "door must open for an eaten ghost")
}

func TestChaseTargetsPerPersonality(t *testing.T) {
	w := World{Env: Env{TileSize: 16}, PlayerX: 160, PlayerY: 160, PlayerFacing: DirRight}

	g := Ghost{Personality: Blinky, Mode: ModeChase}
	x, y := g.target(w)
	assert.Equal(t, [2]float64{160, 160}, [2]float64{x, y})

	g = Ghost{Personality: Pinky, Mode: ModeChase}
	x, y = g.target(w)
	assert.Equal(t, [2]float64{160 + 64, 160}, [2]float64{x, y}, "four tiles ahead of facing")

	g = Ghost{Personality: Inky, Mode: ModeChase, X: 100, Y: 100}
	x, y = g.target(w)
	assert.Equal(t, [2]float64{2*192 - 100, 2*160 - 100}, [2]float64{x, y})

	// Clyde retreats to its corner when close, chases when far.
	g = Ghost{Personality: Clyde, Mode: ModeChase, X: 150, Y: 160, HomeX: 16, HomeY: 500}
	x, y = g.target(w)
	assert.Equal(t, [2]float64{16, 500}, [2]float64{x, y})
	g.X, g.Y = 600, 160
	x, y = g.target(w)
	assert.Equal(t, [2]float64{160, 160}, [2]float64{x, y})
}

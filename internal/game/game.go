package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sorensenNiels/neurAI-Pac/internal/entities"
	"github.com/sorensenNiels/neurAI-Pac/internal/tilemap"
)

// Publisher receives the read-only snapshot once per tick. The spectator hub
// implements it; a nil publisher is fine. The value is always a Snapshot, but
// the consumer only serializes it, so the parameter stays untyped.
type Publisher interface {
	Publish(v any)
}

// Game is the ebiten shell around the simulation: it captures input, drives
// one Advance per frame with the measured elapsed time, and draws from the
// latest snapshot. It owns no simulation logic.
type Game struct {
	round Round
	rng   *rand.Rand
	last  time.Time

	publisher Publisher

	paused     bool
	fullscreen bool
	quit       bool
	scale      float64
}

// New builds a game over the default maze and the embedded level table.
func New() (*Game, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	round, err := NewRound(tilemap.DefaultLayout(), cfg)
	if err != nil {
		return nil, err
	}
	g := &Game{
		round: round,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	// Initial scale to fit within ~75% of the display area.
	nativeW := round.Grid.PixelWidth()
	nativeH := round.Grid.PixelHeight()
	sw, sh := ebiten.ScreenSizeInFullscreen()
	fit := 0.75
	scaleW := float64(sw) * fit / float64(nativeW)
	scaleH := float64(sh) * fit / float64(nativeH)
	g.scale = math.Min(scaleW, scaleH)
	if g.scale <= 0 || math.IsNaN(g.scale) || math.IsInf(g.scale, 0) {
		g.scale = 1.0
	}
	return g, nil
}

// SetPublisher wires an optional snapshot consumer.
func (g *Game) SetPublisher(p Publisher) {
	g.publisher = p
}

func (g *Game) ScreenWidth() int {
	return int(float64(g.round.Grid.PixelWidth()) * g.scale)
}

func (g *Game) ScreenHeight() int {
	return int(float64(g.round.Grid.PixelHeight()) * g.scale)
}

func (g *Game) Update() error {
	intent := g.handleInput()
	if g.quit {
		return ebiten.Termination
	}

	now := time.Now()
	dt := 1.0 / 60.0
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	if !g.paused {
		g.round = Advance(g.round, intent, dt, g.rng)
	}
	if g.publisher != nil {
		g.publisher.Publish(g.round.Snapshot())
	}
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.ScreenWidth(), g.ScreenHeight()
}

// handleInput turns held arrow keys into this tick's direction intent and
// services the shell toggles.
func (g *Game) handleInput() entities.Direction {
	intent := entities.DirNone
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		intent = entities.DirUp
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		intent = entities.DirDown
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		intent = entities.DirLeft
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		intent = entities.DirRight
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.last = time.Time{}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.quit = true
	}
	return intent
}

package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/sorensenNiels/neurAI-Pac/internal/entities"
	"github.com/sorensenNiels/neurAI-Pac/internal/tilemap"
)

var (
	wallColor   = color.RGBA{R: 33, G: 33, B: 255, A: 255}
	doorColor   = color.RGBA{R: 255, G: 184, B: 222, A: 255}
	pelletColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	playerColor = color.RGBA{R: 255, G: 221, B: 0, A: 255}
	frightColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	bonusColor  = color.RGBA{R: 255, G: 0, B: 128, A: 255}

	ghostColors = map[entities.Personality]color.RGBA{
		entities.Blinky: {R: 255, G: 0, B: 0, A: 255},
		entities.Pinky:  {R: 255, G: 128, B: 255, A: 255},
		entities.Inky:   {R: 0, G: 191, B: 255, A: 255},
		entities.Clyde:  {R: 255, G: 128, B: 0, A: 255},
	}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	nativeW := g.round.Grid.PixelWidth()
	nativeH := g.round.Grid.PixelHeight()
	off := ebiten.NewImage(nativeW, nativeH)

	g.drawMaze(off)
	g.drawCollectibles(off)
	g.drawBonus(off)
	g.drawPlayer(off)
	g.drawGhosts(off)
	g.drawHUD(off, nativeW, nativeH)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	screen.DrawImage(off, op)
}

func (g *Game) drawMaze(dst *ebiten.Image) {
	grid := g.round.Grid
	ts := grid.TileSize
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			switch grid.TileAt(x, y) {
			case tilemap.TileWall:
				vector.DrawFilledRect(dst, float32(x*ts), float32(y*ts), float32(ts), float32(ts), wallColor, false)
			case tilemap.TileDoor:
				vector.DrawFilledRect(dst, float32(x*ts), float32(y*ts+ts/2-1), float32(ts), 2, doorColor, false)
			}
		}
	}
}

func (g *Game) drawCollectibles(dst *ebiten.Image) {
	ts := float32(g.round.Grid.TileSize)
	for _, c := range g.round.Collectibles {
		r := ts / 8
		if c.Kind == KindPower {
			r = ts / 4
		}
		vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), r, pelletColor, true)
	}
}

func (g *Game) drawBonus(dst *ebiten.Image) {
	if !g.round.BonusActive {
		return
	}
	ts := float32(g.round.Grid.TileSize)
	vector.DrawFilledCircle(dst, float32(g.round.Bonus.X), float32(g.round.Bonus.Y), ts/3, bonusColor, true)
}

func (g *Game) drawPlayer(dst *ebiten.Image) {
	r := float32(agentRadius)
	if g.round.Dying {
		// Shrink over the death sequence.
		r *= float32(1 - g.round.DyingProgress)
		if r < 0 {
			r = 0
		}
	} else {
		// Chomp pulsation while moving.
		r -= float32(1.5 * math.Abs(math.Sin(g.round.Player.ChompTimer*10)))
	}
	vector.DrawFilledCircle(dst, float32(g.round.Player.X), float32(g.round.Player.Y), r, playerColor, true)
}

func (g *Game) drawGhosts(dst *ebiten.Image) {
	for _, gh := range g.round.Ghosts {
		c := ghostColors[gh.Personality]
		r := float32(agentRadius)
		switch gh.Mode {
		case entities.ModeFrightened:
			c = frightColor
			// Flash white when the frighten window is almost over.
			if gh.FrightTimer < 2 && int(gh.FrightTimer*4)%2 == 0 {
				c = pelletColor
			}
		case entities.ModeEaten:
			// Eyes only.
			c = pelletColor
			r /= 2
		}
		vector.DrawFilledCircle(dst, float32(gh.X), float32(gh.Y), r, c, true)
	}
}

func (g *Game) drawHUD(dst *ebiten.Image, nativeW, nativeH int) {
	hud := fmt.Sprintf("Score: %d  Lives: %d  Level: %d  FPS: %0.0f",
		g.round.Score, g.round.Lives, g.round.Level+1, ebiten.ActualFPS())
	text.Draw(dst, hud, basicfont.Face7x13, 4, 12, color.White)

	for _, gh := range g.round.Ghosts {
		if gh.Mode == entities.ModeFrightened {
			msg := fmt.Sprintf("Frightened: %.1fs", gh.FrightTimer)
			w := len(msg) * 7
			text.Draw(dst, msg, basicfont.Face7x13, nativeW-w-4, nativeH-4, color.RGBA{R: 0, G: 255, B: 255, A: 255})
			break
		}
	}

	center := func(msg string, c color.Color) {
		w := len(msg) * 7
		text.Draw(dst, msg, basicfont.Face7x13, (nativeW-w)/2, nativeH/2, c)
	}
	switch {
	case g.round.GameOver:
		center("GAME OVER", color.RGBA{R: 255, G: 64, B: 64, A: 255})
	case g.round.LevelClear:
		center("LEVEL CLEAR", color.RGBA{R: 255, G: 215, B: 0, A: 255})
	case g.paused:
		center("PAUSED", color.White)
	}
}

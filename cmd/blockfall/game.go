package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
)

var (
	background = color.RGBA{R: 12, G: 12, B: 16, A: 255}
	border     = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	cellEdge   = color.RGBA{A: 255}
	statusText = color.RGBA{R: 200, G: 200, B: 210, A: 255}
)

// statusHeight is the strip below the board holding the status line.
const statusHeight = 20

var statusFace = text.NewGoXFace(basicfont.Face7x13)

var palette = [piece.VariantCount]color.RGBA{
	piece.O: {R: 240, G: 200, B: 40, A: 255},
	piece.I: {R: 80, G: 200, B: 240, A: 255},
	piece.L: {R: 240, G: 140, B: 40, A: 255},
	piece.J: {R: 60, G: 90, B: 220, A: 255},
	piece.S: {R: 90, G: 210, B: 90, A: 255},
	piece.Z: {R: 220, G: 70, B: 70, A: 255},
	piece.T: {R: 170, G: 80, B: 210, A: 255},
}

type Game struct {
	world     *game.World
	scheduler *game.Scheduler
	logger    *log.Logger
	tile      int
}

func newGame(world *game.World, tile int, logger *log.Logger) *Game {
	return &Game{
		world:     world,
		scheduler: game.NewDefaultScheduler(world),
		logger:    logger,
		tile:      tile,
	}
}

func (g *Game) Update() error {
	pressed := newKeySet(inpututil.AppendPressedKeys(nil))
	just := newKeySet(inpututil.AppendJustPressedKeys(nil))

	if just[ebiten.KeyEscape] {
		return ebiten.Termination
	}
	for _, intent := range intentsFor(pressed, just) {
		g.world.Push(intent)
	}
	if just[ebiten.KeyC] {
		if err := clipboard.WriteAll(g.world.Grid.String()); err != nil {
			g.logger.Printf("copy grid: %v", err)
		}
	}

	g.scheduler.Once(1 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	grid := g.world.Grid
	for row := range grid.Height() {
		for col := range grid.Width() {
			v, ok := g.world.Owner(row, col)
			if !ok {
				continue
			}
			g.drawCell(screen, row, col, palette[v])
		}
	}

	if p := g.world.Active; p != nil {
		for _, c := range p.Cells() {
			g.drawCell(screen, c.Row, c.Col, palette[p.Variant])
		}
	}

	w := float32(grid.Width() * g.tile)
	h := float32(grid.Height() * g.tile)
	vector.StrokeRect(screen, 0, 0, w, h, 2, border, false)

	status := fmt.Sprintf("commits %d", g.world.Commits())
	if g.world.Clock.Paused() {
		status += "  PAUSED"
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(4, float64(h)+4)
	op.ColorScale.ScaleWithColor(statusText)
	text.Draw(screen, status, statusFace, op)
}

func (g *Game) drawCell(screen *ebiten.Image, row, col int, clr color.Color) {
	x := float32(col * g.tile)
	y := float32(row * g.tile)
	size := float32(g.tile)
	vector.FillRect(screen, x, y, size, size, clr, false)
	vector.StrokeRect(screen, x, y, size, size, 1, cellEdge, false)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.world.Grid.Width() * g.tile, g.world.Grid.Height()*g.tile + statusHeight
}

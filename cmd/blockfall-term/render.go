package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
)

// Each grid cell is drawn two terminal columns wide, inside a one cell border.
const cellWidth = 2

var palette = [piece.VariantCount]tcell.Color{
	piece.O: tcell.ColorYellow,
	piece.I: tcell.ColorAqua,
	piece.L: tcell.ColorOrange,
	piece.J: tcell.ColorBlue,
	piece.S: tcell.ColorGreen,
	piece.Z: tcell.ColorRed,
	piece.T: tcell.ColorPurple,
}

var borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)

func draw(screen tcell.Screen, world *game.World) {
	screen.Clear()

	grid := world.Grid
	width := grid.Width()*cellWidth + 2
	height := grid.Height() + 2

	for x := 1; x < width-1; x++ {
		screen.SetContent(x, 0, '─', nil, borderStyle)
		screen.SetContent(x, height-1, '─', nil, borderStyle)
	}
	for y := 1; y < height-1; y++ {
		screen.SetContent(0, y, '│', nil, borderStyle)
		screen.SetContent(width-1, y, '│', nil, borderStyle)
	}
	screen.SetContent(0, 0, '┌', nil, borderStyle)
	screen.SetContent(width-1, 0, '┐', nil, borderStyle)
	screen.SetContent(0, height-1, '└', nil, borderStyle)
	screen.SetContent(width-1, height-1, '┘', nil, borderStyle)

	for row := range grid.Height() {
		for col := range grid.Width() {
			if v, ok := world.Owner(row, col); ok {
				drawCell(screen, row, col, palette[v])
			}
		}
	}

	if p := world.Active; p != nil {
		for _, c := range p.Cells() {
			drawCell(screen, c.Row, c.Col, palette[p.Variant])
		}
	}

	status := "z/x rotate  h/l move  j drop  p pause  q quit"
	if world.Clock.Paused() {
		status = "paused"
	}
	for i, r := range []rune(status) {
		screen.SetContent(i, height, r, nil, tcell.StyleDefault)
	}
}

func drawCell(screen tcell.Screen, row, col int, clr tcell.Color) {
	style := tcell.StyleDefault.Foreground(clr)
	x := 1 + col*cellWidth
	y := 1 + row
	for i := range cellWidth {
		screen.SetContent(x+i, y, '█', nil, style)
	}
}

package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/internal/config"
)

func main() {
	flags := config.Register(flag.CommandLine)
	tile := flag.Int("tile", 30, "cell size in pixels")
	flag.Parse()

	logger, err := flags.Logger("blockfall: ")
	if err != nil {
		log.Fatal(err)
	}
	defer flags.Close()

	world, err := game.NewWorld(flags.Config(logger))
	if err != nil {
		logger.Fatal(err)
	}

	g := newGame(world, *tile, logger)

	ebiten.SetWindowTitle("blockfall")
	ebiten.SetWindowSize(world.Grid.Width()*g.tile, world.Grid.Height()*g.tile+statusHeight)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal(err)
	}
}

package main

import (
	"flag"
	"io"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/internal/config"
)

const frameInterval = 16 * time.Millisecond

func main() {
	flags := config.Register(flag.CommandLine)
	mute := flag.Bool("mute", false, "disable the commit tone")
	flag.Parse()

	// The terminal owns stdout and stderr while the screen is up.
	logger := log.New(io.Discard, "", 0)
	if flags.LogPath != "" {
		var err error
		logger, err = flags.Logger("blockfall-term: ")
		if err != nil {
			log.Fatal(err)
		}
		defer flags.Close()
	}

	world, err := game.NewWorld(flags.Config(logger))
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	if !*mute {
		tone, err := newTone()
		if err != nil {
			// Non-fatal, the game runs without sound
			logger.Printf("audio initialization failed: %v", err)
		} else {
			world.Subscribe(tone.onEvent(world.Grid.Height()))
		}
	}

	run(screen, world)
}

func run(screen tcell.Screen, world *game.World) {
	scheduler := game.NewDefaultScheduler(world)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return
				}
				if intent, ok := intentFor(ev); ok {
					world.Push(intent)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			scheduler.Once(now.Sub(last).Seconds())
			last = now
			draw(screen, world)
			screen.Show()
		}
	}
}

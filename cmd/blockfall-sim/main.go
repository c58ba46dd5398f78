package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/internal/config"
)

func main() {
	flags := config.Register(flag.CommandLine)
	frames := flag.Int("frames", 10000, "frames to simulate, 0 to run for -duration")
	duration := flag.Duration("duration", 10*time.Second, "wall time to run when -frames is 0")
	dt := flag.Duration("dt", time.Second/60, "simulated time per frame")
	intentRate := flag.Float64("intent-rate", 0.2, "chance of a random intent per frame")
	addr := flag.String("http", "", "serve /grid, /piece, /stats and /events on this address")
	script := flag.String("script", "", "Lua file whose decide(state) picks intents instead of random play")
	flag.Parse()

	logger, err := flags.Logger("blockfall-sim: ")
	if err != nil {
		log.Fatal(err)
	}
	defer flags.Close()

	world, err := game.NewWorld(flags.Config(logger))
	if err != nil {
		logger.Fatal(err)
	}

	scheduler := game.NewDefaultScheduler(world)
	if *script != "" {
		src, err := os.ReadFile(*script)
		if err != nil {
			logger.Fatal(err)
		}
		player, err := NewScriptIntentSystem(*script, string(src), logger)
		if err != nil {
			logger.Fatal(err)
		}
		defer player.Close()
		scheduler.Register(player)
	} else {
		scheduler.Register(NewRandomIntentSystem(world, *intentRate))
	}

	snapshots := &SnapshotStore{}
	scheduler.Register(&SnapshotSystem{Store: snapshots, Scheduler: scheduler})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var server *http.Server
	if *addr != "" {
		hub := NewEventHub(logger)
		world.Subscribe(hub.Publish)
		server = &http.Server{Addr: *addr, Handler: NewRouter(snapshots, hub)}
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Printf("http server: %v", err)
			}
		}()
		logger.Printf("serving inspection endpoints on %s", *addr)
	}

	report := &Report{
		Frames:   *frames,
		Duration: *duration,
		FrameDT:  *dt,
		Width:    world.Grid.Width(),
		Height:   world.Grid.Height(),
	}

	logger.Println("Running simulation...")
	start := time.Now()
	runCtx := ctx
	if *frames == 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	step := dt.Seconds()
Loop:
	for n := 0; *frames == 0 || n < *frames; n++ {
		select {
		case <-runCtx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(step)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		}
	}

	report.TotalTime = time.Since(start)
	report.UpdateTime.Finalize()
	report.Collect(world, scheduler)
	logger.Println("Simulation finished.")

	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatalf("Failed to generate report: %v", err)
	}

	if server != nil {
		fmt.Println("Inspection server still running, interrupt to exit.")
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Printf("http shutdown: %v", err)
		}
	}
}

// Package config binds the command line settings shared by every front-end.
package config

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
)

// Flags holds the values of the shared command line flags.
type Flags struct {
	Width     int
	Height    int
	Interval  time.Duration
	SpeedUp   float64
	SpawnCol  int
	Seed      uint64
	Verbose   bool
	LogPath   string
	logWriter io.Closer
}

// Register defines the shared flags on fs, defaulted from game.DefaultConfig.
func Register(fs *flag.FlagSet) *Flags {
	def := game.DefaultConfig()
	f := &Flags{}

	fs.IntVar(&f.Width, "width", def.Width, "board width in cells")
	fs.IntVar(&f.Height, "height", def.Height, "board height in cells")
	fs.DurationVar(&f.Interval, "interval", def.Interval, "gravity interval at normal speed")
	fs.Float64Var(&f.SpeedUp, "speedup", def.SpeedUp, "speed multiplier increase per frame")
	fs.IntVar(&f.SpawnCol, "spawn-col", def.Spawn.Col, "column new pieces appear at")
	fs.Uint64Var(&f.Seed, "seed", def.Seed, "piece selection seed, 0 for time based")
	fs.BoolVar(&f.Verbose, "v", false, "log the board after every commit")
	fs.StringVar(&f.LogPath, "log", "", "log file, empty for stderr")

	return f
}

// Logger opens the configured log destination. Callers must Close the flags
// once the logger is no longer used.
func (f *Flags) Logger(prefix string) (*log.Logger, error) {
	var w io.Writer = os.Stderr
	if f.LogPath != "" {
		file, err := os.OpenFile(f.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		f.logWriter = file
		w = file
	}
	return log.New(w, prefix, log.LstdFlags|log.Lmicroseconds), nil
}

// Close releases the log file, if one was opened.
func (f *Flags) Close() error {
	if f.logWriter == nil {
		return nil
	}
	err := f.logWriter.Close()
	f.logWriter = nil
	return err
}

// Config converts the flags to a world configuration using logger.
func (f *Flags) Config(logger *log.Logger) game.Config {
	return game.Config{
		Width:    f.Width,
		Height:   f.Height,
		Interval: f.Interval,
		SpeedUp:  f.SpeedUp,
		Spawn:    piece.Position{Col: f.SpawnCol},
		Seed:     f.Seed,
		Logger:   logger,
		Verbose:  f.Verbose,
	}
}

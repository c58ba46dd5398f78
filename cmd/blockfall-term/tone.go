package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/plus3/blockfall/game"
)

const (
	sampleRate   = beep.SampleRate(44100)
	toneDuration = 60 * time.Millisecond
	baseFreq     = 220.0
)

// tone plays a short sine blip whenever a piece settles.
type tone struct {
	rate beep.SampleRate
}

func newTone() (*tone, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &tone{rate: sampleRate}, nil
}

// toneFreq pitches the blip higher the closer to the top a piece settled.
func toneFreq(row, height int) float64 {
	if height <= 0 {
		return baseFreq
	}
	return baseFreq * (1 + float64(height-row)/float64(height))
}

func (t *tone) onEvent(height int) func(game.Event) {
	return func(ev game.Event) {
		if ev.Kind != game.EventCommitted {
			return
		}
		t.play(toneFreq(ev.Position.Row, height))
	}
}

func (t *tone) play(freq float64) {
	sine, err := generators.SineTone(t.rate, freq)
	if err != nil {
		return
	}
	quiet := &effects.Volume{Streamer: sine, Base: 2, Volume: -3}
	speaker.Play(beep.Take(t.rate.N(toneDuration), quiet))
}

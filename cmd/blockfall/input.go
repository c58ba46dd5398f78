package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/game"
)

// keySet holds the keys in one state (pressed, or just pressed) for a frame.
type keySet map[ebiten.Key]bool

func newKeySet(keys []ebiten.Key) keySet {
	s := make(keySet, len(keys))
	for _, k := range keys {
		s[k] = true
	}
	return s
}

func (s keySet) any(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s[k] {
			return true
		}
	}
	return false
}

// chord maps two opposing key groups to their intents. Holding both groups
// cancels both.
type chord struct {
	a, b     []ebiten.Key
	onA, onB game.Intent
}

var chords = []chord{
	{
		a:   []ebiten.Key{ebiten.KeyZ},
		b:   []ebiten.Key{ebiten.KeyX, ebiten.KeyArrowUp},
		onA: game.IntentRotateCCW,
		onB: game.IntentRotateCW,
	},
	{
		a:   []ebiten.Key{ebiten.KeyH, ebiten.KeyArrowLeft},
		b:   []ebiten.Key{ebiten.KeyL, ebiten.KeyArrowRight},
		onA: game.IntentMoveLeft,
		onB: game.IntentMoveRight,
	},
}

var softDropKeys = []ebiten.Key{ebiten.KeyJ, ebiten.KeyArrowDown}

// intentsFor turns one frame of keyboard state into intents. Only keys that
// went down this frame produce an intent.
func intentsFor(pressed, just keySet) []game.Intent {
	var intents []game.Intent
	for _, c := range chords {
		if pressed.any(c.a) && pressed.any(c.b) {
			continue
		}
		if just.any(c.a) {
			intents = append(intents, c.onA)
		} else if just.any(c.b) {
			intents = append(intents, c.onB)
		}
	}

	if just.any(softDropKeys) {
		intents = append(intents, game.IntentSoftDrop)
	}
	if just[ebiten.KeyP] {
		intents = append(intents, game.IntentPause)
	}
	return intents
}

package main

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/game"
)

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// intentFor maps a key press to an intent. Vi keys follow the window
// front-end layout; arrows are accepted too.
func intentFor(ev *tcell.EventKey) (game.Intent, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.IntentMoveLeft, true
	case tcell.KeyRight:
		return game.IntentMoveRight, true
	case tcell.KeyDown:
		return game.IntentSoftDrop, true
	case tcell.KeyUp:
		return game.IntentRotateCW, true
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'h':
			return game.IntentMoveLeft, true
		case 'l':
			return game.IntentMoveRight, true
		case 'j':
			return game.IntentSoftDrop, true
		case 'x':
			return game.IntentRotateCW, true
		case 'z':
			return game.IntentRotateCCW, true
		case 'p':
			return game.IntentPause, true
		}
	}
	return 0, false
}

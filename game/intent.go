package game

import "fmt"

// Intent is a discrete, already debounced player request.
type Intent uint8

const (
	IntentRotateCW Intent = iota
	IntentRotateCCW
	IntentMoveLeft
	IntentMoveRight
	IntentSoftDrop
	IntentPause
)

var intents = [...]Intent{
	IntentRotateCW,
	IntentRotateCCW,
	IntentMoveLeft,
	IntentMoveRight,
	IntentSoftDrop,
	IntentPause,
}

func (i Intent) String() string {
	switch i {
	case IntentRotateCW:
		return "rotate-cw"
	case IntentRotateCCW:
		return "rotate-ccw"
	case IntentMoveLeft:
		return "move-left"
	case IntentMoveRight:
		return "move-right"
	case IntentSoftDrop:
		return "soft-drop"
	case IntentPause:
		return "pause"
	}
	return fmt.Sprintf("Intent(%d)", uint8(i))
}

// ParseIntent is the inverse of Intent.String.
func ParseIntent(name string) (Intent, bool) {
	for _, i := range intents {
		if i.String() == name {
			return i, true
		}
	}
	return 0, false
}

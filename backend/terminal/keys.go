package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/blueberry"
)

var specialKeys = map[tcell.Key]blueberry.Key{
	tcell.KeyUp:         blueberry.KeyArrowUp,
	tcell.KeyDown:       blueberry.KeyArrowDown,
	tcell.KeyLeft:       blueberry.KeyArrowLeft,
	tcell.KeyRight:      blueberry.KeyArrowRight,
	tcell.KeyEnter:      blueberry.KeyEnter,
	tcell.KeyEscape:     blueberry.KeyEscape,
	tcell.KeyTab:        blueberry.KeyTab,
	tcell.KeyBackspace:  blueberry.KeyBackspace,
	tcell.KeyBackspace2: blueberry.KeyBackspace,
	tcell.KeyF1:         blueberry.KeyF1,
	tcell.KeyF2:         blueberry.KeyF2,
	tcell.KeyF3:         blueberry.KeyF3,
}

// mapKey converts a tcell key event to a blueberry key. Letters map
// regardless of case.
func mapKey(k tcell.Key, r rune) (blueberry.Key, bool) {
	if k != tcell.KeyRune {
		bk, ok := specialKeys[k]
		return bk, ok
	}
	switch {
	case r >= 'a' && r <= 'z':
		return blueberry.KeyA + blueberry.Key(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return blueberry.KeyA + blueberry.Key(r-'A'), true
	case r >= '0' && r <= '9':
		return blueberry.Key0 + blueberry.Key(r-'0'), true
	case r == ' ':
		return blueberry.KeySpace, true
	}
	return blueberry.KeyUnknown, false
}

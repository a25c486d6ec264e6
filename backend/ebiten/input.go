package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/blueberry"
)

// keyTable maps blueberry keys to ebiten keys. KeyUnknown stays unmapped.
var keyTable = map[blueberry.Key]ebiten.Key{
	blueberry.KeyA: ebiten.KeyA, blueberry.KeyB: ebiten.KeyB, blueberry.KeyC: ebiten.KeyC,
	blueberry.KeyD: ebiten.KeyD, blueberry.KeyE: ebiten.KeyE, blueberry.KeyF: ebiten.KeyF,
	blueberry.KeyG: ebiten.KeyG, blueberry.KeyH: ebiten.KeyH, blueberry.KeyI: ebiten.KeyI,
	blueberry.KeyJ: ebiten.KeyJ, blueberry.KeyK: ebiten.KeyK, blueberry.KeyL: ebiten.KeyL,
	blueberry.KeyM: ebiten.KeyM, blueberry.KeyN: ebiten.KeyN, blueberry.KeyO: ebiten.KeyO,
	blueberry.KeyP: ebiten.KeyP, blueberry.KeyQ: ebiten.KeyQ, blueberry.KeyR: ebiten.KeyR,
	blueberry.KeyS: ebiten.KeyS, blueberry.KeyT: ebiten.KeyT, blueberry.KeyU: ebiten.KeyU,
	blueberry.KeyV: ebiten.KeyV, blueberry.KeyW: ebiten.KeyW, blueberry.KeyX: ebiten.KeyX,
	blueberry.KeyY: ebiten.KeyY, blueberry.KeyZ: ebiten.KeyZ,

	blueberry.Key0: ebiten.KeyDigit0, blueberry.Key1: ebiten.KeyDigit1,
	blueberry.Key2: ebiten.KeyDigit2, blueberry.Key3: ebiten.KeyDigit3,
	blueberry.Key4: ebiten.KeyDigit4, blueberry.Key5: ebiten.KeyDigit5,
	blueberry.Key6: ebiten.KeyDigit6, blueberry.Key7: ebiten.KeyDigit7,
	blueberry.Key8: ebiten.KeyDigit8, blueberry.Key9: ebiten.KeyDigit9,

	blueberry.KeyArrowUp:    ebiten.KeyArrowUp,
	blueberry.KeyArrowDown:  ebiten.KeyArrowDown,
	blueberry.KeyArrowLeft:  ebiten.KeyArrowLeft,
	blueberry.KeyArrowRight: ebiten.KeyArrowRight,
	blueberry.KeySpace:      ebiten.KeySpace,
	blueberry.KeyEnter:      ebiten.KeyEnter,
	blueberry.KeyEscape:     ebiten.KeyEscape,
	blueberry.KeyTab:        ebiten.KeyTab,
	blueberry.KeyBackspace:  ebiten.KeyBackspace,
	blueberry.KeyShift:      ebiten.KeyShift,
	blueberry.KeyControl:    ebiten.KeyControl,
	blueberry.KeyAlt:        ebiten.KeyAlt,
	blueberry.KeyF1:         ebiten.KeyF1,
	blueberry.KeyF2:         ebiten.KeyF2,
	blueberry.KeyF3:         ebiten.KeyF3,
}

// mouseButtonToEbiten converts a blueberry.MouseButton to an ebiten.MouseButton.
func mouseButtonToEbiten(button blueberry.MouseButton) ebiten.MouseButton {
	switch button {
	case blueberry.MouseButtonRight:
		return ebiten.MouseButtonRight
	case blueberry.MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

var mouseButtons = []blueberry.MouseButton{
	blueberry.MouseButtonLeft,
	blueberry.MouseButtonRight,
	blueberry.MouseButtonMiddle,
}

// pollInput copies the current keyboard and mouse state into in. The cursor
// position from Ebitengine is already in frame pixels because Layout returns
// the frame size.
func pollInput(in *blueberry.InputInfo, scale int) {
	for k, ek := range keyTable {
		in.SetKey(k, ebiten.IsKeyPressed(ek))
	}
	for _, mb := range mouseButtons {
		in.SetMouseButton(mb, ebiten.IsMouseButtonPressed(mouseButtonToEbiten(mb)))
	}
	x, y := ebiten.CursorPosition()
	in.SetMousePixelPos(x, y)
	in.SetMousePos(float64(x*scale), float64(y*scale))
}

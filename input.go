package blueberry

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyShift
	KeyControl
	KeyAlt
	KeyF1
	KeyF2
	KeyF3

	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown:    "Unknown",
	KeyArrowUp:    "ArrowUp",
	KeyArrowDown:  "ArrowDown",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeySpace:      "Space",
	KeyEnter:      "Enter",
	KeyEscape:     "Escape",
	KeyTab:        "Tab",
	KeyBackspace:  "Backspace",
	KeyShift:      "Shift",
	KeyControl:    "Control",
	KeyAlt:        "Alt",
	KeyF1:         "F1",
	KeyF2:         "F2",
	KeyF3:         "F3",
}

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('A' + k - KeyA))
	}
	for k := Key0; k <= Key9; k++ {
		keyNames[k] = string(rune('0' + k - Key0))
	}
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// ParseKey returns the Key whose String is name, ignoring case.
func ParseKey(name string) (Key, bool) {
	for k := KeyA; k < keyCount; k++ {
		if strings.EqualFold(keyNames[k], name) {
			return k, true
		}
	}
	return KeyUnknown, false
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)

	mouseButtonCount
)

// ParseMouseButton maps "left", "right" and "middle" to a MouseButton.
func ParseMouseButton(name string) (MouseButton, bool) {
	switch strings.ToLower(name) {
	case "left", "":
		return MouseButtonLeft, true
	case "right":
		return MouseButtonRight, true
	case "middle":
		return MouseButtonMiddle, true
	}
	return 0, false
}

// buttonState tracks a held flag plus the edges seen since the last
// BeginFrame.
type buttonState struct {
	down     bool
	pressed  bool
	released bool
}

func (b *buttonState) set(down bool) {
	if down && !b.down {
		b.pressed = true
	}
	if !down && b.down {
		b.released = true
	}
	b.down = down
}

// InputInfo is the keyboard and mouse snapshot handed to components each
// frame. A backend fills it through the Set methods; components only read.
type InputInfo struct {
	keys    [keyCount]buttonState
	buttons [mouseButtonCount]buttonState

	mousePos          Vec2
	lastMousePos      Vec2
	mousePixelPos     Vec2i
	lastMousePixelPos Vec2i
}

// NewInputInfo returns an empty snapshot with nothing held.
func NewInputInfo() *InputInfo {
	return &InputInfo{}
}

// BeginFrame clears per-frame edges and makes the current mouse positions the
// baseline for MouseDelta and MousePixelDelta. Backends call it once before
// feeding the frame's events.
func (in *InputInfo) BeginFrame() {
	for i := range in.keys {
		in.keys[i].pressed = false
		in.keys[i].released = false
	}
	for i := range in.buttons {
		in.buttons[i].pressed = false
		in.buttons[i].released = false
	}
	in.lastMousePos = in.mousePos
	in.lastMousePixelPos = in.mousePixelPos
}

// SetKey records whether k is held.
func (in *InputInfo) SetKey(k Key, down bool) {
	if k < keyCount {
		in.keys[k].set(down)
	}
}

// Key reports whether k is held.
func (in *InputInfo) Key(k Key) bool {
	return k < keyCount && in.keys[k].down
}

// KeyPressed reports whether k went down this frame.
func (in *InputInfo) KeyPressed(k Key) bool {
	return k < keyCount && in.keys[k].pressed
}

// KeyReleased reports whether k went up this frame.
func (in *InputInfo) KeyReleased(k Key) bool {
	return k < keyCount && in.keys[k].released
}

// SetMouseButton records whether b is held.
func (in *InputInfo) SetMouseButton(b MouseButton, down bool) {
	if b < mouseButtonCount {
		in.buttons[b].set(down)
	}
}

// MouseButton reports whether b is held.
func (in *InputInfo) MouseButton(b MouseButton) bool {
	return b < mouseButtonCount && in.buttons[b].down
}

// MouseClicked reports whether b went down this frame.
func (in *InputInfo) MouseClicked(b MouseButton) bool {
	return b < mouseButtonCount && in.buttons[b].pressed
}

// MouseReleased reports whether b went up this frame.
func (in *InputInfo) MouseReleased(b MouseButton) bool {
	return b < mouseButtonCount && in.buttons[b].released
}

// SetMousePos records the cursor position in window coordinates.
func (in *InputInfo) SetMousePos(x, y float64) {
	in.mousePos = Vec2{x, y}
}

// MousePos returns the cursor position in window coordinates.
func (in *InputInfo) MousePos() Vec2 { return in.mousePos }

// SetMousePixelPos records the cursor position in frame pixels.
func (in *InputInfo) SetMousePixelPos(x, y int) {
	in.mousePixelPos = Vec2i{x, y}
}

// MousePixelPos returns the cursor position in frame pixels.
func (in *InputInfo) MousePixelPos() Vec2i { return in.mousePixelPos }

// MouseDelta returns how far the cursor moved in window coordinates since
// BeginFrame.
func (in *InputInfo) MouseDelta() Vec2 {
	return Vec2{in.mousePos.X - in.lastMousePos.X, in.mousePos.Y - in.lastMousePos.Y}
}

// MousePixelDelta returns how far the cursor moved in frame pixels since
// BeginFrame.
func (in *InputInfo) MousePixelDelta() Vec2i {
	return in.mousePixelPos.Sub(in.lastMousePixelPos)
}

package blueberry

import (
	"encoding/json"
	"fmt"
)

// --- injected input ---

type syntheticKind uint8

const (
	syntheticPointer syntheticKind = iota
	syntheticKey
)

// syntheticEvent is one queued input change. Pointer events use frame pixel
// coordinates.
type syntheticEvent struct {
	kind   syntheticKind
	x, y   int
	button MouseButton
	key    Key
	down   bool
}

// InjectPress queues a left button press at frame pixel (x, y). Injected
// events apply one per Update, before objects update.
func (g *Game) InjectPress(x, y int) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: syntheticPointer, x: x, y: y, button: MouseButtonLeft, down: true})
}

// InjectMove queues a pointer move to (x, y) with the left button held.
func (g *Game) InjectMove(x, y int) {
	g.InjectPress(x, y)
}

// InjectRelease queues a left button release at (x, y).
func (g *Game) InjectRelease(x, y int) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: syntheticPointer, x: x, y: y, button: MouseButtonLeft})
}

// InjectClick queues a press then a release at (x, y). Consumes two frames.
func (g *Game) InjectClick(x, y int) {
	g.InjectPress(x, y)
	g.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 evenly spaced moves
// and a release at (toX, toY). At least two frames are used.
func (g *Game) InjectDrag(fromX, fromY, toX, toY, frames int) {
	frames = max(frames, 2)
	g.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		x := fromX + (toX-fromX)*i/(steps+1)
		y := fromY + (toY-fromY)*i/(steps+1)
		g.InjectMove(x, y)
	}
	g.InjectRelease(toX, toY)
}

// InjectKey queues k going down or up.
func (g *Game) InjectKey(k Key, down bool) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: syntheticKey, key: k, down: down})
}

// InjectKeyTap queues k going down then up. Consumes two frames.
func (g *Game) InjectKeyTap(k Key) {
	g.InjectKey(k, true)
	g.InjectKey(k, false)
}

// Pending returns the number of queued injected events.
func (g *Game) Pending() int { return len(g.injectQueue) }

// processInjectedInput pops one event and applies it to the input snapshot.
func (g *Game) processInjectedInput() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	ev := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	switch ev.kind {
	case syntheticPointer:
		g.input.SetMousePixelPos(ev.x, ev.y)
		g.input.SetMouseButton(ev.button, ev.down)
	case syntheticKey:
		g.input.SetKey(ev.key, ev.down)
	}
	return true
}

// --- scripts ---

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Key    string `json:"key,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	FromX  int    `json:"fromX,omitempty"`
	FromY  int    `json:"fromY,omitempty"`
	ToX    int    `json:"toX,omitempty"`
	ToY    int    `json:"toY,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// script is the top-level JSON structure.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays injected input and screenshots across frames for
// automated visual testing. Attach it with Game.SetScriptRunner.
//
//	{"steps": [
//	  {"action": "key", "key": "ArrowRight"},
//	  {"action": "wait", "frames": 10},
//	  {"action": "screenshot", "label": "moved"}
//	]}
//
// Actions: screenshot, click, drag, key (tap), keydown, keyup, wait.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script. Unknown actions and key names are
// rejected here rather than during playback.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("blueberry: parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("blueberry: parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "screenshot", "click", "drag", "wait":
		case "key", "keydown", "keyup":
			if _, ok := ParseKey(st.Key); !ok {
				return nil, fmt.Errorf("blueberry: parse script: step %d: unknown key %q", i, st.Key)
			}
		default:
			return nil, fmt.Errorf("blueberry: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// Done reports whether every step has run and its input has been applied.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Game.Update.
func (r *ScriptRunner) step(g *Game) {
	if r.done {
		return
	}
	if len(g.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		g.Screenshot(st.Label)
	case "click":
		g.InjectClick(st.X, st.Y)
	case "drag":
		g.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "key":
		k, _ := ParseKey(st.Key)
		g.InjectKeyTap(k)
	case "keydown", "keyup":
		k, _ := ParseKey(st.Key)
		g.InjectKey(k, st.Action == "keydown")
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(g.injectQueue) == 0 {
		r.done = true
	}
}

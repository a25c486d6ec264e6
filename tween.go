package blueberry

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 fields of a transform's local state together.
// Create one with TweenPosition, TweenRotation or TweenScale and call
// Update(dt) each frame, or attach it to an object with a TweenComponent.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	apply  func(vals [2]float64)
	vals   [2]float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target transform.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.apply(g.vals)
}

// TweenPosition moves t's local position to (toX, toY) over duration seconds.
func TweenPosition(t *TransformComponent, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	l := t.Local()
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(l.X), float32(toX), duration, easeOrLinear(fn))
	g.tweens[1] = gween.New(float32(l.Y), float32(toY), duration, easeOrLinear(fn))
	g.apply = func(v [2]float64) { t.SetPosition(v[0], v[1]) }
	return g
}

// TweenRotation turns t's local rotation to deg degrees over duration
// seconds.
func TweenRotation(t *TransformComponent, deg float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(t.Local().Rotation), float32(deg), duration, easeOrLinear(fn))
	g.apply = func(v [2]float64) { t.SetRotation(v[0]) }
	return g
}

// TweenScale scales t's local scale to (toSX, toSY) over duration seconds.
func TweenScale(t *TransformComponent, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	l := t.Local()
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(l.ScaleX), float32(toSX), duration, easeOrLinear(fn))
	g.tweens[1] = gween.New(float32(l.ScaleY), float32(toSY), duration, easeOrLinear(fn))
	g.apply = func(v [2]float64) { t.SetScale(v[0], v[1]) }
	return g
}

func easeOrLinear(fn ease.TweenFunc) ease.TweenFunc {
	if fn == nil {
		return ease.Linear
	}
	return fn
}

// TweenComponent runs tween groups during Update and drops them when done.
type TweenComponent struct {
	ComponentBase
	groups []*TweenGroup
}

// NewTweenComponent returns a component running groups.
func NewTweenComponent(groups ...*TweenGroup) *TweenComponent {
	return &TweenComponent{groups: groups}
}

// Add starts running g.
func (c *TweenComponent) Add(g *TweenGroup) {
	c.groups = append(c.groups, g)
}

// Active returns the number of unfinished groups.
func (c *TweenComponent) Active() int { return len(c.groups) }

func (c *TweenComponent) Update(frame FrameInfo, _ *InputInfo) {
	live := c.groups[:0]
	for _, g := range c.groups {
		g.Update(float32(frame.Delta))
		if !g.Done {
			live = append(live, g)
		}
	}
	clear(c.groups[len(live):])
	c.groups = live
}

func (c *TweenComponent) Debug(sink DebugSink) {
	sink.Text(fmt.Sprintf("tweens: %d", len(c.groups)))
}

package blueberry

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for the camera offset.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// CamBuffer is the full-frame destination every component renders into. Its
// offset shifts all incoming blend coordinates, which scrolls the view: an
// offset of (-10, 0) draws the world 10 pixels further left.
type CamBuffer struct {
	pixelBuffer

	// BoundsEnabled clamps the offset so the frame never shows pixels
	// outside Bounds (world space).
	BoundsEnabled bool
	Bounds        Rect

	followTarget *TransformComponent
	followLerp   float64
	// fx, fy hold the sub-pixel offset while following or scrolling.
	fx, fy float64

	scrollTween *scrollAnim
}

var _ ImageBuffer = (*CamBuffer)(nil)

// NewCamBuffer creates a w×h camera buffer with a zero offset.
func NewCamBuffer(w, h int) *CamBuffer {
	return &CamBuffer{pixelBuffer: newPixelBuffer(w, h)}
}

// SetOffset sets the scroll offset and cancels any running scroll tween.
func (c *CamBuffer) SetOffset(x, y int) {
	c.scrollTween = nil
	c.setOffset(float64(x), float64(y))
}

func (c *CamBuffer) setOffset(x, y float64) {
	c.fx, c.fy = x, y
	c.offset = Vec2i{int(math.Round(x)), int(math.Round(y))}
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// Dump copies the frame into dst as row-major RGBA8 bytes.
func (c *CamBuffer) Dump(dst []byte) error {
	if need := len(c.pix) * 4; len(dst) < need {
		return fmt.Errorf("blueberry: frame dump needs %d bytes, got %d: %w", need, len(dst), ErrInvalidSize)
	}
	for i, p := range c.pix {
		o := i * 4
		dst[o] = p.R
		dst[o+1] = p.G
		dst[o+2] = p.B
		dst[o+3] = p.A
	}
	return nil
}

// ScrollTo animates the offset so the world position (x, y) ends up at the
// frame's top-left corner after duration seconds.
func (c *CamBuffer) ScrollTo(x, y int, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.Linear
	}
	c.followTarget = nil
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.fx), float32(-x), duration, easeFn),
		tweenY: gween.New(float32(c.fy), float32(-y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *CamBuffer) Scrolling() bool {
	return c.scrollTween != nil
}

// Follow keeps target centred in the frame. A lerp of 1 snaps every update;
// lower values trail smoothly. Following stops when target is detached.
func (c *CamBuffer) Follow(target *TransformComponent, lerp float64) {
	c.scrollTween = nil
	c.followTarget = target
	c.followLerp = lerp
}

// Unfollow stops tracking the current target.
func (c *CamBuffer) Unfollow() {
	c.followTarget = nil
}

// SetBounds enables world bounds clamping.
func (c *CamBuffer) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
	c.clampToBounds()
}

// ClearBounds disables world bounds clamping.
func (c *CamBuffer) ClearBounds() {
	c.BoundsEnabled = false
}

// Update advances follow and scroll animations by dt seconds.
func (c *CamBuffer) Update(dt float64) {
	x, y := c.fx, c.fy

	if c.followTarget != nil && c.followTarget.IsDisposed() {
		c.followTarget = nil
	}
	if c.followTarget != nil {
		pos := c.followTarget.Position()
		targetX := float64(c.width/2 - pos.X)
		targetY := float64(c.height/2 - pos.Y)
		x += (targetX - x) * c.followLerp
		y += (targetY - y) * c.followLerp
	}

	if s := c.scrollTween; s != nil {
		if !s.doneX {
			val, done := s.tweenX.Update(float32(dt))
			x = float64(val)
			s.doneX = done
		}
		if !s.doneY {
			val, done := s.tweenY.Update(float32(dt))
			y = float64(val)
			s.doneY = done
		}
		if s.doneX && s.doneY {
			c.scrollTween = nil
		}
	}

	c.setOffset(x, y)
}

// clampToBounds keeps the visible world window inside Bounds. Bounds smaller
// than the frame centre the view instead.
func (c *CamBuffer) clampToBounds() {
	// visible world window is [-offset, -offset+size)
	clampAxis := func(off float64, start, size, frame int) float64 {
		if size <= frame {
			return float64(-(start - (frame-size)/2))
		}
		minOff := float64(-(start + size - frame))
		maxOff := float64(-start)
		return max(minOff, min(off, maxOff))
	}
	c.fx = clampAxis(c.fx, c.Bounds.X, c.Bounds.Width, c.width)
	c.fy = clampAxis(c.fy, c.Bounds.Y, c.Bounds.Height, c.height)
	c.offset = Vec2i{int(math.Round(c.fx)), int(math.Round(c.fy))}
}

package blueberry

import (
	"fmt"
	"math"
)

// placement returns where to blend a w×h buffer for obj: the object's
// transform position, or the origin without one. Centered puts the buffer's
// middle on that point.
func placement(obj *GameObject, w, h int, centered bool) (int, int) {
	var pos Vec2i
	if obj != nil {
		if t, ok := GetComponent[*TransformComponent](obj); ok {
			pos = t.Position()
		}
	}
	if centered {
		pos.X -= w / 2
		pos.Y -= h / 2
	}
	return pos.X, pos.Y
}

// --- SpriteRenderer ---

// SpriteRenderer blends a sprite at its object's transform. Rotation and
// scale from the transform (plus Spin) are applied to scratch copies, so the
// sprite itself is never resampled. Scaling is uniform: only the transform's
// X scale is used.
type SpriteRenderer struct {
	ComponentBase
	Sprite *SpriteBuffer
	// Spin turns the sprite clockwise, in degrees per second.
	Spin     float64
	Centered bool

	obj     *GameObject
	angle   float64
	scaled  *SpriteBuffer
	rotated *SpriteBuffer
}

// NewSpriteRenderer returns a renderer for sprite.
func NewSpriteRenderer(sprite *SpriteBuffer) *SpriteRenderer {
	return &SpriteRenderer{Sprite: sprite}
}

func (r *SpriteRenderer) OnAttach(obj *GameObject) bool {
	r.obj = obj
	return true
}

func (r *SpriteRenderer) Update(frame FrameInfo, _ *InputInfo) {
	if r.Spin != 0 {
		r.angle = math.Mod(r.angle+r.Spin*frame.Delta, 360)
	}
}

func (r *SpriteRenderer) Render(dst ImageBuffer) {
	if r.Sprite == nil {
		return
	}
	var src ImageBuffer = r.Sprite
	angle, sx := r.angle, 1.0
	if t, ok := GetComponent[*TransformComponent](r.obj); ok {
		angle += t.Rotation()
		sx, _ = t.Scale()
	}
	if sx > 0 && sx != 1 {
		if r.scaled == nil {
			r.scaled = NewSpriteBuffer(0, 0)
		}
		if err := src.ScaleInto(sx, r.scaled); err == nil {
			src = r.scaled
		}
	}
	if math.Mod(angle, 360) != 0 {
		if r.rotated == nil {
			r.rotated = NewSpriteBuffer(0, 0)
		}
		src.RotateInto(angle, r.rotated)
		src = r.rotated
	}
	x, y := placement(r.obj, src.Width(), src.Height(), r.Centered)
	src.Blend(dst, x, y)
}

func (r *SpriteRenderer) Debug(sink DebugSink) {
	if r.Sprite == nil {
		sink.Text("sprite: none")
		return
	}
	sink.Text(fmt.Sprintf("sprite %dx%d angle %.1f", r.Sprite.Width(), r.Sprite.Height(), r.angle))
}

// --- AnimationComponent ---

// AnimationComponent advances an Animation every update and blends its
// current frame at the object's transform.
type AnimationComponent struct {
	ComponentBase
	Animation *Animation
	Centered  bool

	obj *GameObject
}

// NewAnimationComponent returns a component playing anim.
func NewAnimationComponent(anim *Animation) *AnimationComponent {
	return &AnimationComponent{Animation: anim}
}

func (a *AnimationComponent) OnAttach(obj *GameObject) bool {
	a.obj = obj
	return a.Animation != nil
}

func (a *AnimationComponent) Update(frame FrameInfo, _ *InputInfo) {
	a.Animation.Update(frame.Delta)
}

func (a *AnimationComponent) Render(dst ImageBuffer) {
	f := a.Animation.Frame()
	x, y := placement(a.obj, f.Width(), f.Height(), a.Centered)
	f.Blend(dst, x, y)
}

func (a *AnimationComponent) Debug(sink DebugSink) {
	sink.Text(fmt.Sprintf("On Frame %d", a.Animation.CurrentFrame()))
}

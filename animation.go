package blueberry

import "fmt"

// Animation steps through a fixed list of frames at a constant frame
// duration. Frames are shared, usually with the Atlas they came from.
type Animation struct {
	frames        []*SpriteBuffer
	frameDuration float64
	elapsed       float64
	current       int
}

// NewAnimation returns an animation over frames, each shown for
// frameDuration seconds.
func NewAnimation(frames []*SpriteBuffer, frameDuration float64) (*Animation, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("blueberry: animation needs at least one frame: %w", ErrInvalidSize)
	}
	if frameDuration < 0 {
		return nil, fmt.Errorf("blueberry: animation frame duration %v: %w", frameDuration, ErrInvalidSize)
	}
	return &Animation{frames: frames, frameDuration: frameDuration}, nil
}

// NewAnimationFromAtlas animates every buffer of atlas in extraction order.
func NewAnimationFromAtlas(atlas *Atlas, frameDuration float64) (*Animation, error) {
	return NewAnimation(atlas.Buffers(), frameDuration)
}

// Update adds delta seconds. Once the accumulated time reaches the frame
// duration the animation advances exactly one frame, wrapping at the end, and
// the accumulator restarts at zero. Long deltas do not skip frames.
func (a *Animation) Update(delta float64) {
	a.elapsed += delta
	if a.elapsed >= a.frameDuration {
		a.current = (a.current + 1) % len(a.frames)
		a.elapsed = 0
	}
}

// Frame returns the buffer for the current frame.
func (a *Animation) Frame() *SpriteBuffer {
	return a.frames[a.current]
}

// CurrentFrame returns the current frame index.
func (a *Animation) CurrentFrame() int { return a.current }

// TotalFrames returns the number of frames.
func (a *Animation) TotalFrames() int { return len(a.frames) }

// FrameDuration returns the seconds each frame is shown.
func (a *Animation) FrameDuration() float64 { return a.frameDuration }

// Reset rewinds to the first frame.
func (a *Animation) Reset() {
	a.current = 0
	a.elapsed = 0
}

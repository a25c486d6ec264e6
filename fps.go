package blueberry

import "fmt"

// fpsRefresh is how often, in seconds, FPSComponent recomputes its reading.
const fpsRefresh = 0.5

// FPSComponent measures the update rate from frame deltas. The reading is
// refreshed every half second and shown through Debug.
type FPSComponent struct {
	ComponentBase
	elapsed float64
	frames  int
	fps     float64
}

// NewFPSComponent returns an FPS counter reading zero until the first
// refresh.
func NewFPSComponent() *FPSComponent {
	return &FPSComponent{}
}

// FPS returns the last computed frame rate.
func (f *FPSComponent) FPS() float64 { return f.fps }

func (f *FPSComponent) Update(frame FrameInfo, _ *InputInfo) {
	f.elapsed += frame.Delta
	f.frames++
	if f.elapsed < fpsRefresh {
		return
	}
	f.fps = float64(f.frames) / f.elapsed
	f.elapsed = 0
	f.frames = 0
}

func (f *FPSComponent) Debug(sink DebugSink) {
	sink.Text(fmt.Sprintf("FPS: %.1f", f.fps))
}

package blueberry

import (
	"errors"
	"testing"
)

// frameWatcher records the FrameInfo it is updated with.
type frameWatcher struct {
	ComponentBase
	seen []FrameInfo
}

func (p *frameWatcher) Update(frame FrameInfo, _ *InputInfo) {
	p.seen = append(p.seen, frame)
}

func TestGame_UpdatePassesFrameInfo(t *testing.T) {
	g := NewGame(4, 4)
	watcher := &frameWatcher{}
	_ = g.State.Add(NewGameObject("watcher", watcher))

	g.Update(0.25)
	g.Update(0.5)

	if len(watcher.seen) != 2 {
		t.Fatalf("updates = %d, want 2", len(watcher.seen))
	}
	if watcher.seen[0] != (FrameInfo{Delta: 0.25, Frame: 0}) {
		t.Errorf("first = %+v", watcher.seen[0])
	}
	if watcher.seen[1] != (FrameInfo{Delta: 0.5, Frame: 1}) {
		t.Errorf("second = %+v", watcher.seen[1])
	}
	if g.Frame() != 2 {
		t.Errorf("Frame = %d, want 2", g.Frame())
	}
}

func TestGame_DrawDumpsAndClears(t *testing.T) {
	g := NewGame(2, 2)
	_ = g.State.Add(NewGameObject("dot", NewSpriteRenderer(solid(1, 1, Color{10, 20, 30, 255}))))

	dst := make([]byte, 16)
	if err := g.Draw(dst); err != nil {
		t.Fatal(err)
	}
	if dst[0] != 10 || dst[1] != 20 || dst[2] != 30 || dst[3] != 255 {
		t.Errorf("first pixel = %v, want [10 20 30 255]", dst[:4])
	}
	if dst[4] != 0 || dst[7] != 0 {
		t.Errorf("second pixel = %v, want clear", dst[4:8])
	}
	if n := countNonClear(g.Camera); n != 0 {
		t.Errorf("camera holds %d pixels after Draw, want 0", n)
	}
}

func TestGame_DrawShortBuffer(t *testing.T) {
	g := NewGame(2, 2)
	if err := g.Draw(make([]byte, 4)); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("err = %v, want ErrInvalidSize", err)
	}
	if err := g.Draw(nil); err != nil {
		t.Errorf("Draw(nil) = %v, want nil", err)
	}
}

func TestGame_CameraScrollsRender(t *testing.T) {
	g := NewGame(4, 4)
	_ = g.State.Add(NewGameObject("dot",
		NewTransformComponent(nil, 5, 1),
		NewSpriteRenderer(solid(1, 1, RGB(1, 1, 1)))))
	g.Camera.SetOffset(-3, 0)

	g.State.Render(g.Camera)
	if g.Camera.Pixel(2, 1) != RGB(1, 1, 1) {
		t.Error("dot not drawn at its scrolled position")
	}
}

func TestGame_FromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 32, 16
	cfg.ScreenshotDir = "shots"
	cfg.Debug = true
	g := NewGameFromConfig(&cfg)

	if g.Camera.Width() != 32 || g.Camera.Height() != 16 {
		t.Errorf("camera = %dx%d, want 32x16", g.Camera.Width(), g.Camera.Height())
	}
	if g.ScreenshotDir != "shots" {
		t.Errorf("ScreenshotDir = %q", g.ScreenshotDir)
	}
	if !g.DebugMode() {
		t.Error("DebugMode = false")
	}
}

func TestGame_Debug(t *testing.T) {
	g := NewGame(2, 2)
	_ = g.State.Add(NewGameObject("fps", NewFPSComponent()))
	var lines DebugLines
	g.Debug(&lines)
	if lines.String() != "fps\n  FPS: 0.0" {
		t.Errorf("Debug = %q", lines.String())
	}
}

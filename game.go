package blueberry

import (
	"time"

	"go.uber.org/zap"
)

// Game ties a GameState to the camera buffer it renders into and the input
// snapshot its components read. A presentation backend drives it: fill
// Input, call Update, then Draw into the frame bytes it presents.
type Game struct {
	State  *GameState
	Camera *CamBuffer

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string

	input *InputInfo
	frame uint64
	debug bool

	screenshotQueue []string
	injectQueue     []syntheticEvent
	runner          *ScriptRunner
}

// NewGame creates a game rendering into a w×h camera buffer.
func NewGame(w, h int) *Game {
	return &Game{
		State:         NewGameState(),
		Camera:        NewCamBuffer(w, h),
		ScreenshotDir: defaultScreenshotDir,
		input:         NewInputInfo(),
	}
}

// NewGameFromConfig creates a game sized and configured by cfg.
func NewGameFromConfig(cfg *Config) *Game {
	g := NewGame(cfg.Width, cfg.Height)
	if cfg.ScreenshotDir != "" {
		g.ScreenshotDir = cfg.ScreenshotDir
	}
	g.SetDebugMode(cfg.Debug)
	return g
}

// Input returns the snapshot components receive in Update.
func (g *Game) Input() *InputInfo { return g.input }

// Frame returns the number of completed updates.
func (g *Game) Frame() uint64 { return g.frame }

// Update runs one tick: scripted input, then every object's Update, then the
// camera's follow and scroll animations.
func (g *Game) Update(delta float64) {
	if g.runner != nil {
		g.runner.step(g)
	}
	g.processInjectedInput()

	g.State.Update(FrameInfo{Delta: delta, Frame: g.frame}, g.input)
	g.Camera.Update(delta)
	g.frame++
}

// Draw renders every object into the camera buffer, captures queued
// screenshots, copies the frame into dst as RGBA8 and clears the buffer for
// the next frame. A nil dst skips the copy.
func (g *Game) Draw(dst []byte) error {
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	g.State.Render(g.Camera)
	g.flushScreenshots()

	var err error
	if dst != nil {
		err = g.Camera.Dump(dst)
	}
	g.Camera.Clear()

	if g.debug {
		logger.Debug("frame drawn",
			zap.Uint64("frame", g.frame),
			zap.Duration("took", time.Since(t0)))
	}
	return err
}

// Debug writes every object's debug lines to sink.
func (g *Game) Debug(sink DebugSink) {
	g.State.Debug(sink)
}

// SetDebugMode enables timing logs for the game and its state.
func (g *Game) SetDebugMode(enabled bool) {
	g.debug = enabled
	g.State.SetDebugMode(enabled)
}

// DebugMode reports whether debug mode is on.
func (g *Game) DebugMode() bool { return g.debug }

// SetScriptRunner attaches a ScriptRunner. Its steps run at the start of each
// Update. Nil detaches.
func (g *Game) SetScriptRunner(r *ScriptRunner) {
	g.runner = r
}

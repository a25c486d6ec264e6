// Package terminal presents a blueberry.Game in a terminal using tcell.
//
// Each character cell shows two frame pixels stacked vertically with the
// upper half block '▀': the foreground is the top pixel and the background
// the bottom one. A 240×160 frame needs a 240×80 terminal; larger frames are
// cropped.
package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/phanxgames/blueberry"
)

// keyHold is how long a key counts as held after its last press. Terminals
// report presses and auto-repeats but never releases.
const keyHold = 150 * time.Millisecond

// halfBlock is the upper half block glyph.
const halfBlock = '▀'

var backdrop = blueberry.RGB(0, 0, 0)

// Backend drives a blueberry.Game from a tcell screen.
type Backend struct {
	screen tcell.Screen
	game   *blueberry.Game
	cfg    blueberry.Config
	pix    []byte

	pressedAt map[blueberry.Key]time.Time
	debug     blueberry.DebugLines
	showDebug bool
}

// New creates a backend drawing game onto an initialised screen.
func New(screen tcell.Screen, game *blueberry.Game, cfg blueberry.Config) *Backend {
	return &Backend{
		screen:    screen,
		game:      game,
		cfg:       cfg,
		pix:       make([]byte, cfg.Width*cfg.Height*4),
		pressedAt: make(map[blueberry.Key]time.Time),
		showDebug: cfg.Debug,
	}
}

// Run opens the terminal, plays game until Ctrl+C or ctx ends, and restores
// the terminal.
func Run(ctx context.Context, game *blueberry.Game, cfg blueberry.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	return New(screen, game, cfg).Loop(ctx)
}

// Loop ticks the game at cfg.TPS and applies terminal events between ticks.
// Events are read on their own goroutine and handed over on a channel, so
// the game is only touched from the loop.
func (b *Backend) Loop(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(b.cfg.TPS))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go b.pollEvents(ctx, events)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !b.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			b.Step(now.Sub(last).Seconds(), now)
			last = now
		}
	}
}

// pollEvents forwards screen events to events until the screen is finalized
// or ctx is done. events is closed only when the screen is finalized.
func (b *Backend) pollEvents(ctx context.Context, events chan<- tcell.Event) {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Step releases expired keys, runs one game tick, presents the frame and
// starts a fresh input frame.
func (b *Backend) Step(delta float64, now time.Time) {
	in := b.game.Input()
	for k, at := range b.pressedAt {
		if now.Sub(at) >= keyHold {
			in.SetKey(k, false)
			delete(b.pressedAt, k)
		}
	}

	b.game.Update(delta)
	if err := b.game.Draw(b.pix); err != nil {
		blueberry.Logger().Error("draw failed", zap.Error(err))
		return
	}
	b.present()
	in.BeginFrame()
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (b *Backend) HandleEvent(ev tcell.Event) bool {
	in := b.game.Input()
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		k, ok := mapKey(ev.Key(), ev.Rune())
		if !ok {
			return true
		}
		if k == blueberry.KeyF1 {
			b.showDebug = !b.showDebug
		}
		in.SetKey(k, true)
		b.pressedAt[k] = ev.When()
		if ev.Modifiers()&tcell.ModShift != 0 {
			in.SetKey(blueberry.KeyShift, true)
			b.pressedAt[blueberry.KeyShift] = ev.When()
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		in.SetMousePos(float64(x), float64(y))
		in.SetMousePixelPos(x, y*2)
		buttons := ev.Buttons()
		in.SetMouseButton(blueberry.MouseButtonLeft, buttons&tcell.Button1 != 0)
		in.SetMouseButton(blueberry.MouseButtonRight, buttons&tcell.Button2 != 0)
		in.SetMouseButton(blueberry.MouseButtonMiddle, buttons&tcell.Button3 != 0)
	case *tcell.EventResize:
		b.screen.Sync()
	}
	return true
}

// present copies the dumped frame to the screen, plus the debug overlay
// below it when enabled.
func (b *Backend) present() {
	drawFrame(b.screen, b.pix, b.cfg.Width, b.cfg.Height)
	if b.showDebug {
		b.debug.Reset()
		b.game.Debug(&b.debug)
		row := (b.cfg.Height + 1) / 2
		for i, line := range b.debug {
			drawText(b.screen, 0, row+i, line, tcell.StyleDefault)
		}
	}
	b.screen.Show()
}

// drawFrame writes a w×h RGBA8 frame as half-block cells.
func drawFrame(screen tcell.Screen, pix []byte, w, h int) {
	sw, sh := screen.Size()
	rows := min((h+1)/2, sh)
	cols := min(w, sw)
	at := func(x, y int) blueberry.Color {
		if y >= h {
			return backdrop
		}
		o := (x + y*w) * 4
		return backdrop.Blend(blueberry.Color{R: pix[o], G: pix[o+1], B: pix[o+2], A: pix[o+3]})
	}
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			screen.SetContent(cx, cy, halfBlock, nil, cellStyle(at(cx, cy*2), at(cx, cy*2+1)))
		}
	}
}

// cellStyle colors a half-block cell: top pixel in front, bottom behind.
func cellStyle(top, bottom blueberry.Color) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
		Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Package ebiten presents a blueberry.Game in an Ebitengine window.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/phanxgames/blueberry"
)

// DebugToggleKey shows and hides the debug overlay.
const DebugToggleKey = ebiten.KeyF1

// Backend adapts a blueberry.Game to ebiten.Game. The frame is uploaded at
// its native resolution and Ebitengine scales it to the window.
type Backend struct {
	game *blueberry.Game
	cfg  blueberry.Config

	frame *ebiten.Image
	pix   []byte

	showDebug bool
	debug     blueberry.DebugLines
}

var _ ebiten.Game = (*Backend)(nil)

// New creates a backend for game. cfg supplies the frame size and scale.
func New(game *blueberry.Game, cfg blueberry.Config) *Backend {
	return &Backend{
		game:      game,
		cfg:       cfg,
		frame:     ebiten.NewImage(cfg.Width, cfg.Height),
		pix:       make([]byte, cfg.Width*cfg.Height*4),
		showDebug: cfg.Debug,
	}
}

// Run opens the window described by cfg and runs game until it closes.
func Run(game *blueberry.Game, cfg blueberry.Config) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(New(game, cfg))
}

// Update implements ebiten.Game.
func (b *Backend) Update() error {
	in := b.game.Input()
	in.BeginFrame()
	pollInput(in, b.cfg.Scale)

	if inpututil.IsKeyJustPressed(DebugToggleKey) {
		b.showDebug = !b.showDebug
	}

	b.game.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw implements ebiten.Game.
func (b *Backend) Draw(screen *ebiten.Image) {
	if err := b.game.Draw(b.pix); err != nil {
		blueberry.Logger().Error("draw failed", zap.Error(err))
		return
	}
	premultiply(b.pix)
	b.frame.WritePixels(b.pix)
	screen.DrawImage(b.frame, nil)

	if b.showDebug {
		b.debug.Reset()
		b.game.Debug(&b.debug)
		ebitenutil.DebugPrint(screen, b.debug.String())
	}
}

// Layout implements ebiten.Game. The logical screen is always the frame.
func (b *Backend) Layout(_, _ int) (int, int) {
	return b.cfg.Width, b.cfg.Height
}

// premultiply converts straight-alpha RGBA8 in place to the premultiplied
// form WritePixels expects.
func premultiply(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		a := uint32(pix[i+3])
		if a == 255 {
			continue
		}
		pix[i] = uint8((uint32(pix[i])*a + 127) / 255)
		pix[i+1] = uint8((uint32(pix[i+1])*a + 127) / 255)
		pix[i+2] = uint8((uint32(pix[i+2])*a + 127) / 255)
	}
}

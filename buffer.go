package blueberry

import "fmt"

// ImageBuffer is a rectangular, row-major grid of Colors with its origin at
// the top-left. SpriteBuffer and CamBuffer implement it.
//
// Pixel and SetPixel follow a "safe access" contract: an out-of-range
// coordinate clamps the linear index x+y*Width into the pixel slice instead of
// failing, so a stray read returns an edge pixel and a stray write lands on
// one. Use PixelAt for a checked read. BlendPixel and Contains are strict.
type ImageBuffer interface {
	Width() int
	Height() int
	// Pixels returns the backing slice (len == Width*Height). The caller
	// must not retain it across calls that resize the buffer.
	Pixels() []Color
	// Offset is added to every coordinate when this buffer is blended onto
	// another one or another buffer is blended onto it. Zero for sprites.
	Offset() Vec2i

	Pixel(x, y int) Color
	PixelAt(x, y int) (Color, bool)
	SetPixel(c Color, x, y int)
	BlendPixel(c Color, x, y int)
	Contains(x, y int) bool

	// Blend composites the whole buffer onto dst with its top-left at
	// (x, y), skipping pixels that fall outside dst.
	Blend(dst ImageBuffer, x, y int)

	// Rotate replaces the contents with a RotSprite rotation by angle
	// degrees clockwise, resizing to the rotated bounds.
	Rotate(angle float64)
	// RotateInto writes the rotation into target and leaves the receiver
	// unchanged.
	RotateInto(angle float64, target *SpriteBuffer)
	// Scale replaces the contents with a Scale2x-based upscale.
	Scale(factor float64) error
	// ScaleInto writes the scaled copy into target.
	ScaleInto(factor float64, target *SpriteBuffer) error

	Fill(c Color)
	Clear()
}

// pixelBuffer carries the storage and behavior shared by every buffer kind.
type pixelBuffer struct {
	pix    []Color
	width  int
	height int
	offset Vec2i
}

func newPixelBuffer(w, h int) pixelBuffer {
	w, h = max(w, 0), max(h, 0)
	return pixelBuffer{
		pix:    make([]Color, w*h), // zero value is ColorClear
		width:  w,
		height: h,
	}
}

func (b *pixelBuffer) Width() int      { return b.width }
func (b *pixelBuffer) Height() int     { return b.height }
func (b *pixelBuffer) Pixels() []Color { return b.pix }
func (b *pixelBuffer) Offset() Vec2i   { return b.offset }

// index maps (x, y) to a slice index, clamping into [0, len-1].
func (b *pixelBuffer) index(x, y int) int {
	i := x + y*b.width
	if i < 0 {
		return 0
	}
	if last := len(b.pix) - 1; i > last {
		return last
	}
	return i
}

// Pixel returns the color at (x, y), clamping out-of-range coordinates.
// An empty buffer returns ColorClear.
func (b *pixelBuffer) Pixel(x, y int) Color {
	if len(b.pix) == 0 {
		return ColorClear
	}
	return b.pix[b.index(x, y)]
}

// PixelAt returns the color at (x, y) and false when (x, y) is outside the
// buffer.
func (b *pixelBuffer) PixelAt(x, y int) (Color, bool) {
	if !b.Contains(x, y) {
		return ColorClear, false
	}
	return b.pix[x+y*b.width], true
}

// SetPixel overwrites the color at (x, y), clamping out-of-range coordinates.
func (b *pixelBuffer) SetPixel(c Color, x, y int) {
	if len(b.pix) == 0 {
		return
	}
	b.pix[b.index(x, y)] = c
}

// BlendPixel composites c over the pixel at (x, y). No-op outside the buffer.
func (b *pixelBuffer) BlendPixel(c Color, x, y int) {
	if !b.Contains(x, y) {
		return
	}
	i := x + y*b.width
	b.pix[i] = b.pix[i].Blend(c)
}

// Contains reports whether (x, y) addresses a pixel of the buffer.
func (b *pixelBuffer) Contains(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *pixelBuffer) Blend(dst ImageBuffer, x, y int) {
	off := b.offset.Add(dst.Offset())
	for j := 0; j < b.height; j++ {
		ty := y + j + off.Y
		row := b.pix[j*b.width : (j+1)*b.width]
		for i, c := range row {
			tx := x + i + off.X
			if !dst.Contains(tx, ty) {
				continue
			}
			dst.BlendPixel(c, tx, ty)
		}
	}
}

func (b *pixelBuffer) Rotate(angle float64) {
	w, h, pix := rotSprite(b.pix, b.width, b.height, angle)
	b.setBuffer(pix, w, h)
}

func (b *pixelBuffer) RotateInto(angle float64, target *SpriteBuffer) {
	w, h, pix := rotSprite(b.pix, b.width, b.height, angle)
	target.setBuffer(pix, w, h)
}

func (b *pixelBuffer) Scale(factor float64) error {
	w, h, pix, err := scalePixelArt(b.pix, b.width, b.height, factor)
	if err != nil {
		return err
	}
	b.setBuffer(pix, w, h)
	return nil
}

func (b *pixelBuffer) ScaleInto(factor float64, target *SpriteBuffer) error {
	w, h, pix, err := scalePixelArt(b.pix, b.width, b.height, factor)
	if err != nil {
		return err
	}
	target.setBuffer(pix, w, h)
	return nil
}

// Fill sets every pixel to c.
func (b *pixelBuffer) Fill(c Color) {
	for i := range b.pix {
		b.pix[i] = c
	}
}

// Clear resets every pixel to ColorClear, keeping the dimensions.
func (b *pixelBuffer) Clear() {
	clear(b.pix)
}

// setBuffer takes ownership of pix as the new w×h contents.
func (b *pixelBuffer) setBuffer(pix []Color, w, h int) {
	b.pix = pix
	b.width = w
	b.height = h
}

// --- SpriteBuffer ---

// SpriteBuffer is an independently owned pixel buffer holding one sprite or
// one animation frame.
type SpriteBuffer struct {
	pixelBuffer
}

var _ ImageBuffer = (*SpriteBuffer)(nil)

// NewSpriteBuffer creates a w×h buffer filled with ColorClear. Negative
// dimensions are treated as zero; an empty buffer is a valid RotateInto or
// ScaleInto target.
func NewSpriteBuffer(w, h int) *SpriteBuffer {
	return &SpriteBuffer{pixelBuffer: newPixelBuffer(w, h)}
}

// NewSpriteBufferRGBA chunks row-major RGBA8 bytes into a w×h buffer.
func NewSpriteBufferRGBA(w, h int, rgba []byte) (*SpriteBuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("blueberry: sprite %dx%d: %w", w, h, ErrInvalidSize)
	}
	if len(rgba) < w*h*4 {
		return nil, fmt.Errorf("blueberry: sprite %dx%d needs %d bytes, got %d: %w",
			w, h, w*h*4, len(rgba), ErrInvalidSize)
	}
	s := NewSpriteBuffer(w, h)
	for i := range s.pix {
		p := rgba[i*4 : i*4+4]
		s.pix[i] = Color{p[0], p[1], p[2], p[3]}
	}
	return s, nil
}

// Clone returns a deep copy of the buffer.
func (s *SpriteBuffer) Clone() *SpriteBuffer {
	c := &SpriteBuffer{pixelBuffer: s.pixelBuffer}
	c.pix = append([]Color(nil), s.pix...)
	return c
}

// Equal reports whether both buffers have the same size and pixels.
func (s *SpriteBuffer) Equal(o *SpriteBuffer) bool {
	if s.width != o.width || s.height != o.height {
		return false
	}
	for i, c := range s.pix {
		if o.pix[i] != c {
			return false
		}
	}
	return true
}

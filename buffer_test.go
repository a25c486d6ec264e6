package blueberry

import (
	"errors"
	"testing"
)

func TestNewSpriteBuffer_Clear(t *testing.T) {
	s := NewSpriteBuffer(3, 2)
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", s.Width(), s.Height())
	}
	if len(s.Pixels()) != 6 {
		t.Fatalf("len(Pixels) = %d, want 6", len(s.Pixels()))
	}
	for i, c := range s.Pixels() {
		if c != ColorClear {
			t.Errorf("pixel %d = %v, want clear", i, c)
		}
	}
}

func TestNewSpriteBuffer_NegativeIsEmpty(t *testing.T) {
	s := NewSpriteBuffer(-4, 5)
	if s.Width() != 0 || s.Height() != 5 || len(s.Pixels()) != 0 {
		t.Errorf("got %dx%d with %d pixels, want 0x5 with 0", s.Width(), s.Height(), len(s.Pixels()))
	}
	if got := s.Pixel(1, 1); got != ColorClear {
		t.Errorf("Pixel on empty = %v, want clear", got)
	}
	s.SetPixel(RGB(1, 1, 1), 0, 0) // must not panic
}

func TestNewSpriteBufferRGBA(t *testing.T) {
	rgba := []byte{
		1, 2, 3, 4, 5, 6, 7, 8,
		9, 10, 11, 12, 13, 14, 15, 16,
	}
	s, err := NewSpriteBufferRGBA(2, 2, rgba)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Pixel(1, 0); got != (Color{5, 6, 7, 8}) {
		t.Errorf("Pixel(1,0) = %v, want {5 6 7 8}", got)
	}
	if got := s.Pixel(0, 1); got != (Color{9, 10, 11, 12}) {
		t.Errorf("Pixel(0,1) = %v, want {9 10 11 12}", got)
	}
}

func TestNewSpriteBufferRGBA_Errors(t *testing.T) {
	if _, err := NewSpriteBufferRGBA(0, 2, nil); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero width err = %v, want ErrInvalidSize", err)
	}
	if _, err := NewSpriteBufferRGBA(2, 2, make([]byte, 15)); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("short data err = %v, want ErrInvalidSize", err)
	}
}

func TestSetPixel_Get(t *testing.T) {
	s := NewSpriteBuffer(4, 4)
	c := RGB(9, 8, 7)
	s.SetPixel(c, 2, 3)
	if got := s.Pixel(2, 3); got != c {
		t.Errorf("Pixel(2,3) = %v, want %v", got, c)
	}
	if got := s.Pixels()[2+3*4]; got != c {
		t.Errorf("backing slice = %v, want %v (row-major)", got, c)
	}
}

func TestPixel_ClampsOutOfRange(t *testing.T) {
	s := NewSpriteBuffer(2, 2)
	first, last := RGB(1, 0, 0), RGB(0, 0, 1)
	s.SetPixel(first, 0, 0)
	s.SetPixel(last, 1, 1)

	if got := s.Pixel(-5, -5); got != first {
		t.Errorf("Pixel(-5,-5) = %v, want first pixel %v", got, first)
	}
	if got := s.Pixel(10, 10); got != last {
		t.Errorf("Pixel(10,10) = %v, want last pixel %v", got, last)
	}

	s.SetPixel(RGB(7, 7, 7), 99, 99)
	if got := s.Pixel(1, 1); got != RGB(7, 7, 7) {
		t.Errorf("clamped SetPixel wrote %v to last pixel, want {7 7 7 255}", got)
	}
	if len(s.Pixels()) != 4 {
		t.Errorf("len(Pixels) = %d, want 4", len(s.Pixels()))
	}
}

func TestPixelAt_Checked(t *testing.T) {
	s := NewSpriteBuffer(2, 2)
	s.SetPixel(RGB(5, 5, 5), 1, 0)
	if c, ok := s.PixelAt(1, 0); !ok || c != RGB(5, 5, 5) {
		t.Errorf("PixelAt(1,0) = %v, %v, want {5 5 5 255}, true", c, ok)
	}
	for _, p := range []Vec2i{{-1, 0}, {2, 0}, {0, 2}, {0, -1}} {
		if _, ok := s.PixelAt(p.X, p.Y); ok {
			t.Errorf("PixelAt(%d,%d) ok = true, want false", p.X, p.Y)
		}
	}
}

func TestContains(t *testing.T) {
	s := NewSpriteBuffer(3, 2)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{2, 1, true},
		{3, 0, false},
		{0, 2, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, tt := range tests {
		if got := s.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBlendPixel_IgnoresOutside(t *testing.T) {
	s := NewSpriteBuffer(2, 2)
	s.BlendPixel(RGB(1, 1, 1), 2, 0)
	s.BlendPixel(RGB(1, 1, 1), -1, 0)
	for i, c := range s.Pixels() {
		if c != ColorClear {
			t.Errorf("pixel %d = %v, want clear", i, c)
		}
	}
	s.BlendPixel(RGB(1, 1, 1), 1, 1)
	if got := s.Pixel(1, 1); got != RGB(1, 1, 1) {
		t.Errorf("Pixel(1,1) = %v, want {1 1 1 255}", got)
	}
}

func TestBlend_ClippedBlit(t *testing.T) {
	dst := NewSpriteBuffer(10, 10)
	src := NewSpriteBuffer(4, 4)
	red := RGB(255, 0, 0)
	src.Fill(red)

	src.Blend(dst, -2, -2)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := ColorClear
			if x < 2 && y < 2 {
				want = red
			}
			if got := dst.Pixel(x, y); got != want {
				t.Errorf("dst(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestBlend_ClippedBottomRight(t *testing.T) {
	dst := NewSpriteBuffer(4, 4)
	src := NewSpriteBuffer(3, 3)
	src.Fill(RGB(0, 255, 0))
	src.Blend(dst, 3, 3)

	written := 0
	for _, c := range dst.Pixels() {
		if c != ColorClear {
			written++
		}
	}
	if written != 1 {
		t.Errorf("written pixels = %d, want 1", written)
	}
	if got := dst.Pixel(3, 3); got != RGB(0, 255, 0) {
		t.Errorf("dst(3,3) = %v, want green", got)
	}
}

func TestBlend_TransparentSourceKeepsDst(t *testing.T) {
	dst := NewSpriteBuffer(2, 1)
	dst.Fill(RGB(0, 0, 255))
	src := NewSpriteBuffer(2, 1)
	src.SetPixel(RGB(255, 0, 0), 0, 0)

	src.Blend(dst, 0, 0)
	if got := dst.Pixel(0, 0); got != RGB(255, 0, 0) {
		t.Errorf("dst(0,0) = %v, want red", got)
	}
	if got := dst.Pixel(1, 0); got != RGB(0, 0, 255) {
		t.Errorf("dst(1,0) = %v, want blue", got)
	}
}

func TestBlend_UsesCameraOffset(t *testing.T) {
	cam := NewCamBuffer(8, 8)
	cam.SetOffset(-3, 2)
	src := NewSpriteBuffer(1, 1)
	src.Fill(RGB(1, 2, 3))

	src.Blend(cam, 5, 1)
	if got := cam.Pixel(2, 3); got != RGB(1, 2, 3) {
		t.Errorf("cam(2,3) = %v, want {1 2 3 255}", got)
	}
}

func TestClear_RestoresDefault(t *testing.T) {
	s := NewSpriteBuffer(5, 3)
	s.Fill(RGB(10, 10, 10))
	s.Clear()
	if s.Width() != 5 || s.Height() != 3 {
		t.Errorf("size after Clear = %dx%d, want 5x3", s.Width(), s.Height())
	}
	for i, c := range s.Pixels() {
		if c != ColorClear {
			t.Fatalf("pixel %d = %v, want clear", i, c)
		}
	}
}

func TestClone_Independent(t *testing.T) {
	s := NewSpriteBuffer(2, 2)
	s.Fill(RGB(1, 1, 1))
	c := s.Clone()
	if !c.Equal(s) {
		t.Fatal("clone not equal to source")
	}
	c.SetPixel(RGB(2, 2, 2), 0, 0)
	if s.Pixel(0, 0) != RGB(1, 1, 1) {
		t.Error("writing the clone changed the source")
	}
	if c.Equal(s) {
		t.Error("Equal = true after divergence, want false")
	}
}

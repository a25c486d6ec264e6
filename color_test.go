package blueberry

import (
	"image/color"
	"testing"
)

var testBases = []Color{
	ColorClear,
	RGB(0, 0, 0),
	RGB(255, 255, 255),
	{12, 200, 99, 1},
	{128, 64, 32, 128},
	{255, 0, 255, 254},
}

func TestBlend_OpaqueReplaces(t *testing.T) {
	src := Color{10, 20, 30, 255}
	for _, base := range testBases {
		if got := base.Blend(src); got != src {
			t.Errorf("%v.Blend(%v) = %v, want %v", base, src, got, src)
		}
	}
}

func TestBlend_TransparentIsNoOp(t *testing.T) {
	for _, src := range []Color{ColorClear, {255, 255, 255, 0}, {1, 2, 3, 0}} {
		for _, base := range testBases {
			if got := base.Blend(src); got != base {
				t.Errorf("%v.Blend(%v) = %v, want %v", base, src, got, base)
			}
		}
	}
}

func TestBlend_HalfOverOpaque(t *testing.T) {
	base := RGB(0, 0, 255)
	got := base.Blend(Color{255, 0, 0, 128})
	want := Color{128, 0, 127, 255}
	if got != want {
		t.Errorf("Blend = %v, want %v", got, want)
	}
}

func TestBlend_HalfOverClear(t *testing.T) {
	got := ColorClear.Blend(Color{255, 0, 0, 128})
	want := Color{255, 0, 0, 128}
	if got != want {
		t.Errorf("Blend = %v, want %v", got, want)
	}
}

func TestBlend_AlphaAccumulates(t *testing.T) {
	c := ColorClear
	src := Color{200, 200, 200, 100}
	prev := uint8(0)
	for i := 0; i < 20; i++ {
		c = c.Blend(src)
		if c.A < prev {
			t.Fatalf("step %d: alpha decreased from %d to %d", i, prev, c.A)
		}
		prev = c.A
	}
	if c.A < 250 {
		t.Errorf("alpha after 20 blends = %d, want close to 255", c.A)
	}
	if c.R != 200 {
		t.Errorf("R = %d, want 200 (same color over itself never drifts)", c.R)
	}
}

func TestQuantize_Saturates(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-10, 0},
		{0.4, 0},
		{0.5, 1},
		{254.6, 255},
		{300, 255},
	}
	for _, tt := range tests {
		if got := quantize(tt.in); got != tt.want {
			t.Errorf("quantize(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestColorFrom_RoundTrip(t *testing.T) {
	in := color.NRGBA{R: 10, G: 20, B: 30, A: 200}
	got := ColorFrom(in)
	want := Color{10, 20, 30, 200}
	if got != want {
		t.Errorf("ColorFrom = %v, want %v", got, want)
	}
	if back := ColorFrom(got); back != want {
		t.Errorf("ColorFrom(Color) = %v, want %v", back, want)
	}
}

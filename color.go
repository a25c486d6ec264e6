package blueberry

import (
	"image/color"
	"math"
)

// Color is a straight-alpha RGBA8 pixel value.
type Color struct {
	R, G, B, A uint8
}

// ColorClear is full transparency and the fill value of new and cleared buffers.
var ColorClear = Color{0, 0, 0, 0}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 255}
}

// Blend composites incoming over c using the Porter-Duff "over" operator and
// returns the result. Channels are rounded and saturated into [0, 255].
func (c Color) Blend(incoming Color) Color {
	switch incoming.A {
	case 0:
		return c
	case 255:
		return incoming
	}

	aIn := float64(incoming.A) / 255
	aSelf := float64(c.A) / 255
	rest := aSelf * (1 - aIn)
	alpha := aIn + rest
	if alpha <= 0 {
		return ColorClear
	}

	mix := func(in, self uint8) uint8 {
		return quantize((float64(in)*aIn + float64(self)*rest) / alpha)
	}
	return Color{
		R: mix(incoming.R, c.R),
		G: mix(incoming.G, c.G),
		B: mix(incoming.B, c.B),
		A: quantize(alpha * 255),
	}
}

// quantize rounds v to the nearest 8-bit value, saturating instead of wrapping.
func quantize(v float64) uint8 {
	v = math.Round(v)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// RGBA implements color.Color. Values are alpha-premultiplied 16-bit.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// ColorFrom converts any color.Color into a straight-alpha Color.
func ColorFrom(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B, n.A}
}

package blueberry

import (
	"fmt"
	"math"
)

// scale2x doubles a w×h image with the EPX/Scale2x rule, which keeps hard
// pixel-art edges instead of blurring them. Border neighbours clamp to the
// edge pixel.
func scale2x(pix []Color, w, h int) ([]Color, int, int) {
	ow, oh := w*2, h*2
	out := make([]Color, ow*oh)
	at := func(x, y int) Color {
		x = min(max(x, 0), w-1)
		y = min(max(y, 0), h-1)
		return pix[x+y*w]
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := pix[x+y*w]
			a := at(x, y-1) // up
			b := at(x+1, y) // right
			c := at(x-1, y) // left
			d := at(x, y+1) // down

			e0, e1, e2, e3 := p, p, p, p
			if c == a && c != d && a != b {
				e0 = a
			}
			if a == b && a != c && b != d {
				e1 = b
			}
			if d == c && d != b && c != a {
				e2 = c
			}
			if b == d && b != a && d != c {
				e3 = d
			}

			i := 2*x + 2*y*ow
			out[i] = e0
			out[i+1] = e1
			out[i+ow] = e2
			out[i+ow+1] = e3
		}
	}
	return out, ow, oh
}

// resizeNearest resamples a w×h image to tw×th by nearest neighbour.
func resizeNearest(pix []Color, w, h, tw, th int) []Color {
	out := make([]Color, tw*th)
	for y := 0; y < th; y++ {
		sy := y * h / th
		for x := 0; x < tw; x++ {
			out[x+y*tw] = pix[x*w/tw+sy*w]
		}
	}
	return out
}

// scalePixelArt resizes to floor(w*factor)×floor(h*factor). Scale2x passes are
// applied while the doubled image still fits the target, then the remainder
// is covered by nearest neighbour.
func scalePixelArt(pix []Color, w, h int, factor float64) (int, int, []Color, error) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return 0, 0, nil, fmt.Errorf("blueberry: scale factor %v: %w", factor, ErrInvalidSize)
	}
	tw := int(float64(w) * factor)
	th := int(float64(h) * factor)
	if tw <= 0 || th <= 0 {
		return 0, 0, nil, fmt.Errorf("blueberry: scaling %dx%d by %v gives %dx%d: %w",
			w, h, factor, tw, th, ErrInvalidSize)
	}

	cur, cw, ch := pix, w, h
	for cw*2 <= tw && ch*2 <= th {
		cur, cw, ch = scale2x(cur, cw, ch)
	}
	if cw == tw && ch == th {
		if len(cur) > 0 && &cur[0] == &pix[0] {
			cur = append([]Color(nil), cur...)
		}
		return tw, th, cur, nil
	}
	return tw, th, resizeNearest(cur, cw, ch, tw, th), nil
}

package blueberry

import "math"

const (
	// rotSpriteUpscale is the supersampling factor: three Scale2x passes.
	rotSpriteUpscale = 8
	angleEpsilon     = 1e-9
)

// rotSprite rotates a w×h image clockwise by angle degrees using the RotSprite
// approach: upscale 8× with Scale2x, rotate by nearest neighbour, then sample
// each 8×8 block at its centre. Quarter turns take an exact path. The result
// is sized to the rotated bounding box and padded with ColorClear.
func rotSprite(pix []Color, w, h int, angle float64) (int, int, []Color) {
	if w == 0 || h == 0 {
		return w, h, nil
	}

	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	if q := math.Round(a / 90); math.Abs(a-q*90) < angleEpsilon {
		return rotateQuarter(pix, w, h, int(q)%4)
	}

	up, uw, uh := pix, w, h
	for i := 1; i < rotSpriteUpscale; i *= 2 {
		up, uw, uh = scale2x(up, uw, uh)
	}

	rad := a * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	ow := max(int(math.Ceil(float64(w)*math.Abs(cos)+float64(h)*math.Abs(sin)-angleEpsilon)), 1)
	oh := max(int(math.Ceil(float64(w)*math.Abs(sin)+float64(h)*math.Abs(cos)-angleEpsilon)), 1)

	out := make([]Color, ow*oh)
	halfUW, halfUH := float64(uw)/2, float64(uh)/2
	for oy := 0; oy < oh; oy++ {
		py := (float64(oy) + 0.5 - float64(oh)/2) * rotSpriteUpscale
		for ox := 0; ox < ow; ox++ {
			px := (float64(ox) + 0.5 - float64(ow)/2) * rotSpriteUpscale
			// inverse of the clockwise rotation (y axis points down)
			sx := int(math.Floor(px*cos + py*sin + halfUW))
			sy := int(math.Floor(-px*sin + py*cos + halfUH))
			if sx < 0 || sx >= uw || sy < 0 || sy >= uh {
				continue
			}
			out[ox+oy*ow] = up[sx+sy*uw]
		}
	}
	return ow, oh, out
}

// rotateQuarter rotates clockwise by turns*90 degrees without resampling.
func rotateQuarter(pix []Color, w, h, turns int) (int, int, []Color) {
	out := make([]Color, w*h)
	switch turns {
	case 0:
		copy(out, pix)
		return w, h, out
	case 1:
		for y := 0; y < w; y++ {
			for x := 0; x < h; x++ {
				out[x+y*h] = pix[y+(h-1-x)*w]
			}
		}
		return h, w, out
	case 2:
		for i, c := range pix {
			out[len(out)-1-i] = c
		}
		return w, h, out
	default:
		for y := 0; y < w; y++ {
			for x := 0; x < h; x++ {
				out[x+y*h] = pix[(w-1-y)+x*w]
			}
		}
		return h, w, out
	}
}

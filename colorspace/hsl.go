package colorspace

import "github.com/chewxy/math32"

// HSL4 is HSL with the extra interpolation factor X, the position of the
// middle channel between the lowest and highest channels. Keeping X lets
// HSL4ToRGB invert RGBToHSL4 without deriving it from the hue again.
//
// H is in [0, 6); S, L and X are in [0, 1]. H and X are 0 for grays.
type HSL4 struct {
	H, S, L, X float32
}

// RGBToHSL4 decomposes normalized RGB.
func RGBToHSL4(rgb ScaledRGB) HSL4 {
	r, g, b := rgb[0], rgb[1], rgb[2]
	hi, lo := maxMin(r, g, b)
	c := hi - lo
	l := (hi + lo) / 2
	if c == 0 {
		return HSL4{L: l}
	}
	h, x := hueSector(r, g, b, hi, c)
	return HSL4{
		H: h,
		S: c / (1 - math32.Abs(2*l-1)),
		L: l,
		X: x,
	}
}

// HSL4ToRGB rebuilds normalized RGB from hsl. The result is not clamped.
func HSL4ToRGB(hsl HSL4) ScaledRGB {
	c := (1 - math32.Abs(2*hsl.L-1)) * hsl.S
	lo := hsl.L - c/2
	mid := c*hsl.X + lo
	hi := c + lo
	return fromSector(hsl.H, hi, mid, lo)
}

// Lightness returns the HSL lightness of c without a full decomposition.
func Lightness(c Color) float32 {
	hi, lo := c.R, c.R
	for _, v := range [2]uint8{c.G, c.B} {
		if v > hi {
			hi = v
		}
		if v < lo {
			lo = v
		}
	}
	return (float32(hi) + float32(lo)) / channelMax / 2
}

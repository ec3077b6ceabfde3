package colorspace

import "github.com/chewxy/math32"

// HSV is hue in [0, 6), saturation and value in [0, 1].
type HSV struct {
	H, S, V float32
}

// RGBToHSV converts normalized RGB to HSV. Achromatic colors get hue 0.
func RGBToHSV(rgb ScaledRGB) HSV {
	r, g, b := rgb[0], rgb[1], rgb[2]
	hi, lo := maxMin(r, g, b)
	c := hi - lo
	if c == 0 {
		return HSV{0, 0, hi}
	}
	h, _ := hueSector(r, g, b, hi, c)
	return HSV{h, c / hi, hi}
}

// HSVToRGB converts HSV to normalized RGB. Hue wraps; saturation and value are
// clamped to [0, 1].
func HSVToRGB(hsv HSV) ScaledRGB {
	h := wrapHue(hsv.H)
	v := clamp01(hsv.V)
	c := v * clamp01(hsv.S)
	lo := v - c
	x := 1 - math32.Abs(math32.Mod(h, 2)-1)
	return fromSector(h, v, c*x+lo, lo)
}

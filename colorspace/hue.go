package colorspace

import "github.com/chewxy/math32"

// Hues are measured in sectors: [0, 6) where each unit is 60°.

func maxMin(r, g, b float32) (hi, lo float32) {
	hi, lo = r, r
	if g > hi {
		hi = g
	} else if g < lo {
		lo = g
	}
	if b > hi {
		hi = b
	} else if b < lo {
		lo = b
	}
	return hi, lo
}

// hueSector returns the hue of a chromatic color (c > 0) and the position of
// its middle channel between the lowest and highest ones.
func hueSector(r, g, b, hi, c float32) (h, x float32) {
	switch {
	case r == hi:
		h = (g - b) / c
		if h < 0 {
			h += 6
		}
		x = math32.Abs(g-b) / c
	case g == hi:
		h = 2 + (b-r)/c
		x = math32.Abs(b-r) / c
	default:
		h = 4 + (r-g)/c
		x = math32.Abs(r-g) / c
	}
	if h >= 6 {
		h -= 6
	}
	return h, x
}

// fromSector places hi, mid and lo on r, g and b according to the sector of h.
func fromSector(h, hi, mid, lo float32) ScaledRGB {
	switch {
	case h < 1:
		return ScaledRGB{hi, mid, lo}
	case h < 2:
		return ScaledRGB{mid, hi, lo}
	case h < 3:
		return ScaledRGB{lo, hi, mid}
	case h < 4:
		return ScaledRGB{lo, mid, hi}
	case h < 5:
		return ScaledRGB{mid, lo, hi}
	default:
		return ScaledRGB{hi, lo, mid}
	}
}

func wrapHue(h float32) float32 {
	h = math32.Mod(h, 6)
	if h < 0 {
		h += 6
	}
	return h
}

func clamp01(v float32) float32 {
	switch {
	case v > 1:
		return 1
	case v > 0:
		return v
	default:
		return 0
	}
}

package colorspace

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Gamma selects the transfer function between encoded and linear RGB.
// Neither direction clamps; callers clamp after converting back to a Color.
type Gamma int

const (
	// GammaExact is the piecewise sRGB curve.
	GammaExact Gamma = iota
	// GammaSimple is a pure 2.2 power law.
	GammaSimple
)

const (
	srgbGamma      float32 = 2.4
	srgbTransition float32 = 0.04045
	srgbOffset     float32 = 0.055
	srgbSlope      float32 = 12.92

	simpleGamma float32 = 2.2
)

// ToLinear removes the encoding from a single channel.
func (g Gamma) ToLinear(v float32) float32 {
	switch g {
	case GammaSimple:
		return math32.Pow(v, simpleGamma)
	default:
		if v > srgbTransition {
			return math32.Pow((v+srgbOffset)/(1+srgbOffset), srgbGamma)
		}
		return v / srgbSlope
	}
}

// ToEncoded applies the encoding to a single linear channel.
func (g Gamma) ToEncoded(v float32) float32 {
	switch g {
	case GammaSimple:
		return math32.Pow(v, 1/simpleGamma)
	default:
		if v > srgbTransition/srgbSlope {
			return (1+srgbOffset)*math32.Pow(v, 1/srgbGamma) - srgbOffset
		}
		return v * srgbSlope
	}
}

// ToLinearRGB applies ToLinear to every channel.
func (g Gamma) ToLinearRGB(rgb ScaledRGB) ScaledRGB {
	return ScaledRGB{g.ToLinear(rgb[0]), g.ToLinear(rgb[1]), g.ToLinear(rgb[2])}
}

// ToEncodedRGB applies ToEncoded to every channel.
func (g Gamma) ToEncodedRGB(rgb ScaledRGB) ScaledRGB {
	return ScaledRGB{g.ToEncoded(rgb[0]), g.ToEncoded(rgb[1]), g.ToEncoded(rgb[2])}
}

func (g Gamma) String() string {
	switch g {
	case GammaExact:
		return "exact"
	case GammaSimple:
		return "simple"
	default:
		return fmt.Sprintf("Gamma(%d)", int(g))
	}
}

// ParseGamma returns the Gamma named by s ("exact" or "simple").
func ParseGamma(s string) (Gamma, error) {
	switch s {
	case "exact", "":
		return GammaExact, nil
	case "simple":
		return GammaSimple, nil
	}
	return 0, fmt.Errorf("unknown gamma %q", s)
}

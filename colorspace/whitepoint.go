package colorspace

// WhitePoint is a reference illuminant expressed as XYZ with Y fixed at 1.
type WhitePoint struct {
	X, Z float32
}

// CIE 1931 2° standard illuminants.
var (
	D50 = NewWhitePoint(0.34567, 0.35850)
	D65 = NewWhitePoint(0.31271, 0.32902)
)

// NewWhitePoint converts xy chromaticity to XYZ ratios with Y = 1.
func NewWhitePoint(x, y float32) WhitePoint {
	return WhitePoint{
		X: x / y,
		Z: (1 - x - y) / y,
	}
}

// XYZ returns the white point as a tristimulus value.
func (w WhitePoint) XYZ() XYZ {
	return XYZ{w.X, 1, w.Z}
}

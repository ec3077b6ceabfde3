package colorspace

import "github.com/chewxy/math32"

// XYZ is a CIE 1931 tristimulus value with white normalized to Y = 1.
type XYZ [3]float32

// Lab is a CIE L*a*b* color. L is nominally 0..100.
type Lab struct {
	L, A, B float32
}

// CIE constants: δ = 6/29, f(t) = t/(3δ²) + 4/29 below δ³.
const (
	labDelta  float32 = 6.0 / 29.0
	labDelta3 float32 = labDelta * labDelta * labDelta
	labSlope  float32 = 29.0 * 29.0 / 6.0 / 6.0 / 3.0
	labOffset float32 = 4.0 / 29.0
)

// labF is the CIE Lab companding function.
func labF(v float32) float32 {
	if v > labDelta3 {
		return math32.Cbrt(v)
	}
	return labSlope*v + labOffset
}

func labFInverse(v float32) float32 {
	if v > labDelta {
		return v * v * v
	}
	return (v - labOffset) / labSlope
}

// XYZToLab converts xyz to Lab relative to w.
func (w WhitePoint) XYZToLab(xyz XYZ) Lab {
	fy := labF(xyz[1])
	return Lab{
		L: 116*fy - 16,
		A: 500 * (labF(xyz[0]/w.X) - fy),
		B: 200 * (fy - labF(xyz[2]/w.Z)),
	}
}

// LabToXYZ converts lab back to XYZ relative to w.
func (w WhitePoint) LabToXYZ(lab Lab) XYZ {
	ll := (lab.L + 16) / 116
	return XYZ{
		w.X * labFInverse(ll+lab.A/500),
		labFInverse(ll),
		w.Z * labFInverse(ll-lab.B/200),
	}
}

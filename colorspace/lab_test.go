package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabF(t *testing.T) {
	assert.InDelta(t, 0.887904, labF(0.7), 1e-5)
	assert.InDelta(t, 0.1379544, labF(0.000003), 1e-6)
	assert.InDelta(t, 0.216, labFInverse(0.6), 1e-6)

	// Both branches meet at the transition.
	assert.InDelta(t, labDelta, labF(labDelta3), 1e-6)
	assert.InDelta(t, labDelta3, labFInverse(labDelta), 1e-7)

	for i := 0; i <= 1000; i++ {
		v := float32(i) / 1000
		assert.InDelta(t, v, labFInverse(labF(v)), 1e-5, "at %v", v)
	}
}

func TestXYZToLab(t *testing.T) {
	l, a, b := float32(61.65422), float32(-98.673805), float32(-20.413673)
	w := WhitePoint{X: 0.95047, Z: 1.08883}
	lab := w.XYZToLab(XYZ{0.1, 0.3, 0.5})
	assert.InDelta(t, l, lab.L, 1e-2)
	assert.InDelta(t, a, lab.A, 1e-2)
	assert.InDelta(t, b, lab.B, 1e-2)

	xyz := w.LabToXYZ(Lab{28, 14, 36.2})
	assert.InDelta(t, 0.06422656, xyz[0], 1e-4)
	assert.InDelta(t, 0.054573778, xyz[1], 1e-4)
	assert.InDelta(t, 0.008442593, xyz[2], 1e-4)
}

func TestLabRoundTrip(t *testing.T) {
	for _, xyz := range []XYZ{
		{0.1, 0.3, 0.5},
		{0.95, 1, 1.09},
		{0.001, 0.002, 0.0005},
		{0.4, 0.2, 0.02},
	} {
		back := D65.LabToXYZ(D65.XYZToLab(xyz))
		for i := range xyz {
			assert.InDelta(t, xyz[i], back[i], 1e-5, "%v", xyz)
		}
	}
}

func TestLabReference(t *testing.T) {
	var s LabAB
	red := s.Lab(RGB(255, 0, 0))
	assert.InDelta(t, 53.24, red.L, 0.5)
	assert.InDelta(t, 80.09, red.A, 0.5)
	assert.InDelta(t, 67.20, red.B, 0.5)

	white := s.Lab(RGB(255, 255, 255))
	assert.InDelta(t, 100, white.L, 0.01)
	assert.InDelta(t, 0, white.A, 0.01)
	assert.InDelta(t, 0, white.B, 0.01)

	black := s.Lab(RGB(0, 0, 0))
	assert.InDelta(t, 0, black.L, 1e-4)
	assert.InDelta(t, 0, black.A, 1e-4)
	assert.InDelta(t, 0, black.B, 1e-4)
}

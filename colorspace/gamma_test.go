package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGammaRoundTrip(t *testing.T) {
	for _, g := range []Gamma{GammaExact, GammaSimple} {
		for i := 0; i <= 10000; i++ {
			v := float32(i) / 10000
			assert.InDelta(t, v, g.ToEncoded(g.ToLinear(v)), 1e-4, "%s at %v", g, v)
			assert.InDelta(t, v, g.ToLinear(g.ToEncoded(v)), 1e-4, "%s at %v", g, v)
		}
	}
}

func TestGammaExact(t *testing.T) {
	assert.InDelta(t, 0.04045/12.92, GammaExact.ToLinear(0.04045), 1e-7)
	assert.InDelta(t, 0.214041, GammaExact.ToLinear(0.5), 1e-5)
	assert.InDelta(t, 1, GammaExact.ToLinear(1), 1e-6)
	assert.InDelta(t, 0.735357, GammaExact.ToEncoded(0.5), 1e-5)
	// No clamping.
	assert.Greater(t, GammaExact.ToEncoded(1.2), float32(1))
	assert.Less(t, GammaExact.ToEncoded(-0.1), float32(0))
}

func TestGammaSimple(t *testing.T) {
	assert.InDelta(t, 0.217638, GammaSimple.ToLinear(0.5), 1e-5)
	assert.InDelta(t, 0.5, GammaSimple.ToEncoded(0.217638), 1e-5)
}

func TestParseGamma(t *testing.T) {
	g, err := ParseGamma("simple")
	assert.NoError(t, err)
	assert.Equal(t, GammaSimple, g)
	g, err = ParseGamma("exact")
	assert.NoError(t, err)
	assert.Equal(t, GammaExact, g)
	assert.Equal(t, "exact", g.String())
	_, err = ParseGamma("linear")
	assert.Error(t, err)
}

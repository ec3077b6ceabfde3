package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBToHSL4(t *testing.T) {
	hsl := RGBToHSL4(RGB(204, 114, 67).Scaled())
	assert.InDelta(t, 0.343066, hsl.H, 1e-5)
	assert.InDelta(t, 0.573222, hsl.S, 1e-5)
	assert.InDelta(t, 0.531373, hsl.L, 1e-5)
	assert.InDelta(t, 0.343066, hsl.X, 1e-5)

	// Blue is highest and red lies between green and blue.
	hsl = RGBToHSL4(RGB(100, 80, 180).Scaled())
	assert.InDelta(t, 4.2, hsl.H, 1e-5)
	assert.InDelta(t, 0.2, hsl.X, 1e-5)

	// Red highest with blue above green wraps into the last sector.
	hsl = RGBToHSL4(RGB(255, 0, 51).Scaled())
	assert.InDelta(t, 5.8, hsl.H, 1e-5)
	assert.InDelta(t, 0.2, hsl.X, 1e-5)

	assert.Equal(t, HSL4{L: 0.5}, RGBToHSL4(ScaledRGB{0.5, 0.5, 0.5}))
}

func TestHSL4ToRGB(t *testing.T) {
	assert.Equal(t, RGB(255, 0, 0), HSL4ToRGB(HSL4{0, 1, 0.5, 0}).Color())
	assert.Equal(t, RGB(0, 255, 255), HSL4ToRGB(HSL4{3, 1, 0.5, 1}).Color())
	gray := HSL4ToRGB(HSL4{L: 0.25})
	assert.Equal(t, gray[0], gray[1])
	assert.Equal(t, gray[1], gray[2])
}

func TestHSL4RoundTrip(t *testing.T) {
	steps := channelSteps()
	for _, r := range steps {
		for _, g := range steps {
			for _, b := range steps {
				c := RGB(r, g, b)
				got := HSL4ToRGB(RGBToHSL4(c.Scaled())).Color()
				if !channelsWithin(c, got, 1) {
					t.Fatalf("HSL4 round trip of %v gave %v", c, got)
				}
			}
		}
	}
	for v := 0; v < 256; v++ {
		c := RGB(uint8(v), uint8(v), uint8(v))
		assert.True(t, channelsWithin(c, HSL4ToRGB(RGBToHSL4(c.Scaled())).Color(), 1), "gray %d", v)
	}
}

func TestLightness(t *testing.T) {
	for _, c := range []Color{
		RGB(0, 0, 0),
		RGB(255, 255, 255),
		RGB(80, 100, 180),
		RGB(180, 100, 80),
		RGB(100, 180, 80),
		RGB(7, 7, 200),
	} {
		assert.InDelta(t, RGBToHSL4(c.Scaled()).L, Lightness(c), 1e-6, "%v", c)
	}
}

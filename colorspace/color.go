package colorspace

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

const channelMax = 255

// Color is an 8-bit-per-channel color with straight (non-premultiplied) alpha.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque Color.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 0xff}
}

// FromPacked unpacks a 0xAARRGGBB value.
func FromPacked(argb uint32) Color {
	return Color{
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
		A: uint8(argb >> 24),
	}
}

// Packed returns c as 0xAARRGGBB.
func (c Color) Packed() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// FromColor converts any color.Color to a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B, n.A}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Hex formats c as #rrggbb, or #rrggbbaa when it is not opaque.
func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c Color) String() string { return c.Hex() }

// ParseHex parses #rgb, #rrggbb and #rrggbbaa. The leading '#' is optional.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}) + "ff"
	case 6:
		h += "ff"
	case 8:
	default:
		return Color{}, fmt.Errorf("invalid hex color %q: want 3, 6 or 8 digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// ScaledRGB holds red, green and blue normalized to [0, 1]. Intermediate
// results may leave that range; they are clamped when converted back to a
// Color.
type ScaledRGB [3]float32

// Scaled returns the channels of c divided by 255. Alpha is dropped.
func (c Color) Scaled() ScaledRGB {
	return ScaledRGB{
		float32(c.R) / channelMax,
		float32(c.G) / channelMax,
		float32(c.B) / channelMax,
	}
}

// Color converts s to an opaque Color using ScaleChannel on each channel.
func (s ScaledRGB) Color() Color {
	return Color{ScaleChannel(s[0]), ScaleChannel(s[1]), ScaleChannel(s[2]), 0xff}
}

// ScaleChannel maps a normalized value to 0..255, truncating toward zero.
// Values above 1 give 255; values below 0 and NaN give 0.
func ScaleChannel(f float32) uint8 {
	switch {
	case f > 1:
		return channelMax
	case f > 0:
		return uint8(math32.Floor(f * channelMax))
	default:
		return 0
	}
}

// Package palette extracts the dominant colors of an image so that a
// replacement strategy can be previewed on them one color at a time.
package palette

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"github.com/esimov/colorquant"
	"github.com/jkl1337/go-chromath"

	"github.com/mmuldo/recolor/colorspace"
)

// ErrNoColors is returned when an image has no opaque pixels.
var ErrNoColors = errors.New("palette: image has no opaque pixels")

const minQuantize = 2

// Swatch is a color of a quantized image, its Lab equivalent, and the number
// of pixels it covers.
type Swatch struct {
	Color colorspace.Color
	Lab   chromath.Lab
	Count int
}

type byCount []Swatch

func (s byCount) Len() int { return len(s) }
func (s byCount) Less(i, j int) bool {
	if s[i].Count != s[j].Count {
		return s[i].Count > s[j].Count
	}
	return s[i].Color.Packed() < s[j].Color.Packed()
}
func (s byCount) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Extract loads the image at path and returns at most num swatches, most
// prevalent first.
func Extract(path string, num int) ([]Swatch, error) {
	i, e := Load(path)
	if e != nil {
		return nil, e
	}
	return FromImage(i, num)
}

// FromImage quantizes img to num colors and counts the opaque pixels of each.
func FromImage(img image.Image, num int) ([]Swatch, error) {
	if num < 1 {
		return nil, fmt.Errorf("palette: need at least 1 swatch, got %d", num)
	}
	// The quantizer needs at least two clusters; a single swatch is the most
	// prevalent of two.
	q := num
	if q < minQuantize {
		q = minQuantize
	}

	b := img.Bounds()
	o := image.NewNRGBA(b)
	colorquant.NoDither.Quantize(img, o, q, false, true)

	// map each image color to its prevalence
	m := make(map[colorspace.Color]int)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a == 0 {
				continue
			}
			c := colorspace.FromColor(o.At(x, y))
			c.A = 0xff
			m[c]++
		}
	}
	if len(m) == 0 {
		return nil, ErrNoColors
	}

	swatches := make([]Swatch, 0, len(m))
	for c, n := range m {
		swatches = append(swatches, Swatch{Color: c, Lab: Lab(c), Count: n})
	}
	sort.Sort(byCount(swatches))
	if len(swatches) > num {
		swatches = swatches[:num]
	}
	Logger().Debug("image quantized", "requested", num, "swatches", len(swatches))

	return swatches, nil
}

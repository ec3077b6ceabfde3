package palette

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmuldo/recolor/colorspace"
)

func twoTone(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{200, 30, 30, 255}
			if x >= w/4 {
				c = color.NRGBA{20, 40, 220, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestFromImage(t *testing.T) {
	swatches, err := FromImage(twoTone(20, 10), 2)
	require.NoError(t, err)
	require.NotEmpty(t, swatches)
	assert.LessOrEqual(t, len(swatches), 2)

	total := 0
	for i, s := range swatches {
		total += s.Count
		assert.Equal(t, uint8(0xff), s.Color.A)
		if i > 0 {
			assert.GreaterOrEqual(t, swatches[i-1].Count, s.Count)
		}
	}
	if len(swatches) == 2 {
		assert.Equal(t, 200, total)
	}
}

func TestFromImageSingleSwatch(t *testing.T) {
	swatches, err := FromImage(twoTone(20, 10), 1)
	require.NoError(t, err)
	require.Len(t, swatches, 1)
	assert.Greater(t, swatches[0].Count, 0)

	_, err = FromImage(twoTone(4, 4), 0)
	assert.Error(t, err)
}

func TestFromImageTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	_, err := FromImage(img, 4)
	assert.Equal(t, ErrNoColors, err)
}

func TestExtract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "two.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, twoTone(8, 8)))
	require.NoError(t, f.Close())

	swatches, err := Extract(path, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, swatches)

	_, err = Extract(filepath.Join(t.TempDir(), "missing.png"), 2)
	assert.Error(t, err)
}

func TestLoadNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestDeltaE(t *testing.T) {
	white := colorspace.RGB(255, 255, 255)
	black := colorspace.RGB(0, 0, 0)
	assert.InDelta(t, 100, Lab(white).L(), 0.5)
	assert.InDelta(t, 0, Lab(black).L(), 0.5)
	assert.InDelta(t, 0, DeltaE(white, white), 1e-9)
	assert.Greater(t, DeltaE(white, black), 50.0)
	assert.Less(t, DeltaE(colorspace.RGB(100, 100, 100), colorspace.RGB(101, 100, 100)), 1.0)
}

func TestSetLogger(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, Logger())
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

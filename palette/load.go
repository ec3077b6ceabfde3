package palette

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Load decodes the image at path.
func Load(path string) (image.Image, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, e
	}
	defer f.Close()

	i, format, e := image.Decode(f)
	if e != nil {
		return nil, fmt.Errorf("decode %s: %w", path, e)
	}
	Logger().Debug("image decoded", "path", path, "format", format, "bounds", i.Bounds())

	return i, nil
}

package palette

import (
	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"

	"github.com/mmuldo/recolor/colorspace"
)

// Lab values are taken under D50, with sRGB adapted by Bradford.
var (
	rgbTransformer = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		&chromath.AdaptationBradford,
		&chromath.IlluminantRefD50,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	labTransformer = chromath.NewLabTransformer(&chromath.IlluminantRefD50)
	klch           = &deltae.KLChDefault
)

// Lab converts c to Lab under D50 (Bradford-adapted sRGB).
func Lab(c colorspace.Color) chromath.Lab {
	rgb := chromath.RGB{float64(c.R), float64(c.G), float64(c.B)}
	xyz := rgbTransformer.Convert(rgb)
	return labTransformer.Invert(xyz)
}

// DeltaE returns the CIEDE2000 difference between a and b.
func DeltaE(a, b colorspace.Color) float64 {
	return deltae.CIE2000(Lab(a), Lab(b), klch)
}

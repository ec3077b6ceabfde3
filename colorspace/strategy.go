package colorspace

import "fmt"

// Kind identifies a replacement strategy.
type Kind int

const (
	kindInvalid Kind = iota
	// KindHSVHue replaces hue in HSV, keeping saturation and value.
	KindHSVHue
	// KindHSLHueSat replaces hue and saturation in HSL, keeping lightness.
	KindHSLHueSat
	// KindLabAB replaces a and b in CIE Lab, keeping L.
	KindLabAB
)

var kindNames = map[Kind]string{
	KindHSVHue:    "hsv-hue",
	KindHSLHueSat: "hsl-hue-sat",
	KindLabAB:     "lab-ab",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds lists every strategy kind.
func Kinds() []Kind {
	return []Kind{KindHSVHue, KindHSLHueSat, KindLabAB}
}

// ParseKind returns the Kind named by s.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return kindInvalid, fmt.Errorf("unknown strategy %q", s)
}

// ReplacementData is precomputed from a replacement color by one strategy and
// may only be applied by a strategy of the same kind. The zero value is not
// valid for any strategy.
type ReplacementData struct {
	kind Kind
	n    int
	v    [4]float32
}

func newReplacementData(k Kind, v ...float32) ReplacementData {
	d := ReplacementData{kind: k, n: len(v)}
	copy(d.v[:], v)
	return d
}

// Kind returns the kind of strategy that produced d.
func (d ReplacementData) Kind() Kind { return d.kind }

// Values returns a copy of the strategy-specific components.
func (d ReplacementData) Values() []float32 {
	return append([]float32(nil), d.v[:d.n]...)
}

func (d ReplacementData) String() string {
	return fmt.Sprintf("%s%v", d.kind, d.v[:d.n])
}

// must panics unless d was produced by a strategy of kind k.
func (d ReplacementData) must(k Kind) {
	if d.kind != k {
		panic(fmt.Sprintf("colorspace: %s strategy applied to replacement data of kind %s", k, d.kind))
	}
}

// Strategy replaces some components of a color with those of a replacement
// color, keeping the rest. Precompute is called once per replacement color and
// Apply once per source color. Both are pure and safe for concurrent use.
type Strategy interface {
	Kind() Kind
	Precompute(replacement Color) ReplacementData
	Apply(src Color, d ReplacementData) Color

	strategy()
}

// New returns the strategy of kind k with default parameters.
func New(k Kind) (Strategy, error) {
	switch k {
	case KindHSVHue:
		return HSVHue{}, nil
	case KindHSLHueSat:
		return HSLHueSat{}, nil
	case KindLabAB:
		return LabAB{Gamma: GammaExact, Primaries: SRGB}, nil
	}
	return nil, fmt.Errorf("unknown strategy kind %d", int(k))
}

// HSVHue takes the hue of the replacement color.
type HSVHue struct{}

func (HSVHue) strategy()  {}
func (HSVHue) Kind() Kind { return KindHSVHue }

// Precompute keeps the hue of replacement.
func (HSVHue) Precompute(replacement Color) ReplacementData {
	return newReplacementData(KindHSVHue, RGBToHSV(replacement.Scaled()).H)
}

// Apply sets the hue of src.
func (HSVHue) Apply(src Color, d ReplacementData) Color {
	d.must(KindHSVHue)
	hsv := RGBToHSV(src.Scaled())
	hsv.H = d.v[0]
	out := HSVToRGB(hsv).Color()
	out.A = src.A
	return out
}

// HSLHueSat takes hue and saturation of the replacement color and keeps the
// lightness of the source.
type HSLHueSat struct{}

func (HSLHueSat) strategy()  {}
func (HSLHueSat) Kind() Kind { return KindHSLHueSat }

// Precompute keeps hue, saturation and the interpolation factor of
// replacement.
func (HSLHueSat) Precompute(replacement Color) ReplacementData {
	hsl := RGBToHSL4(replacement.Scaled())
	return newReplacementData(KindHSLHueSat, hsl.H, hsl.S, hsl.X)
}

// Apply rebuilds src with its own lightness.
func (HSLHueSat) Apply(src Color, d ReplacementData) Color {
	d.must(KindHSLHueSat)
	hsl := HSL4{
		H: d.v[0],
		S: d.v[1],
		L: Lightness(src),
		X: d.v[2],
	}
	out := HSL4ToRGB(hsl).Color()
	out.A = src.A
	return out
}

// LabAB takes the a and b components of the replacement color in CIE Lab and
// keeps L of the source. The zero value uses GammaExact and SRGB.
type LabAB struct {
	Gamma     Gamma
	Primaries *Primaries
}

func (LabAB) strategy()  {}
func (LabAB) Kind() Kind { return KindLabAB }

func (l LabAB) primaries() *Primaries {
	if l.Primaries == nil {
		return SRGB
	}
	return l.Primaries
}

// XYZ converts c to XYZ.
func (l LabAB) XYZ(c Color) XYZ {
	return l.primaries().RGBToXYZ(l.Gamma.ToLinearRGB(c.Scaled()))
}

// Lab converts c to Lab.
func (l LabAB) Lab(c Color) Lab {
	p := l.primaries()
	return p.White().XYZToLab(l.XYZ(c))
}

// FromXYZ converts xyz to an opaque Color.
func (l LabAB) FromXYZ(xyz XYZ) Color {
	return l.Gamma.ToEncodedRGB(l.primaries().XYZToRGB(xyz)).Color()
}

// Precompute returns f(X/Xw) - f(Y) and f(Y) - f(Z/Zw) of replacement, that
// is a/500 and b/200.
func (l LabAB) Precompute(replacement Color) ReplacementData {
	w := l.primaries().White()
	xyz := l.XYZ(replacement)
	fx := labF(xyz[0] / w.X)
	fy := labF(xyz[1])
	fz := labF(xyz[2] / w.Z)
	return newReplacementData(KindLabAB, fx-fy, fy-fz)
}

// Apply needs only the luminance of src: X and Z are rebuilt from f(Y) and
// the precomputed differences.
func (l LabAB) Apply(src Color, d ReplacementData) Color {
	d.must(KindLabAB)
	p := l.primaries()
	w := p.White()

	y := p.Luminance(l.Gamma.ToLinearRGB(src.Scaled()))
	fy := labF(y)
	xyz := XYZ{
		w.X * labFInverse(fy+d.v[0]),
		y,
		w.Z * labFInverse(fy-d.v[1]),
	}
	out := l.FromXYZ(xyz)
	out.A = src.A
	return out
}

// ReplaceExact converts src to Lab, takes a and b from replacement and
// converts back. It matches Apply up to rounding.
func (l LabAB) ReplaceExact(src Color, replacement Lab) Color {
	lab := l.Lab(src)
	lab.A = replacement.A
	lab.B = replacement.B
	out := l.FromXYZ(l.primaries().White().LabToXYZ(lab))
	out.A = src.A
	return out
}

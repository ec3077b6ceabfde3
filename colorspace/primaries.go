package colorspace

import (
	"errors"
	"fmt"
)

// ErrDegeneratePrimaries is returned by NewPrimaries when the three
// chromaticities do not span a triangle.
var ErrDegeneratePrimaries = errors.New("colorspace: degenerate primaries")

// Primaries holds the linear RGB <-> XYZ transforms derived from a set of RGB
// chromaticities and a white point. A Primaries value is immutable.
type Primaries struct {
	name    string
	white   WhitePoint
	toXYZ   Matrix3
	fromXYZ Matrix3
}

// Built-in primaries, both referenced to D65.
var (
	SRGB     = mustPrimaries("srgb", 0.64, 0.33, 0.30, 0.60, 0.15, 0.06, D65)
	AdobeRGB = mustPrimaries("adobe-rgb", 0.64, 0.33, 0.21, 0.71, 0.15, 0.06, D65)
)

// NewPrimaries derives the transforms for red (xr, yr), green (xg, yg) and
// blue (xb, yb) primaries under white point wp.
func NewPrimaries(name string, xr, yr, xg, yg, xb, yb float32, wp WhitePoint) (*Primaries, error) {
	// Columns are the primaries' xyz chromaticities, x + y + z = 1.
	m1 := Matrix3{
		xr, xg, xb,
		yr, yg, yb,
		1 - xr - yr, 1 - xg - yg, 1 - xb - yb,
	}
	m1i, err := m1.Inverse()
	if err != nil {
		return nil, fmt.Errorf("primaries %s: %w", name, ErrDegeneratePrimaries)
	}

	// m1·S = white, so S = m1⁻¹·white.
	s := m1i.Apply(Vec3(wp.XYZ()))

	// Scale the columns of m1 by S.
	m2 := m1.Mul(Diagonal(s))
	m2i, err := m2.Inverse()
	if err != nil {
		return nil, fmt.Errorf("primaries %s: %w", name, ErrDegeneratePrimaries)
	}

	return &Primaries{
		name:    name,
		white:   wp,
		toXYZ:   m2,
		fromXYZ: m2i,
	}, nil
}

func mustPrimaries(name string, xr, yr, xg, yg, xb, yb float32, wp WhitePoint) *Primaries {
	p, err := NewPrimaries(name, xr, yr, xg, yg, xb, yb, wp)
	if err != nil {
		panic(err)
	}
	return p
}

// PrimariesByName returns a built-in Primaries ("srgb" or "adobe-rgb").
func PrimariesByName(name string) (*Primaries, error) {
	switch name {
	case "srgb", "":
		return SRGB, nil
	case "adobe-rgb", "adobergb":
		return AdobeRGB, nil
	}
	return nil, fmt.Errorf("unknown primaries %q", name)
}

// Name returns the name the primaries were built with.
func (p *Primaries) Name() string { return p.name }

// White returns the reference white.
func (p *Primaries) White() WhitePoint { return p.white }

// ToXYZ returns the linear RGB to XYZ matrix.
func (p *Primaries) ToXYZ() Matrix3 { return p.toXYZ }

// FromXYZ returns the XYZ to linear RGB matrix.
func (p *Primaries) FromXYZ() Matrix3 { return p.fromXYZ }

// RGBToXYZ converts linear RGB to XYZ.
func (p *Primaries) RGBToXYZ(linear ScaledRGB) XYZ {
	return XYZ(p.toXYZ.Apply(Vec3(linear)))
}

// Luminance returns only the Y component of RGBToXYZ.
func (p *Primaries) Luminance(linear ScaledRGB) float32 {
	return p.toXYZ.ApplyY(Vec3(linear))
}

// XYZToRGB converts XYZ to linear RGB.
func (p *Primaries) XYZToRGB(xyz XYZ) ScaledRGB {
	return ScaledRGB(p.fromXYZ.Apply(Vec3(xyz)))
}

func (p *Primaries) String() string {
	return fmt.Sprintf("%s RGB2XYZ: %v XYZ2RGB: %v", p.name, p.toXYZ, p.fromXYZ)
}

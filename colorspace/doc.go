// Package colorspace converts between sRGB, linear RGB, HSV, HSL, CIE XYZ and
// CIE Lab, and replaces selected components of a color with those of another
// color while keeping its shading.
//
// A caller picks a Strategy, precomputes ReplacementData once from the
// replacement color and applies it to any number of source colors:
//
//	s := colorspace.LabAB{}
//	d := s.Precompute(colorspace.RGB(255, 0, 0))
//	out := s.Apply(colorspace.RGB(80, 100, 180), d)
//
// All conversions work in float32. Package-level white points and primaries
// are built during package initialization and never change afterwards, so
// every function here may be called concurrently.
package colorspace

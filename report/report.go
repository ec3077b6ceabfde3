// Package report renders replacement and conversion results as text.
package report

import (
	"fmt"
	"strings"

	"github.com/flosch/pongo2"

	"github.com/mmuldo/recolor/colorspace"
)

// Default templates. Each receives "rows" plus the values documented on the
// function that renders it.
const (
	ReplaceTemplate = `{{ strategy }} with {{ replacement }} [{{ data }}]
{% for r in rows %}{{ r.Source }} -> {{ r.Result }}  dE={{ r.DeltaE|floatformat:2 }}{% if r.Count %}  ({{ r.Count }} px){% endif %}
{% endfor %}`

	ConvertTemplate = `{% for r in rows %}{{ r.Color }}
  hsv    {{ r.HSV }}
  hsl4   {{ r.HSL }}
  linear {{ r.Linear }}
  xyz    {{ r.XYZ }}
  lab    {{ r.Lab }}
{% endfor %}`
)

// Replacement is one source color and its recolored counterpart.
type Replacement struct {
	Source string
	Result string
	DeltaE float64
	Count  int
}

// Conversion is one color expressed in every supported space.
type Conversion struct {
	Color  string
	HSV    string
	HSL    string
	Linear string
	XYZ    string
	Lab    string
}

// NewConversion converts c with the gamma and primaries of s.
func NewConversion(c colorspace.Color, s colorspace.LabAB) Conversion {
	scaled := c.Scaled()
	hsv := colorspace.RGBToHSV(scaled)
	hsl := colorspace.RGBToHSL4(scaled)
	lin := s.Gamma.ToLinearRGB(scaled)
	xyz := s.XYZ(c)
	lab := s.Lab(c)
	return Conversion{
		Color:  c.Hex(),
		HSV:    fmt.Sprintf("h=%.4f s=%.4f v=%.4f", hsv.H, hsv.S, hsv.V),
		HSL:    fmt.Sprintf("h=%.4f s=%.4f l=%.4f x=%.4f", hsl.H, hsl.S, hsl.L, hsl.X),
		Linear: fmt.Sprintf("r=%.5f g=%.5f b=%.5f", lin[0], lin[1], lin[2]),
		XYZ:    fmt.Sprintf("x=%.5f y=%.5f z=%.5f", xyz[0], xyz[1], xyz[2]),
		Lab:    fmt.Sprintf("L=%.2f a=%.2f b=%.2f", lab.L, lab.A, lab.B),
	}
}

// Render executes the pongo2 template src with ctx.
func Render(src string, ctx pongo2.Context) (string, error) {
	tpl, e := pongo2.FromString(src)
	if e != nil {
		return "", fmt.Errorf("parse template: %w", e)
	}

	o, e := tpl.Execute(ctx)
	if e != nil {
		return "", fmt.Errorf("execute template: %w", e)
	}

	return o, nil
}

// Replacements renders rows with tpl, or ReplaceTemplate when tpl is empty.
// The template also receives "strategy", "replacement" and "data".
func Replacements(tpl string, strategy colorspace.Kind, replacement colorspace.Color, data colorspace.ReplacementData, rows []Replacement) (string, error) {
	if tpl == "" {
		tpl = ReplaceTemplate
	}
	return Render(tpl, pongo2.Context{
		"strategy":    strategy.String(),
		"replacement": replacement.Hex(),
		"data":        formatValues(data.Values()),
		"rows":        rows,
	})
}

// Conversions renders rows with tpl, or ConvertTemplate when tpl is empty.
func Conversions(tpl string, rows []Conversion) (string, error) {
	if tpl == "" {
		tpl = ConvertTemplate
	}
	return Render(tpl, pongo2.Context{"rows": rows})
}

func formatValues(v []float32) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = fmt.Sprintf("%.4f", f)
	}
	return strings.Join(parts, " ")
}

package cmd

import (
	"github.com/spf13/viper"

	"github.com/mmuldo/recolor/colorspace"
)

// settings is the resolved configuration shared by every command.
type settings struct {
	Strategy colorspace.Strategy
	Lab      colorspace.LabAB
	// Template formats replace and palette output.
	Template string
	// ConvertTemplate formats convert output.
	ConvertTemplate string
}

// loadSettings resolves strategy, gamma, primaries and template from flags,
// environment and config file, in that order of precedence.
func loadSettings(v *viper.Viper) (settings, error) {
	g, err := colorspace.ParseGamma(v.GetString("gamma"))
	if err != nil {
		return settings{}, err
	}
	p, err := colorspace.PrimariesByName(v.GetString("primaries"))
	if err != nil {
		return settings{}, err
	}
	lab := colorspace.LabAB{Gamma: g, Primaries: p}

	kind, err := colorspace.ParseKind(v.GetString("strategy"))
	if err != nil {
		return settings{}, err
	}
	s, err := colorspace.New(kind)
	if err != nil {
		return settings{}, err
	}
	if kind == colorspace.KindLabAB {
		s = lab
	}

	return settings{
		Strategy:        s,
		Lab:             lab,
		Template:        v.GetString("template"),
		ConvertTemplate: v.GetString("convert-template"),
	}, nil
}

// parseColors parses every argument as a hex color.
func parseColors(args []string) ([]colorspace.Color, error) {
	cs := make([]colorspace.Color, 0, len(args))
	for _, a := range args {
		c, err := colorspace.ParseHex(a)
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, nil
}

/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/recolor/colorspace"
	"github.com/mmuldo/recolor/palette"
	"github.com/mmuldo/recolor/report"
)

var with string

// replaceCmd represents the replace command
var replaceCmd = &cobra.Command{
	Use:   "replace --with COLOR COLOR...",
	Short: "Recolors each COLOR with the replacement color",
	Long: `Recolors each COLOR with the replacement color given by --with.

The replacement data is computed once and applied to every COLOR. Colors are
hex strings such as #5064b4, f0a or #5064b480.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(viper.GetViper())
		if err != nil {
			return err
		}
		return replace(cmd.OutOrStdout(), s, with, args)
	},
}

func init() {
	rootCmd.AddCommand(replaceCmd)

	replaceCmd.Flags().StringVarP(&with, "with", "w", "", "replacement color")
	replaceCmd.MarkFlagRequired("with")
}

func replace(w io.Writer, s settings, with string, args []string) error {
	repl, err := colorspace.ParseHex(with)
	if err != nil {
		return err
	}
	srcs, err := parseColors(args)
	if err != nil {
		return err
	}

	d := s.Strategy.Precompute(repl)
	rows := make([]report.Replacement, len(srcs))
	for i, src := range srcs {
		out := s.Strategy.Apply(src, d)
		rows[i] = report.Replacement{
			Source: src.Hex(),
			Result: out.Hex(),
			DeltaE: palette.DeltaE(src, out),
		}
	}

	o, err := report.Replacements(s.Template, s.Strategy.Kind(), repl, d, rows)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, o)
	return err
}

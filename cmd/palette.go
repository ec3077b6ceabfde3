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

var swatches int

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette --with COLOR IMAGE",
	Short: "Previews a recolor on the dominant colors of an image",
	Long: `Quantizes IMAGE, ranks its colors by the number of pixels they cover and
prints each of them next to its recolored counterpart.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(viper.GetViper())
		if err != nil {
			return err
		}
		return previewPalette(cmd.OutOrStdout(), s, with, args[0], swatches)
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().StringVarP(&with, "with", "w", "", "replacement color")
	paletteCmd.Flags().IntVarP(&swatches, "num", "n", 8, "number of swatches")
	paletteCmd.MarkFlagRequired("with")
}

func previewPalette(w io.Writer, s settings, with, path string, num int) error {
	if num < 1 {
		return fmt.Errorf("number of swatches must be positive, got %d", num)
	}
	repl, err := colorspace.ParseHex(with)
	if err != nil {
		return err
	}
	sw, err := palette.Extract(path, num)
	if err != nil {
		return err
	}

	d := s.Strategy.Precompute(repl)
	rows := make([]report.Replacement, len(sw))
	for i, c := range sw {
		out := s.Strategy.Apply(c.Color, d)
		rows[i] = report.Replacement{
			Source: c.Color.Hex(),
			Result: out.Hex(),
			DeltaE: palette.DeltaE(c.Color, out),
			Count:  c.Count,
		}
	}

	o, err := report.Replacements(s.Template, s.Strategy.Kind(), repl, d, rows)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, o)
	return err
}

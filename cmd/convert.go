package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/recolor/report"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert COLOR...",
	Short: "Prints each COLOR in HSV, HSL, linear RGB, XYZ and Lab",
	Long: `Prints each COLOR in HSV, HSL, linear RGB, XYZ and Lab.

Linear RGB, XYZ and Lab use the --gamma and --primaries settings.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(viper.GetViper())
		if err != nil {
			return err
		}
		return convert(cmd.OutOrStdout(), s, args)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func convert(w io.Writer, s settings, args []string) error {
	cs, err := parseColors(args)
	if err != nil {
		return err
	}

	rows := make([]report.Conversion, len(cs))
	for i, c := range cs {
		rows[i] = report.NewConversion(c, s.Lab)
	}

	o, err := report.Conversions(s.ConvertTemplate, rows)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, o)
	return err
}

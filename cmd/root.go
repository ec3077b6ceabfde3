/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/recolor/palette"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "recolor",
	Short: "Recolors colors while keeping their shading",
	Long: `recolor replaces the hue, hue and saturation, or Lab a/b components of
colors with those of a replacement color, keeping each color's own
value, lightness or L.

Strategies: hsv-hue, hsl-hue-sat, lab-ab.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.recolor.yaml)")
	rootCmd.PersistentFlags().StringP("strategy", "s", "lab-ab", "replacement strategy: hsv-hue, hsl-hue-sat or lab-ab")
	rootCmd.PersistentFlags().String("gamma", "exact", "transfer function for lab-ab: exact or simple")
	rootCmd.PersistentFlags().String("primaries", "srgb", "RGB primaries for lab-ab: srgb or adobe-rgb")
	rootCmd.PersistentFlags().String("template", "", "pongo2 template used to print replace and palette results")
	rootCmd.PersistentFlags().String("convert-template", "", "pongo2 template used to print convert results")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug messages")

	for _, key := range []string{"strategy", "gamma", "primaries", "template", "convert-template", "verbose"} {
		viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in home directory with name ".recolor" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".recolor")
	}

	viper.SetEnvPrefix("recolor")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setupLogger() {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(l)
	palette.SetLogger(l)
}

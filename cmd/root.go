/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "colorpick",
	Short: "Converts and names colors",
	Long: `colorpick converts a color between RGB, HEX, HSV, CMYK and CIE LAB and names it,
either with a quick heuristic or by finding the closest entry of a palette of
named colors (Delta-E in LAB space).

Colors are given as "#rrggbb", "#rgb" or "r,g,b". For example:

  colorpick inspect "#ffa500"
  colorpick name 220,20,60 --palette colors.csv
  colorpick inspect --image photo.png --at 120,40`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.colorpick.yaml)")
	rootCmd.PersistentFlags().StringP("palette", "p", "", `palette CSV with name,R,G,B columns ("" for the builtin named colors, "none" for no palette)`)
	rootCmd.PersistentFlags().Bool("fallback", false, "use the heuristic namer when no palette is available")
	rootCmd.PersistentFlags().String("metric", "cie76", "color difference used for matching (cie76, ciede2000)")
	rootCmd.PersistentFlags().String("lab", "approx", "RGB to LAB conversion (approx, reference)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log palette loading details")

	for _, key := range []string{"palette", "fallback", "metric", "lab", "verbose"} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)); err != nil {
			log.Fatal(err)
		}
	}
}

// initConfig reads in a .env file, the config file and ENV variables if set.
func initConfig() {
	log.SetFlags(0)
	log.SetPrefix("colorpick: ")

	// a missing .env is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.Fatal(err)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".colorpick")
	}

	viper.SetEnvPrefix("colorpick")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		log.Println("using config file:", viper.ConfigFileUsed())
	}
}

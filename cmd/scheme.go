package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorpick/scheme"
)

var (
	themeTemplate string
	themeOut      string
)

// schemeCmd represents the scheme command
var schemeCmd = &cobra.Command{
	Use:   "scheme <color>",
	Short: "Prints complementary and analogous colors",
	Long: `Prints the complementary color (hue + 180°) and two analogous colors
(hue ± 60°) of a color, keeping its saturation and value.

With --template and --out the colors are written through a pongo2 template as
color0 (base), color1 (complementary), color2 and color3 (analogous), plus
background, foreground and transparency. Extra variables can be set under
scheme.options in the config file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := colorArg(args)
		if err != nil {
			return err
		}

		v := scheme.Generate(c)

		tpl, out := themeTemplate, themeOut
		setSchemeDefaults(&tpl, &out)

		if tpl != "" {
			if out == "" {
				return fmt.Errorf("--template needs --out")
			}
			t := scheme.Create(v, viper.GetStringMap("scheme.options"))
			return scheme.Render(t, tpl, out)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "base:          %s\n", v.Base.Hex())
		fmt.Fprintf(w, "complementary: %s\n", v.Complementary.Hex())
		fmt.Fprintf(w, "analogous:     %s %s\n", v.Analogous1.Hex(), v.Analogous2.Hex())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemeCmd)

	schemeCmd.Flags().StringVar(&themeTemplate, "template", "", "pongo2 template file to render")
	schemeCmd.Flags().StringVarP(&themeOut, "out", "o", "", "file to write the rendered template to")
}

func setSchemeDefaults(tpl, out *string) {
	if *tpl == "" {
		*tpl = viper.GetString("scheme.template")
	}

	if *out == "" {
		*out = viper.GetString("scheme.out")
	}
}

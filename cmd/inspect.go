package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorpick/colorspace"
	"github.com/mmuldo/colorpick/image"
	"github.com/mmuldo/colorpick/query"
)

var (
	fields    string
	format    string
	asJSON    bool
	imagePath string
	at        string
	resize    string
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [color]",
	Short: "Shows a color as RGB, HEX, HSV, CMYK and its name",
	Long: `Shows a color in every supported representation.

The color comes from the argument or, with --image and --at, from a single
pixel of an image file. --resize scales the image first so coordinates picked
on a fixed-size view (800x600 for instance) address the same pixel.

Output is rendered with a pongo2 template; see --template.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := inspectSample(args)
		if err != nil {
			return err
		}

		f, err := query.ParseFields(fields)
		if err != nil {
			return err
		}

		namer, err := newNamer()
		if err != nil {
			return err
		}

		res, err := query.NewDescriber(namer).DescribeRGB(c, f)
		if err != nil {
			return err
		}

		if asJSON {
			b, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		}

		tpl := format
		if tpl == "" {
			tpl = viper.GetString("inspect.template")
		}
		out, err := query.Format(res, tpl)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&fields, "fields", "f", "", "comma separated fields to show (hex, hsv, cmyk, name, lab, all)")
	inspectCmd.Flags().StringVarP(&format, "template", "t", "", "pongo2 template for the output")
	inspectCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	inspectCmd.Flags().StringVar(&imagePath, "image", "", "image file to sample")
	inspectCmd.Flags().StringVar(&at, "at", "", "pixel to sample as x,y (with --image)")
	inspectCmd.Flags().StringVar(&resize, "resize", "", "resize the image to WxH before sampling")
}

func inspectSample(args []string) (colorspace.RGB, error) {
	if imagePath == "" {
		return colorArg(args)
	}
	if len(args) > 0 {
		return colorspace.RGB{}, fmt.Errorf("give either a color or --image, not both")
	}

	x, y, err := parsePair(at, ",")
	if err != nil {
		return colorspace.RGB{}, fmt.Errorf("--at: %w", err)
	}

	img, err := image.Load(imagePath)
	if err != nil {
		return colorspace.RGB{}, err
	}

	if resize != "" {
		w, h, err := parsePair(resize, "x")
		if err != nil {
			return colorspace.RGB{}, fmt.Errorf("--resize: %w", err)
		}
		img = image.Fit(img, w, h)
	}

	return image.Sample(img, x, y)
}

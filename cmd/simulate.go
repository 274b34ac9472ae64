package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmuldo/colorpick/scheme"
)

var mode string

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate <color>",
	Short: "Approximates a color as seen with a color vision deficiency",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := colorArg(args)
		if err != nil {
			return err
		}

		modes := scheme.Deficiencies
		if !strings.EqualFold(mode, "all") {
			d, err := scheme.ParseDeficiency(mode)
			if err != nil {
				return err
			}
			modes = []scheme.Deficiency{d}
		}

		for _, d := range modes {
			s := scheme.Simulate(c, d)
			fmt.Fprintf(cmd.OutOrStdout(), "%-13s %s (%s)\n", d.String()+":", s.Hex(), s)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().StringVarP(&mode, "mode", "m", "all", "protanopia, deuteranopia, tritanopia or all")
}

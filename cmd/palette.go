package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listEntries bool

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Reports what the configured palette contains",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, report := loadPalette()

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s: %d colors loaded, %d rows skipped\n", report.Source, report.Loaded, len(report.Skipped))
		for _, rowErr := range report.Skipped {
			fmt.Fprintf(w, "  skipped %v\n", rowErr)
		}

		if listEntries {
			for _, e := range p.Entries() {
				fmt.Fprintf(w, "%s %s\n", e.RGB.Hex(), e.Name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().BoolVarP(&listEntries, "list", "l", false, "print every entry")
}

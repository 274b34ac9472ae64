package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showDistance bool

// nameCmd represents the name command
var nameCmd = &cobra.Command{
	Use:   "name <color>",
	Short: "Prints the closest named color",
	Long: `Prints the name of the palette entry closest to the color.

With an empty palette this fails unless --fallback allows the heuristic
namer to answer.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := colorArg(args)
		if err != nil {
			return err
		}

		namer, err := newNamer()
		if err != nil {
			return err
		}

		name, err := namer.Name(c)
		if err != nil {
			return err
		}

		if showDistance {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %.2f)\n", name.Text, name.Source, name.Distance)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), name.Text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nameCmd)

	nameCmd.Flags().BoolVarP(&showDistance, "distance", "d", false, "also print where the name came from and its distance")
}

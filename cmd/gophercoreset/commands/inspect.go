package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// InspectCmd returns the inspect command.
func InspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the shape of a parsed point matrix",
		Args:  cobra.ExactArgs(1),
	}

	format := cmd.Flags().StringP("format", "f", "", "Input format: bow or census (default: guessed from extension)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		points, err := parseInput(*format, args[0])
		if err != nil {
			return err
		}

		n, d := points.Dims()
		fmt.Printf("File: %s\n", args[0])
		fmt.Printf("Points: %d\n", n)
		fmt.Printf("Dimensions: %d\n", d)
		return nil
	}

	return cmd
}

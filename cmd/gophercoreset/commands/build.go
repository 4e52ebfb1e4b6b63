package commands

import (
	"fmt"

	"github.com/TIVerse/gophercoreset/core"
	"github.com/TIVerse/gophercoreset/coreset"
	"github.com/spf13/cobra"
)

// BuildCmd returns the build command.
func BuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <file>",
		Short: "Construct a weighted coreset from a point file",
		Args:  cobra.ExactArgs(1),
	}

	flags := cmd.Flags()
	format := flags.StringP("format", "f", "", "Input format: bow or census (default: guessed from extension)")
	k := flags.IntP("k", "k", 2, "Target number of clusters")
	kPrime := flags.Int("kprime", 0, "Bicriteria clustering size (default: 2k)")
	t := flags.IntP("samples", "t", 0, "Target coreset sample count (default: N)")
	beta := flags.Float64("beta", core.DefaultBeta, "Ring scale")
	groupsPerRange := flags.Int("groups", core.DefaultGroupsPerRange, "Groups per ring range")
	maxIters := flags.Int("max-iters", core.DefaultMaxIters, "Maximum Lloyd iterations")
	seed := flags.Int64("seed", core.UnseededSeed, "PRNG seed (-1 for OS-entropy seeding)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		points, err := parseInput(*format, args[0])
		if err != nil {
			return err
		}

		opts := []coreset.Option{coreset.WithK(*k), coreset.WithBeta(*beta), coreset.WithGroupsPerRange(*groupsPerRange), coreset.WithMaxIters(*maxIters), coreset.WithSeed(*seed)}
		if *kPrime > 0 {
			opts = append(opts, coreset.WithKPrime(*kPrime))
		}
		if *t > 0 {
			opts = append(opts, coreset.WithT(*t))
		}

		centres, samples, err := coreset.Build(points, opts...)
		if err != nil {
			return fmt.Errorf("failed to build coreset: %w", err)
		}

		rows, cols := centres.Dims()
		fmt.Printf("Bicriteria centres: %d x %d\n", rows, cols)
		fmt.Printf("Coreset size: %d\n", len(samples))

		centreCount, pointCount := 0, 0
		for _, s := range samples {
			if s.IsCenter {
				centreCount++
			} else {
				pointCount++
			}
		}
		fmt.Printf("  centre weights: %d\n", centreCount)
		fmt.Printf("  sampled points: %d\n", pointCount)

		return nil
	}

	return cmd
}

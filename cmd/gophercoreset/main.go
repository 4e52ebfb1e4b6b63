// GopherCoreset CLI - command-line driver for k-means coreset construction
package main

import (
	"fmt"
	"os"

	"github.com/TIVerse/gophercoreset/cmd/gophercoreset/commands"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "gophercoreset",
		Short: "GopherCoreset CLI - k-means coreset construction tool",
		Long: `GopherCoreset CLI builds weighted coresets from dense point data using
bicriteria k-means clustering, ring/group sampling, and sensitivity sampling.`,
		Version: version,
	}

	rootCmd.AddCommand(commands.InspectCmd())
	rootCmd.AddCommand(commands.BuildCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

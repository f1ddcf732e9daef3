// tripdexctl runs travel searches against the embedded tripdex engine
// and prints the ranked offers.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meridian-travel/tripdex/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "tripdexctl",
	Short:         "Deterministic synthetic travel search",
	Long:          "tripdexctl runs flight, hotel, and train searches against the embedded tripdex engine.\nThe same query always produces the same ranked offers.",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version.Version,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

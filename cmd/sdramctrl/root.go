package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sdramctrl",
	Short: "sdramctrl simulates an SDRAM controller at the pin level.",
	Long: `sdramctrl simulates an SDRAM controller at the pin level. It runs ` +
		`a scripted sequence of read and write transactions against a ` +
		`simulated memory device, records the controller's signal trace, ` +
		`and optionally serves a monitoring API while the simulation runs.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

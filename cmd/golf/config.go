package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-golf/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration YAML. Save it as ~/.golf/config.yaml
and edit the values to tune physics, timing, colors and sound.

Examples:
  golf config > ~/.golf/config.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stdout.Write(config.GetDefaultYAML()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

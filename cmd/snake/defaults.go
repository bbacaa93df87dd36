package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Redirect it to a file to get a
starting point for your own settings.

Examples:
  snake defaults > ~/.snake/config.yaml
  snake --config ./my.yaml play`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if err := writeDefaults(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func writeDefaults(w io.Writer) error {
	_, err := w.Write(config.DefaultYAML())
	return err
}

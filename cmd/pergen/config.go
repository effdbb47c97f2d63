package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configShowSource bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show effective configuration",
	Long:  `Show the effective configuration after merging defaults, config file, and environment variables.`,
	Example: `  # Show effective configuration
  pergen config

  # Show configuration with source file path
  pergen config --source`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if configShowSource {
			if configPath != "" {
				fmt.Fprintf(out, "Config file: %s\n\n", configPath)
			} else {
				fmt.Fprintln(out, "Config file: (none, using defaults)")
				fmt.Fprintln(out)
			}
		}

		b, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = out.Write(b)
		return err
	},
}

func init() {
	configCmd.Flags().BoolVar(&configShowSource, "source", false, "show config file source")
}

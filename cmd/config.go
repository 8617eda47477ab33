package cmd

import (
	"github.com/spf13/cobra"
)

// ConfigCmd groups the configuration commands.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage audiocrypt configuration",
	Long: `Provides commands for the user configuration in config.toml.

The config selects the prime size and primality rounds used by key
generation, the byte order of wrapped keys, and the payload cipher suite.

Examples:
  # Write the default configuration
  audiocrypt config init

  # Show the active configuration
  audiocrypt config show`,
}

func init() {
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
}

// resetConfigCommandState resets the config subcommands' global state for testing.
func resetConfigCommandState() {
	resetConfigInitState()
	resetConfigShowState()
}

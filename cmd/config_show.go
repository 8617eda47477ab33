package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/audiocrypt/internal/configs"
	"github.com/PolarWolf314/audiocrypt/internal/ui"
	"github.com/PolarWolf314/audiocrypt/internal/workflows"
	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the active configuration",
	Long: `Displays the configuration audiocrypt runs with. When config.toml does not
exist the built-in defaults are shown.

Examples:
  audiocrypt config show
  audiocrypt config show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")
		Logger.Debugf("Flags: json=%t", configShowJSON)

		result, err := workflows.ShowConfig(cmd.Context())
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load config: %w", err)
		}

		if configShowJSON {
			output, err := json.MarshalIndent(result.Config, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to marshal config to JSON: %w", err)
			}
			fmt.Println(string(output))
			return nil
		}

		outputConfigText(result)
		return nil
	},
}

// outputConfigText outputs the config in human-readable format.
func outputConfigText(result *workflows.ConfigResult) {
	source := ui.Path.Sprint(result.Path)
	if !result.Exists {
		source = ui.Muted.Sprint("defaults, " + result.Path + " not found")
	}
	fmt.Println(ui.Info.Sprint("Configuration") + " " + source)
	fmt.Println()
	printConfig(result.Config)

	if !result.Exists {
		fmt.Println()
		fmt.Println(hintLine("Run " + ui.Code.Sprint("audiocrypt config init") + " to write these defaults to disk"))
	}
}

func printConfig(c *configs.Config) {
	fmt.Println("  [keys]")
	fmt.Printf("  %-20s %s\n", "prime_bytes", ui.Success.Sprint(c.Keys.PrimeBytes))
	fmt.Printf("  %-20s %s\n", "primality_rounds", ui.Success.Sprint(c.Keys.PrimalityRounds))
	fmt.Printf("  %-20s %s\n", "max_prime_attempts", ui.Success.Sprint(c.Keys.MaxPrimeAttempts))
	fmt.Printf("  %-20s %s\n", "encoding", ui.Highlight.Sprint(c.Keys.Encoding))
	fmt.Println("  [cipher]")
	fmt.Printf("  %-20s %s\n", "suite", ui.Highlight.Sprint(c.Cipher.Suite))
}

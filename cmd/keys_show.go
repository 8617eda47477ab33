package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/audiocrypt/internal/ui"
	"github.com/PolarWolf314/audiocrypt/internal/workflows"
	"github.com/spf13/cobra"
)

var keysShowJSON bool

func init() {
	keysShowCmd.Flags().BoolVar(&keysShowJSON, "json", false, "output in JSON format")
}

func resetKeysShowState() {
	keysShowJSON = false
}

var keysShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Shows which keys are stored and their parameters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keys show command")

		status, err := workflows.ShowKeys(cmd.Context())
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load keys: %w", err)
		}

		if keysShowJSON {
			output, err := json.MarshalIndent(status, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("failed to marshal keys to JSON: %w", err)
			}
			fmt.Println(string(output))
			return nil
		}

		present := func(ok bool) string {
			if ok {
				return ui.Success.Sprint("present")
			}
			return ui.Muted.Sprint("missing")
		}

		fmt.Println(ui.Info.Sprint("Keys") + " " + ui.Muted.Sprint(status.KeysPath))
		fmt.Println()
		fmt.Printf("  %-18s %s\n", "Private key:", present(status.HasPrivate))
		fmt.Printf("  %-18s %s\n", "Public key:", present(status.HasPublic))
		if status.Modulus == "" {
			fmt.Println()
			fmt.Println(hintLine("Run " + ui.Code.Sprint("audiocrypt keys generate") + " to create a key pair"))
			return nil
		}
		if status.HasPublic {
			fmt.Printf("  %-18s %s\n", "Public exponent:", status.PublicExponent)
		}
		fmt.Printf("  %-18s %d bits %s\n", "Modulus:", status.ModulusBits, ui.Muted.Sprint(ui.Abbreviate(status.Modulus, 8)))
		fmt.Printf("  %-18s %d bytes\n", "Wrapped key size:", status.WrappedKeyByteLength)
		fmt.Printf("  %-18s %s\n", "Encoding:", status.Encoding)
		return nil
	},
}

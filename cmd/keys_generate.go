package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/PolarWolf314/audiocrypt/internal/ui"
	"github.com/PolarWolf314/audiocrypt/internal/workflows"
	"github.com/spf13/cobra"
)

var keysGeneratePrimeBytes int

func init() {
	keysGenerateCmd.Flags().IntVar(&keysGeneratePrimeBytes, "prime-bytes", 0, "byte length of each prime (default: keys.prime_bytes from the config)")
}

func resetKeysGenerateState() {
	keysGeneratePrimeBytes = 0
}

var keysGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates a new key pair, replacing the current one",
	Long: `Generates two random primes and derives a new RSA key pair from them.

Both halves are written to your keys directory. Files encrypted for the
previous pair can no longer be decrypted once it is replaced, so export it
first if you still need it.

Examples:
  audiocrypt keys generate
  audiocrypt keys generate --prime-bytes 64`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keys generate command")
		spinner, cleanup := startSpinner("Searching for primes...")
		defer cleanup()

		result, err := workflows.GenerateKeys(cmd.Context(), workflows.GenerateKeysOptions{
			PrimeBytes: keysGeneratePrimeBytes,
		})
		if err != nil {
			Logger.Errorf("Key generation failed: %v", err)
			spinner.FinalMSG = formatError(err)
			if isUserError(err) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		Logger.Infof("Generated %d-bit modulus", result.ModulusBits)
		spinner.FinalMSG = successLine(fmt.Sprintf("Generated a %d-bit key pair", result.ModulusBits)) + "\n" +
			fmt.Sprintf("  %-18s %s\n", "Public exponent:", result.PublicExponent) +
			fmt.Sprintf("  %-18s %d bytes %s\n", "Wrapped key size:", result.WrappedKeyByteLength, ui.Muted.Sprint(result.Encoding)) +
			fmt.Sprintf("  %-18s %s\n", "Private key:", ui.Path.Sprint(result.PrivateKeyPath)) +
			fmt.Sprintf("  %-18s %s\n", "Public key:", ui.Path.Sprint(result.PublicKeyPath)) +
			hintLine("Run "+ui.Code.Sprint("audiocrypt keys export --kind public")+" to share your public key")
		return nil
	},
}

package cmd

import (
	"os"

	"github.com/PolarWolf314/audiocrypt/internal/utils"
	"github.com/spf13/cobra"
)

// passphraseEnv supplies the passphrase for sealed keys without a prompt.
const passphraseEnv = "AUDIOCRYPT_PASSPHRASE"

// KeysCmd groups the key management commands.
var KeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage the RSA key pair",
	Long: `Provides generation, import, export, inspection and backup of the RSA key
pair used to wrap per-file symmetric keys.

Keys are stored as text of the form exponent,modulus,length in your data
directory. Exported keys can be sealed with a passphrase.`,
}

func init() {
	KeysCmd.AddCommand(keysGenerateCmd)
	KeysCmd.AddCommand(keysExportCmd)
	KeysCmd.AddCommand(keysImportCmd)
	KeysCmd.AddCommand(keysShowCmd)
	KeysCmd.AddCommand(keysBackupCmd)
}

// resetKeysCommandState resets the keys subcommands' global state for testing.
func resetKeysCommandState() {
	resetKeysGenerateState()
	resetKeysExportState()
	resetKeysImportState()
	resetKeysShowState()
	resetKeysBackupState()
}

// readPassphrase returns the passphrase from the environment, or prompts
// for it. fromTTY prompts on the terminal device when stdin is in use.
func readPassphrase(prompt string, fromTTY bool) ([]byte, error) {
	if p, ok := os.LookupEnv(passphraseEnv); ok {
		Logger.Debugf("Using passphrase from %s", passphraseEnv)
		return []byte(p), nil
	}
	if fromTTY {
		return utils.ReadPassphraseFromTTY(prompt)
	}
	return utils.ReadPassphrase(prompt)
}

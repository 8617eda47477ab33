package cmd

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/audiocrypt/internal/keys"
	"github.com/PolarWolf314/audiocrypt/internal/ui"
	"github.com/PolarWolf314/audiocrypt/internal/utils"
	"github.com/PolarWolf314/audiocrypt/internal/workflows"
	"github.com/spf13/cobra"
)

var keysImportKind = keys.Public

func init() {
	keysImportCmd.Flags().Var(&keysImportKind, "kind", "key to import: public or private")
}

func resetKeysImportState() {
	keysImportKind = keys.Public
}

var keysImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Imports a key from a file or stdin",
	Long: `Reads key text of the form exponent,modulus,length and stores it as your
public or private key. The file may be sealed with a passphrase, which is
then read from $AUDIOCRYPT_PASSPHRASE or prompted for.

An existing RSA key can be imported too: an authorized_keys line
(ssh-rsa ...) for the public half, or an OpenSSH or PEM private key for
either half.

Without a file argument the key is read from stdin.

Examples:
  audiocrypt keys import alice-public_key-song.txt
  audiocrypt keys import --kind private private.txt
  audiocrypt keys import --kind private ~/.ssh/id_rsa
  cat key.txt | audiocrypt keys import`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keys import command")

		var (
			text      []byte
			err       error
			fromStdin = len(args) == 0
		)
		if fromStdin {
			Logger.Debugf("Reading key from stdin")
			text, err = utils.ReadStdin()
		} else {
			Logger.Debugf("Reading key from %s", args[0])
			text, err = os.ReadFile(args[0])
		}
		if err != nil {
			fmt.Println(errorLine("Failed to read key: " + err.Error()))
			return nil
		}

		result, err := workflows.ImportKey(cmd.Context(), workflows.ImportKeyOptions{
			Kind: keysImportKind,
			Text: text,
			Passphrase: func() ([]byte, error) {
				return readPassphrase("Passphrase: ", fromStdin)
			},
		})
		if err != nil {
			fmt.Println(formatError(err))
			if isUserError(err) {
				return nil
			}
			return err
		}

		msg := fmt.Sprintf("Imported %s key to %s", ui.Highlight.Sprint(result.Kind), ui.Path.Sprint(result.Path))
		if result.Sealed {
			msg += " " + ui.Muted.Sprint("unsealed")
		}
		if result.Converted {
			msg += " " + ui.Muted.Sprint("converted from OpenSSH")
		}
		fmt.Println(successLine(msg))
		return nil
	},
}

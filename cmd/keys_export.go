package cmd

import (
	"fmt"

	"github.com/PolarWolf314/audiocrypt/internal/keys"
	"github.com/PolarWolf314/audiocrypt/internal/ui"
	"github.com/PolarWolf314/audiocrypt/internal/utils"
	"github.com/PolarWolf314/audiocrypt/internal/workflows"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	keysExportKind   = keys.Public
	keysExportOutput string
	keysExportSeal   bool
	keysExportBoth   bool
	keysExportPrefix string
	keysExportWav    string
	keysExportDir    string
)

func init() {
	keysExportCmd.Flags().Var(&keysExportKind, "kind", "key to export: public or private")
	keysExportCmd.Flags().StringVarP(&keysExportOutput, "output", "o", "", "write the key to this file instead of stdout")
	keysExportCmd.Flags().BoolVar(&keysExportSeal, "seal", false, "seal the key with a passphrase")
	keysExportCmd.Flags().BoolVar(&keysExportBoth, "both", false, "write both keys as <prefix>-private_key-<wav>.txt and <prefix>-public_key-<wav>.txt")
	keysExportCmd.Flags().StringVar(&keysExportPrefix, "prefix", "", "file name prefix for --both (default: random)")
	keysExportCmd.Flags().StringVar(&keysExportWav, "wav", "", "audio file the keys belong to, used in --both file names")
	keysExportCmd.Flags().StringVar(&keysExportDir, "dir", "", "directory for --both (default: current directory)")
	keysExportCmd.MarkFlagsMutuallyExclusive("both", "kind")
	keysExportCmd.MarkFlagsMutuallyExclusive("both", "output")
	keysExportCmd.MarkFlagsMutuallyExclusive("both", "seal")
}

func resetKeysExportState() {
	keysExportKind = keys.Public
	keysExportOutput = ""
	keysExportSeal = false
	keysExportBoth = false
	keysExportPrefix = ""
	keysExportWav = ""
	keysExportDir = ""
}

var keysExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports a key as text",
	Long: `Prints one half of the key pair as exponent,modulus,length, or writes it
to a file with --output. --seal encrypts the text with a passphrase, read
from $AUDIOCRYPT_PASSPHRASE or prompted for.

--both writes both halves next to each other, named after an audio file,
so they can be handed over together with it.

Examples:
  audiocrypt keys export
  audiocrypt keys export --kind private -o private.txt --seal
  audiocrypt keys export --both --wav song.wav`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keys export command")
		if keysExportBoth {
			return exportBothKeys(cmd)
		}

		var passphrase []byte
		if keysExportSeal {
			p, err := readPassphrase("Passphrase: ", false)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read passphrase: %w", err)
			}
			passphrase = p
		}

		result, err := workflows.ExportKey(cmd.Context(), workflows.ExportKeyOptions{
			Kind:       keysExportKind,
			OutputPath: keysExportOutput,
			Passphrase: passphrase,
		})
		if err != nil {
			fmt.Println(formatError(err))
			if isUserError(err) {
				return nil
			}
			return err
		}

		if result.OutputPath == "" {
			fmt.Println(result.Text)
			return nil
		}

		msg := fmt.Sprintf("Exported %s key to %s", ui.Highlight.Sprint(keysExportKind), ui.Path.Sprint(result.OutputPath))
		if result.Sealed {
			msg += " " + ui.Muted.Sprint("sealed")
		}
		fmt.Println(successLine(msg))
		return nil
	},
}

func exportBothKeys(cmd *cobra.Command) error {
	if keysExportWav == "" {
		fmt.Println(errorLine(ui.Flag.Sprint("--wav") + " is required with " + ui.Flag.Sprint("--both")))
		return nil
	}

	prefix := utils.SanitizePrefix(keysExportPrefix)
	if prefix == "" {
		prefix = uuid.New().String()[:8]
	}
	Logger.Debugf("Exporting both keys with prefix %q for %q", prefix, keysExportWav)

	result, err := workflows.ExportBothKeys(cmd.Context(), workflows.ExportBothKeysOptions{
		Prefix:  prefix,
		WavName: keysExportWav,
		Dir:     keysExportDir,
	})
	if err != nil {
		fmt.Println(formatError(err))
		if isUserError(err) {
			return nil
		}
		return err
	}

	fmt.Println(successLine("Exported both keys:") + utils.FormatPaths([]string{result.PrivateKeyPath, result.PublicKeyPath}) +
		ui.Warning.Sprint("⚠") + " The private key file is not sealed. Keep it safe.")
	return nil
}

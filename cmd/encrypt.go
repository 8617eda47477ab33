package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/audiocrypt/internal/ui"
	"github.com/PolarWolf314/audiocrypt/internal/utils"
	"github.com/PolarWolf314/audiocrypt/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	encryptOutput string
	encryptForce  bool
	encryptDryRun bool
)

func init() {
	encryptCmd.Flags().StringVarP(&encryptOutput, "output", "o", "", "output path (single input only, default: <name>.enc.wav)")
	encryptCmd.Flags().BoolVarP(&encryptForce, "force", "f", false, "overwrite existing output files")
	encryptCmd.Flags().BoolVar(&encryptDryRun, "dry-run", false, "preview which files would be encrypted without making changes")
}

// resetEncryptCommandState resets the encrypt command's global state for testing.
func resetEncryptCommandState() {
	encryptOutput = ""
	encryptForce = false
	encryptDryRun = false
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt <file|dir|glob>...",
	Short: "Encrypts the audio payload of WAV files with your public key",
	Long: `Encrypts the sample data of each matched WAV file and writes
<name>.enc.wav next to it. The header is kept as is.

Arguments may be files, directories or glob patterns ("**" matches any
depth). Files already ending in .enc.wav are skipped when matched by a
directory or glob.

Examples:
  audiocrypt encrypt song.wav
  audiocrypt encrypt song.wav -o locked.wav
  audiocrypt encrypt "albums/**/*.wav" --dry-run`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")
		spinner, cleanup := startSpinner("Encrypting audio files...")
		defer cleanup()

		result, err := workflows.EncryptFiles(context.Background(), workflows.EncryptOptions{
			FilePatterns: args,
			OutputPath:   encryptOutput,
			Force:        encryptForce,
			DryRun:       encryptDryRun,
			Logger:       Logger,
		})
		if err != nil {
			Logger.Errorf("Encrypt failed: %v", err)
			spinner.FinalMSG = formatError(err)
			if isUserError(err) {
				return nil
			}
			return err
		}

		if result.DryRun {
			spinner.FinalMSG = formatPlan("encrypted", result.SourceFiles, result.EncryptedFiles)
			return nil
		}

		Logger.Infof("Encrypted %d files with %s", len(result.EncryptedFiles), result.Suite)
		spinner.FinalMSG = successLine(fmt.Sprintf("Encrypted %d file(s) with %s", len(result.EncryptedFiles), ui.Highlight.Sprint(result.Suite))) + "\n" +
			"The following files were created: " + utils.FormatPaths(result.EncryptedFiles) +
			hintLine("Share the matching private key to let others decrypt them")
		return nil
	},
}

// formatPlan lists the source and output of each file a dry run would touch.
func formatPlan(verb string, sources, outputs []string) string {
	msg := ui.Warning.Sprint("[dry-run]") + fmt.Sprintf(" Would write %d file(s):\n", len(outputs))
	for i := range sources {
		msg += "  " + ui.Path.Sprint(sources[i]) + " -> " + ui.Path.Sprint(outputs[i]) + "\n"
	}
	msg += "\n" + ui.Muted.Sprint("No files were "+verb)
	return msg
}

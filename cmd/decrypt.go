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
	decryptOutput string
	decryptForce  bool
	decryptDryRun bool
)

func init() {
	decryptCmd.Flags().StringVarP(&decryptOutput, "output", "o", "", "output path (single input only)")
	decryptCmd.Flags().BoolVarP(&decryptForce, "force", "f", false, "overwrite existing output files")
	decryptCmd.Flags().BoolVar(&decryptDryRun, "dry-run", false, "preview which files would be decrypted without making changes")
}

// resetDecryptCommandState resets the decrypt command's global state for testing.
func resetDecryptCommandState() {
	decryptOutput = ""
	decryptForce = false
	decryptDryRun = false
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt <file|dir|glob>...",
	Short: "Decrypts WAV files encrypted for your key pair",
	Long: `Decrypts each matched file with your private key.

<name>.enc.wav is written back to <name>.wav. Any other WAV file named
explicitly is written to <name>.dec.wav. Directories and globs only match
files ending in .enc.wav.

Examples:
  audiocrypt decrypt song.enc.wav
  audiocrypt decrypt song.enc.wav --force
  audiocrypt decrypt albums/`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")
		spinner, cleanup := startSpinner("Decrypting audio files...")
		defer cleanup()

		result, err := workflows.DecryptFiles(context.Background(), workflows.DecryptOptions{
			FilePatterns: args,
			OutputPath:   decryptOutput,
			Force:        decryptForce,
			DryRun:       decryptDryRun,
			Logger:       Logger,
		})
		if err != nil {
			Logger.Errorf("Decrypt failed: %v", err)
			spinner.FinalMSG = formatError(err)
			if isUserError(err) {
				return nil
			}
			return err
		}

		if result.DryRun {
			spinner.FinalMSG = formatPlan("decrypted", result.SourceFiles, result.DecryptedFiles)
			return nil
		}

		Logger.Infof("Decrypted %d files with %s", len(result.DecryptedFiles), result.Suite)
		spinner.FinalMSG = successLine(fmt.Sprintf("Decrypted %d file(s) with %s", len(result.DecryptedFiles), ui.Highlight.Sprint(result.Suite))) + "\n" +
			"The following files were created: " + utils.FormatPaths(result.DecryptedFiles)
		return nil
	},
}

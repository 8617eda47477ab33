package cmd

import (
	"fmt"
	"sort"

	"github.com/PolarWolf314/audiocrypt/internal/ui"
	"github.com/PolarWolf314/audiocrypt/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	keysBackupOutput string
	keysBackupForce  bool
)

func init() {
	keysBackupCmd.Flags().StringVarP(&keysBackupOutput, "output", "o", "", "output path for the archive (default: audiocrypt-keys-YYYY-MM-DD.tar.gz)")
	keysBackupCmd.Flags().BoolVarP(&keysBackupForce, "force", "f", false, "overwrite an existing archive")
}

func resetKeysBackupState() {
	keysBackupOutput = ""
	keysBackupForce = false
}

var keysBackupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Archives your keys and config",
	Long: `Creates a tar.gz archive with your key pair and config.toml.

The archive holds the private key unsealed. Store it somewhere safe.

Examples:
  audiocrypt keys backup
  audiocrypt keys backup -o /backups/audiocrypt.tar.gz`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keys backup command")
		spinner, cleanup := startSpinner("Archiving keys...")
		defer cleanup()

		result, err := workflows.BackupKeys(cmd.Context(), workflows.BackupOptions{
			OutputPath: keysBackupOutput,
			Force:      keysBackupForce,
		})
		if err != nil {
			spinner.FinalMSG = formatError(err)
			if isUserError(err) {
				return nil
			}
			return err
		}

		names := make([]string, 0, len(result.Files))
		for name := range result.Files {
			names = append(names, name)
		}
		sort.Strings(names)

		msg := successLine("Backed up keys to "+ui.Path.Sprint(result.OutputPath)) + "\n\nArchive contents:\n"
		for _, name := range names {
			msg += fmt.Sprintf("  %s %s\n", name, ui.Muted.Sprint(result.Files[name]))
		}
		msg += "\n" + ui.Warning.Sprint("⚠") + " The archive contains your private key."
		spinner.FinalMSG = msg
		return nil
	},
}

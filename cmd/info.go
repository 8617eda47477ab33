package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/audiocrypt/internal/ui"
	"github.com/PolarWolf314/audiocrypt/internal/workflows"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Shows the header fields of a WAV file",
	Long: `Prints the 44-byte header of a WAV file along with its duration and
payload size. Encrypted files keep their original header, so this works on
them too.

Examples:
  audiocrypt info song.wav
  audiocrypt info song.enc.wav`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting info command")
		Logger.Debugf("Reading %s", args[0])

		result, err := workflows.Info(context.Background(), args[0])
		if err != nil {
			fmt.Println(formatError(err))
			if isUserError(err) {
				return nil
			}
			return err
		}

		fmt.Print(ui.EnsureNewline(result.Description))
		fmt.Printf("Payload: %d bytes %s\n", result.PayloadSize, ui.Muted.Sprint(result.Path))
		return nil
	},
}

package cmd

import (
	"fmt"

	"github.com/PolarWolf314/audiocrypt/internal/ui"
	"github.com/PolarWolf314/audiocrypt/internal/workflows"
	"github.com/spf13/cobra"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config.toml")
}

func resetConfigInitState() {
	configInitForce = false
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Writes the default configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")

		result, err := workflows.InitConfig(cmd.Context(), workflows.InitConfigOptions{Force: configInitForce})
		if err != nil {
			fmt.Println(formatError(err))
			if isUserError(err) {
				return nil
			}
			return err
		}

		fmt.Println(successLine("Wrote default configuration to " + ui.Path.Sprint(result.Path)))
		fmt.Println(hintLine("Edit it to change key generation or the cipher suite"))
		return nil
	},
}

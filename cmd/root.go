package cmd

import (
	logger "github.com/PolarWolf314/audiocrypt/internal/logging"
	"github.com/PolarWolf314/audiocrypt/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "audiocrypt",
		Short: "Encrypt the audio payload of WAV files with a hybrid RSA/AES scheme",
		Long: `audiocrypt encrypts the sample data of PCM WAV files while keeping the
44-byte header readable.

Each file gets a fresh symmetric key and IV. The payload is encrypted with
them, and the key and IV are wrapped with your RSA public key and appended
to the file. Decrypting requires the matching private key.

Examples:
  # Create a key pair
  audiocrypt keys generate

  # Encrypt every WAV file below the current directory
  audiocrypt encrypt "**/*.wav"

  # Decrypt one file
  audiocrypt decrypt song.enc.wav`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s with verbose=%t, debug=%t", cmd.CommandPath(), verbose, debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.Banner(cmd.OutOrStdout(), "audiocrypt")
			return cmd.Help()
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(infoCmd)
	RootCmd.AddCommand(KeysCmd)
	RootCmd.AddCommand(ConfigCmd)
	RootCmd.AddCommand(logCmd)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetEncryptCommandState()
	resetDecryptCommandState()
	resetKeysCommandState()
	resetConfigCommandState()
	resetLogCommandState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears the Changed mark on every flag so a reused
// command tree behaves like a fresh one.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetCobraFlagState(sub)
	}
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}

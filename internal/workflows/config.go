package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/audiocrypt/internal/configs"
	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
)

// InitConfigOptions configures the config init workflow.
type InitConfigOptions struct {
	// Force overwrites an existing config.toml with the defaults.
	Force bool
}

// ConfigResult contains the active configuration and where it lives.
type ConfigResult struct {
	Config *configs.Config
	Path   string

	// Exists is false when Config holds the built-in defaults.
	Exists bool
}

// InitConfig writes the default configuration to config.toml.
//
// Returns ErrOutputExists if the file exists and Force is not set.
func InitConfig(ctx context.Context, opts InitConfigOptions) (*ConfigResult, error) {
	path := configs.UserAudiocryptSettings.ConfigPath()
	if configs.UserConfigExists() && !opts.Force {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrOutputExists, path)
	}

	config := configs.DefaultConfig()
	if err := configs.SaveUserConfig(config); err != nil {
		return nil, err
	}
	return &ConfigResult{Config: config, Path: path, Exists: true}, nil
}

// ShowConfig returns the active configuration.
func ShowConfig(ctx context.Context) (*ConfigResult, error) {
	config, err := configs.LoadUserConfig()
	if err != nil {
		return nil, err
	}
	return &ConfigResult{
		Config: config,
		Path:   configs.UserAudiocryptSettings.ConfigPath(),
		Exists: configs.UserConfigExists(),
	}, nil
}

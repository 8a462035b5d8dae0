// Package genconfig outputs or installs the default configuration file.
package genconfig

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/applaunch/pkg/config"
	"github.com/arthur-debert/applaunch/pkg/logging"
	"github.com/arthur-debert/applaunch/pkg/paths"
	"github.com/arthur-debert/applaunch/pkg/types"
)

// GenConfigOptions holds options for the genconfig command.
type GenConfigOptions struct {
	// Write installs the config at the user config path instead of just
	// returning it. An existing file is never overwritten.
	Write bool

	// Effective renders the fully resolved configuration (defaults, user
	// file and env overrides applied) instead of the commented defaults.
	Effective bool

	// ConfigFile overrides the default user config location, both as the
	// source for Effective and as the Write destination.
	ConfigFile string
}

// GenConfig outputs or writes the configuration.
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	targetPath := opts.ConfigFile
	if targetPath == "" {
		targetPath = paths.New("").ConfigFile()
	}

	content := config.GetDefaultsContent()
	if opts.Effective {
		cfg, err := config.Load(targetPath)
		if err != nil {
			return nil, err
		}
		content, err = config.Render(cfg)
		if err != nil {
			return nil, err
		}
	}

	result := &types.GenConfigResult{ConfigContent: content}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	if _, err := os.Stat(targetPath); err == nil {
		logger.Warn().Str("path", targetPath).Msg("Config file already exists, skipping")
		return result, nil
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return result, err
	}
	if err := os.WriteFile(targetPath, []byte(content), 0644); err != nil {
		return result, err
	}

	logger.Info().Str("path", targetPath).Msg("Written config file")
	result.FileWritten = targetPath
	return result, nil
}

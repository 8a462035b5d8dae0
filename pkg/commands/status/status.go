// Package status implements the read-only status report: alias state,
// newest image, running instance and log file sizes.
package status

import (
	"path/filepath"

	"github.com/arthur-debert/applaunch/pkg/config"
	"github.com/arthur-debert/applaunch/pkg/errors"
	"github.com/arthur-debert/applaunch/pkg/filesystem"
	"github.com/arthur-debert/applaunch/pkg/instance"
	"github.com/arthur-debert/applaunch/pkg/logging"
	"github.com/arthur-debert/applaunch/pkg/paths"
	"github.com/arthur-debert/applaunch/pkg/resolver"
	"github.com/arthur-debert/applaunch/pkg/types"
)

// StatusOptions holds options for the status command.
type StatusOptions struct {
	ConfigFile string

	FS     types.FS
	Lister instance.Lister
}

// Status gathers the current state without mutating anything: no symlink
// update, no log rotation, no spawn. Absent pieces (no alias yet, no image
// installed) are reported as empty fields rather than errors.
func Status(opts StatusOptions) (*types.StatusResult, error) {
	logger := logging.GetLogger("commands.status")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	lister := opts.Lister
	if lister == nil {
		lister = instance.NewSystemLister()
	}

	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = paths.New("").ConfigFile()
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	p := paths.New(cfg.App.Name)
	binDir := cfg.Paths.BinDir
	if binDir == "" {
		binDir = p.BinDir()
	}
	logDir := cfg.Paths.LogDir
	if logDir == "" {
		logDir = p.LogDir()
	}

	aliasPath := filepath.Join(binDir, cfg.App.Alias)
	result := &types.StatusResult{AliasPath: aliasPath}

	if target, err := fsys.Readlink(aliasPath); err == nil {
		result.AliasTarget = target
	}

	latest, err := resolver.LatestImage(fsys, resolver.Options{
		Dir:     binDir,
		Pattern: cfg.App.Pattern,
		Alias:   cfg.App.Alias,
	})
	switch {
	case err == nil:
		result.LatestImage = latest
	case errors.IsErrorCode(err, errors.ErrNoImageFound):
		// Reported as an empty LatestImage.
	default:
		return nil, err
	}

	info, err := instance.Check(lister, aliasPath, cfg.App.Name)
	if err != nil {
		logger.Warn().Err(err).Msg("Instance check failed")
	}
	result.Instance = info

	stdoutLog := filepath.Join(logDir, paths.StdoutLogName)
	stderrLog := filepath.Join(logDir, paths.StderrLogName)
	for _, logPath := range []string{stdoutLog, stderrLog} {
		entry := types.LogFileStatus{Path: logPath}
		if fi, err := fsys.Stat(logPath); err == nil {
			entry.Exists = true
			entry.Size = fi.Size()
		}
		result.Logs = append(result.Logs, entry)
	}

	return result, nil
}

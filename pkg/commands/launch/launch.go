// Package launch implements the full launch sequence: resolve the newest
// image, guard against a duplicate instance, rotate logs, spawn.
package launch

import (
	"github.com/arthur-debert/applaunch/pkg/config"
	"github.com/arthur-debert/applaunch/pkg/filesystem"
	"github.com/arthur-debert/applaunch/pkg/instance"
	"github.com/arthur-debert/applaunch/pkg/launcher"
	"github.com/arthur-debert/applaunch/pkg/logfiles"
	"github.com/arthur-debert/applaunch/pkg/logging"
	"github.com/arthur-debert/applaunch/pkg/paths"
	"github.com/arthur-debert/applaunch/pkg/resolver"
	"github.com/arthur-debert/applaunch/pkg/types"
)

// LaunchOptions holds options for the launch command.
type LaunchOptions struct {
	// Args are forwarded verbatim to the wrapped application.
	Args []string

	// ConfigFile overrides the default user config location. Empty means
	// $XDG_CONFIG_HOME/applaunch/applaunch.toml.
	ConfigFile string

	// FS and Lister default to the real filesystem and process table;
	// tests inject fakes.
	FS     types.FS
	Lister instance.Lister
}

// Launch runs the four launch steps in order. Two early exits: a missing
// image is an error; an already-running instance is a successful no-op that
// leaves the log files untouched.
func Launch(opts LaunchOptions) (*types.LaunchResult, error) {
	logger := logging.GetLogger("commands.launch")

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

	resolved, err := resolver.Resolve(fsys, resolver.Options{
		Dir:     binDir,
		Pattern: cfg.App.Pattern,
		Alias:   cfg.App.Alias,
	})
	if err != nil {
		return nil, err
	}

	result := &types.LaunchResult{Resolve: *resolved}

	info, err := instance.Check(lister, resolved.AliasPath, cfg.App.Name)
	if err != nil {
		// The guard is best-effort: an unreadable process table must not
		// block the launch.
		logger.Warn().Err(err).Msg("Instance check failed, proceeding with launch")
	}
	result.Instance = info
	if info.Running {
		logger.Info().Int32("pid", info.PID).Msg("Instance already running, nothing to do")
		result.AlreadyRunning = true
		return result, nil
	}

	manager := logfiles.NewManager(fsys, logDir, cfg.Logs.MaxSize)
	if err := manager.Prepare(); err != nil {
		return nil, err
	}
	// Rotation failures degrade to unbounded growth; they never block the
	// launch.
	_ = manager.Rotate()
	result.StdoutLog = manager.StdoutPath()
	result.StderrLog = manager.StderrPath()

	stdout, stderr, err := manager.OpenAppend()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = stdout.Close()
		_ = stderr.Close()
	}()

	started, err := launcher.Start(launcher.StartOptions{
		Path:        resolved.AliasPath,
		Args:        opts.Args,
		Stdout:      stdout,
		Stderr:      stderr,
		GracePeriod: cfg.Launch.GracePeriod,
	})
	if err != nil {
		return nil, err
	}

	result.PID = started.PID
	result.Alive = started.Alive
	return result, nil
}

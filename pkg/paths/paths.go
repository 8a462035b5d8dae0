// Package paths provides centralized path handling for applaunch.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvBinDir overrides the directory searched for executable images
	EnvBinDir = "APPLAUNCH_BIN_DIR"

	// EnvLogDir overrides the directory holding the application log files
	EnvLogDir = "APPLAUNCH_LOG_DIR"

	// EnvConfigDir overrides the XDG config directory for applaunch
	EnvConfigDir = "APPLAUNCH_CONFIG_DIR"
)

// Default directory and file names.
// These define applaunch's on-disk layout and are not user-configurable
// here; user-configurable paths belong in pkg/config.
const (
	// AppDirName is the directory name for applaunch-specific files
	AppDirName = "applaunch"

	// ConfigFileName is the name of the configuration file
	ConfigFileName = "applaunch.toml"

	// StdoutLogName is the managed standard-output log file
	StdoutLogName = "stdout.log"

	// StderrLogName is the managed standard-error log file
	StderrLogName = "stderr.log"
)

// Paths provides centralized path management for applaunch
type Paths struct {
	binDir    string
	logDir    string
	configDir string
}

// New resolves the applaunch directories, honoring APPLAUNCH_* environment
// overrides before falling back to the XDG base directories. appName scopes
// the log directory so multiple wrapped applications do not interleave logs.
func New(appName string) *Paths {
	p := &Paths{}

	if dir := os.Getenv(EnvBinDir); dir != "" {
		p.binDir = dir
	} else {
		p.binDir = xdg.BinHome
	}

	if dir := os.Getenv(EnvLogDir); dir != "" {
		p.logDir = dir
	} else {
		p.logDir = filepath.Join(xdg.StateHome, AppDirName, appName)
	}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = dir
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	return p
}

// BinDir returns the directory searched for executable images.
func (p *Paths) BinDir() string {
	return p.binDir
}

// LogDir returns the directory holding the wrapped application's log files.
func (p *Paths) LogDir() string {
	return p.logDir
}

// ConfigDir returns the applaunch configuration directory.
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// ConfigFile returns the path of the user configuration file.
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// AliasPath returns the absolute path of the stable alias inside BinDir.
func (p *Paths) AliasPath(alias string) string {
	return filepath.Join(p.binDir, alias)
}

// StdoutLog returns the path of the managed stdout log file.
func (p *Paths) StdoutLog() string {
	return filepath.Join(p.logDir, StdoutLogName)
}

// StderrLog returns the path of the managed stderr log file.
func (p *Paths) StderrLog() string {
	return filepath.Join(p.logDir, StderrLogName)
}

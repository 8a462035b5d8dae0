// Package logfiles manages the wrapped application's log files: the log
// directory, size-bounded rotation, and the append-mode handles handed to
// the launcher.
package logfiles

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/applaunch/pkg/errors"
	"github.com/arthur-debert/applaunch/pkg/logging"
	"github.com/arthur-debert/applaunch/pkg/paths"
	"github.com/arthur-debert/applaunch/pkg/types"
)

// Manager rotates and opens the two managed log files inside a directory.
type Manager struct {
	fsys    types.FS
	dir     string
	maxSize int64
}

// NewManager returns a Manager bound to dir. Files at or above maxSize
// bytes are rotated aside before a new run starts appending.
func NewManager(fsys types.FS, dir string, maxSize int64) *Manager {
	return &Manager{fsys: fsys, dir: dir, maxSize: maxSize}
}

// StdoutPath returns the managed stdout log path.
func (m *Manager) StdoutPath() string {
	return filepath.Join(m.dir, paths.StdoutLogName)
}

// StderrPath returns the managed stderr log path.
func (m *Manager) StderrPath() string {
	return filepath.Join(m.dir, paths.StderrLogName)
}

// Prepare creates the log directory. Failure is fatal for the run
// (LOG_DIR_UNAVAILABLE).
func (m *Manager) Prepare() error {
	if err := m.fsys.MkdirAll(m.dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrLogDirUnavailable, "cannot create log directory %s", m.dir)
	}
	return nil
}

// Rotate bounds both log files, renaming any file at or above the threshold
// aside to <name>.old and discarding a previous .old. Rotation failures are
// non-fatal: they are logged and returned so the caller can report them,
// but the launch proceeds with the oversized file.
func (m *Manager) Rotate() []error {
	logger := logging.GetLogger("logfiles")

	var failures []error
	for _, path := range []string{m.StdoutPath(), m.StderrPath()} {
		if err := m.rotateFile(path); err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Log rotation failed, log will grow unbounded until next rotation")
			failures = append(failures, errors.Wrapf(err, errors.ErrLogRotationFailed, "failed to rotate %s", path))
		}
	}
	return failures
}

func (m *Manager) rotateFile(path string) error {
	info, err := m.fsys.Stat(path)
	if err != nil {
		// Nothing to rotate.
		return nil
	}
	if info.Size() < m.maxSize {
		return nil
	}

	old := path + ".old"
	if _, err := m.fsys.Lstat(old); err == nil {
		if err := m.fsys.Remove(old); err != nil {
			return err
		}
	}
	return m.fsys.Rename(path, old)
}

// OpenAppend opens both log files in append mode for handoff to the
// launcher. The caller owns the handles.
func (m *Manager) OpenAppend() (stdout, stderr *os.File, err error) {
	stdout, err = openAppend(m.StdoutPath())
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrLogDirUnavailable, "cannot open %s", m.StdoutPath())
	}
	stderr, err = openAppend(m.StderrPath())
	if err != nil {
		_ = stdout.Close()
		return nil, nil, errors.Wrapf(err, errors.ErrLogDirUnavailable, "cannot open %s", m.StderrPath())
	}
	return stdout, stderr, nil
}

func openAppend(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}

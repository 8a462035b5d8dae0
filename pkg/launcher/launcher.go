// Package launcher spawns the resolved executable image as a detached
// background process.
package launcher

import (
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/arthur-debert/applaunch/pkg/errors"
	"github.com/arthur-debert/applaunch/pkg/logging"
)

// StartOptions configures a spawn.
type StartOptions struct {
	// Path of the executable to run, normally the stable alias.
	Path string

	// Args are forwarded to the child verbatim.
	Args []string

	// Stdout and Stderr are the append-mode log file handles the child
	// writes to. The caller retains ownership and closes them after Start
	// returns.
	Stdout *os.File
	Stderr *os.File

	// GracePeriod is how long to wait before checking the child survived
	// startup. Zero skips the check.
	GracePeriod time.Duration
}

// StartResult reports the spawned child.
type StartResult struct {
	PID int

	// Alive is false when the child exited within the grace period,
	// which usually means startup failed; the logs hold the details.
	Alive bool
}

// Start runs the executable in a new session so it survives the wrapper's
// exit, with stdin from the null device and output appended to the managed
// log files. A spawn failure is LAUNCH_FAILED.
func Start(opts StartOptions) (*StartResult, error) {
	logger := logging.GetLogger("launcher")

	cmd := exec.Command(opts.Path, opts.Args...)
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr
	// Stdin left nil reads from the null device.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	logger.Debug().Str("path", opts.Path).Strs("args", opts.Args).Msg("Spawning")
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrLaunchFailed, "failed to start %s", opts.Path)
	}

	result := &StartResult{PID: cmd.Process.Pid, Alive: true}
	logger.Info().Int("pid", result.PID).Msg("Spawned child")

	if opts.GracePeriod > 0 {
		result.Alive = survives(cmd, opts.GracePeriod)
		if !result.Alive {
			logger.Warn().Int("pid", result.PID).Msg("Child exited during grace period")
		}
	}
	return result, nil
}

// survives reports whether the child is still running after the grace
// period. Waiting in a goroutine also reaps the child if it exits while
// the wrapper is still around, so a dead child is not mistaken for a
// live zombie.
func survives(cmd *exec.Cmd, grace time.Duration) bool {
	done := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(done)
	}()

	select {
	case <-done:
		return false
	case <-time.After(grace):
		return true
	}
}

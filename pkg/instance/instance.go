// Package instance implements the running-instance guard.
//
// The check is inherently racy: a matching process can appear between this
// check and the subsequent spawn. The guard is best-effort by design;
// duplicate launches under concurrent invocation are an accepted limitation.
package instance

import (
	"os"
	"strings"

	"github.com/arthur-debert/applaunch/pkg/logging"
	"github.com/arthur-debert/applaunch/pkg/types"
)

// Process is the subset of process-table data the guard inspects.
type Process struct {
	PID     int32
	Name    string
	Cmdline string
	Exe     string
}

// Lister enumerates the live process table. The production implementation
// wraps gopsutil; tests inject fakes.
type Lister interface {
	Processes() ([]Process, error)
}

// Check scans the process table for a running instance of the wrapped
// application: a process whose command line or executable references the
// alias path, or whose name equals the application name. The wrapper's own
// process never matches.
func Check(lister Lister, aliasPath, appName string) (types.InstanceInfo, error) {
	logger := logging.GetLogger("instance")

	procs, err := lister.Processes()
	if err != nil {
		return types.InstanceInfo{}, err
	}

	self := int32(os.Getpid())
	for _, p := range procs {
		if p.PID == self {
			continue
		}
		if !matches(p, aliasPath, appName) {
			continue
		}
		logger.Debug().
			Int32("pid", p.PID).
			Str("cmdline", p.Cmdline).
			Msg("Found running instance")
		return types.InstanceInfo{
			Running: true,
			PID:     p.PID,
			Cmdline: p.Cmdline,
		}, nil
	}

	return types.InstanceInfo{}, nil
}

func matches(p Process, aliasPath, appName string) bool {
	if aliasPath != "" {
		if p.Exe == aliasPath || strings.Contains(p.Cmdline, aliasPath) {
			return true
		}
	}
	return appName != "" && p.Name == appName
}

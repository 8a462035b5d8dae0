package instance

import (
	"github.com/shirou/gopsutil/v4/process"
)

// systemLister reads the live process table via gopsutil.
type systemLister struct{}

// NewSystemLister returns a Lister backed by the operating system's
// process table.
func NewSystemLister() Lister {
	return &systemLister{}
}

func (s *systemLister) Processes() ([]Process, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	out := make([]Process, 0, len(procs))
	for _, p := range procs {
		entry := Process{PID: p.Pid}
		// Per-process reads fail routinely (permissions, processes exiting
		// mid-scan); a partial entry is still useful for matching.
		if name, err := p.Name(); err == nil {
			entry.Name = name
		}
		if cmdline, err := p.Cmdline(); err == nil {
			entry.Cmdline = cmdline
		}
		if exe, err := p.Exe(); err == nil {
			entry.Exe = exe
		}
		out = append(out, entry)
	}
	return out, nil
}

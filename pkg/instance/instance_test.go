package instance

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	procs []Process
	err   error
}

func (f *fakeLister) Processes() ([]Process, error) {
	return f.procs, f.err
}

const aliasPath = "/home/user/.local/bin/cursor.latest"

func TestCheckMatches(t *testing.T) {
	tests := []struct {
		name    string
		proc    Process
		running bool
	}{
		{
			name:    "cmdline references alias",
			proc:    Process{PID: 42, Cmdline: aliasPath + " --no-sandbox"},
			running: true,
		},
		{
			name:    "exe is alias",
			proc:    Process{PID: 42, Exe: aliasPath},
			running: true,
		},
		{
			name:    "process name equals app name",
			proc:    Process{PID: 42, Name: "cursor"},
			running: true,
		},
		{
			name:    "unrelated process",
			proc:    Process{PID: 42, Name: "vim", Cmdline: "vim notes.txt"},
			running: false,
		},
		{
			name:    "app name as substring does not match",
			proc:    Process{PID: 42, Name: "cursor-helper"},
			running: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lister := &fakeLister{procs: []Process{tt.proc}}

			info, err := Check(lister, aliasPath, "cursor")
			require.NoError(t, err)
			assert.Equal(t, tt.running, info.Running)
			if tt.running {
				assert.Equal(t, int32(42), info.PID)
			}
		})
	}
}

func TestCheckExcludesOwnProcess(t *testing.T) {
	lister := &fakeLister{procs: []Process{
		{PID: int32(os.Getpid()), Cmdline: aliasPath},
	}}

	info, err := Check(lister, aliasPath, "cursor")
	require.NoError(t, err)
	assert.False(t, info.Running)
}

func TestCheckEmptyTable(t *testing.T) {
	info, err := Check(&fakeLister{}, aliasPath, "cursor")
	require.NoError(t, err)
	assert.False(t, info.Running)
	assert.Zero(t, info.PID)
}

func TestCheckListerError(t *testing.T) {
	lister := &fakeLister{err: fmt.Errorf("process table unavailable")}

	info, err := Check(lister, aliasPath, "cursor")
	require.Error(t, err)
	assert.False(t, info.Running)
}

func TestCheckReportsFirstMatch(t *testing.T) {
	lister := &fakeLister{procs: []Process{
		{PID: 10, Name: "vim"},
		{PID: 20, Cmdline: aliasPath},
		{PID: 30, Cmdline: aliasPath},
	}}

	info, err := Check(lister, aliasPath, "cursor")
	require.NoError(t, err)
	assert.True(t, info.Running)
	assert.Equal(t, int32(20), info.PID)
}

func TestSystemListerSeesOwnProcess(t *testing.T) {
	procs, err := NewSystemLister().Processes()
	require.NoError(t, err)

	self := int32(os.Getpid())
	found := false
	for _, p := range procs {
		if p.PID == self {
			found = true
			break
		}
	}
	assert.True(t, found, "the process table should contain the test process")
}

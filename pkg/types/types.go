// Package types holds the shared types used across applaunch packages.
package types

import (
	"io/fs"
	"time"
)

// FS abstracts the filesystem operations applaunch performs so that
// components can be tested against injected directories or fakes.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	Readlink(name string) (string, error)
	Symlink(oldname, newname string) error
	Rename(oldpath, newpath string) error
	Remove(name string) error
	MkdirAll(path string, perm fs.FileMode) error
}

// ResolveResult is the outcome of the version resolution step.
type ResolveResult struct {
	// Image is the absolute path of the selected executable image.
	Image string

	// ModTime is the selected image's modification time.
	ModTime time.Time

	// AliasPath is the absolute path of the stable alias symlink.
	AliasPath string

	// Updated is true when the alias was created or repointed this run.
	Updated bool
}

// InstanceInfo describes whether the wrapped application is already running.
type InstanceInfo struct {
	Running bool
	PID     int32
	Cmdline string
}

// LaunchResult is the outcome of a full launch invocation.
type LaunchResult struct {
	Resolve        ResolveResult
	Instance       InstanceInfo
	AlreadyRunning bool

	// PID of the spawned child; zero when AlreadyRunning.
	PID int

	// Alive reports whether the child survived the post-start grace period.
	Alive bool

	StdoutLog string
	StderrLog string
}

// LogFileStatus describes one managed log file for status reporting.
type LogFileStatus struct {
	Path   string
	Size   int64
	Exists bool
}

// StatusResult is the outcome of the read-only status command.
type StatusResult struct {
	AliasPath   string
	AliasTarget string
	LatestImage string
	Instance    InstanceInfo
	Logs        []LogFileStatus
}

// GenConfigResult is the outcome of the genconfig command.
type GenConfigResult struct {
	ConfigContent string
	FileWritten   string
}

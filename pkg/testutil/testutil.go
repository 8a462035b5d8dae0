// Package testutil holds shared helpers for applaunch tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/applaunch/pkg/instance"
)

// WriteImage creates a fake executable image in dir with the given
// modification time and returns its path.
func WriteImage(t *testing.T, dir, name string, mtime time.Time) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatalf("failed to write image %s: %v", path, err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("failed to set mtime on %s: %v", path, err)
	}
	return path
}

// WriteScript creates an executable shell script and returns its path.
func WriteScript(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatalf("failed to write script %s: %v", path, err)
	}
	return path
}

// WriteConfig creates a config file with the given TOML content and returns
// its path.
func WriteConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "applaunch.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config %s: %v", path, err)
	}
	return path
}

// FakeLister is an instance.Lister serving a fixed process list.
type FakeLister struct {
	Procs []instance.Process
	Err   error
}

func (f *FakeLister) Processes() ([]instance.Process, error) {
	return f.Procs, f.Err
}

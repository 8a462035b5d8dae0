package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/applaunch/pkg/config"
	"github.com/arthur-debert/applaunch/pkg/testutil"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Keep the logger and config lookups away from the real home.
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("APPLAUNCH_CONFIG_DIR", t.TempDir())

	buf := new(bytes.Buffer)
	cmd := NewRootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootHasExpectedSubcommands(t *testing.T) {
	cmd := NewRootCmd()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"launch", "status", "genconfig", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "applaunch version")
	assert.Contains(t, out, "commit:")
}

func TestRootVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "applaunch version")
}

func TestRootHelpFlag(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "applaunch")
	assert.Contains(t, out, "forwarded verbatim")
}

func TestGenConfigCommandPrintsDefaults(t *testing.T) {
	out, err := execute(t, "genconfig")
	require.NoError(t, err)
	assert.Equal(t, config.GetDefaultsContent(), out)
}

func TestStatusRejectsArgs(t *testing.T) {
	_, err := execute(t, "status", "extra")
	require.Error(t, err)
}

func TestLaunchDeadChildReportedOnce(t *testing.T) {
	binDir := t.TempDir()
	logDir := t.TempDir()
	confDir := t.TempDir()

	testutil.WriteScript(t, binDir, "flaky-0.1.AppImage", "exit 3\n")
	testutil.WriteConfig(t, confDir, fmt.Sprintf(`
[app]
name = "flaky-dead-child-test"
pattern = "flaky-*.AppImage"
alias = "flaky.latest"

[paths]
bin_dir = %q
log_dir = %q

[launch]
grace_period = "200ms"
`, binDir, logDir))

	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("APPLAUNCH_CONFIG_DIR", confDir)

	buf := new(bytes.Buffer)
	cmd := NewRootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"launch"})
	err := cmd.Execute()
	require.Error(t, err)

	// The failure shows up exactly once, as the command error.
	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "exited during startup"))
	assert.NotContains(t, out, "may have failed")
}

func TestLaunchSubcommandForwardsFlags(t *testing.T) {
	// The launch subcommand must not try to parse child flags itself.
	cmd := NewRootCmd()
	launchCmd, _, err := cmd.Find([]string{"launch"})
	require.NoError(t, err)
	assert.True(t, launchCmd.DisableFlagParsing)
}

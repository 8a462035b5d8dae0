package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/applaunch/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "applaunch.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "cursor", cfg.App.Name)
	assert.Equal(t, "cursor-*.AppImage", cfg.App.Pattern)
	assert.Equal(t, "cursor.latest", cfg.App.Alias)
	assert.Equal(t, int64(5*1024*1024), cfg.Logs.MaxSize)
	assert.Equal(t, 2*time.Second, cfg.Launch.GracePeriod)
	assert.Empty(t, cfg.Paths.BinDir)
	assert.Empty(t, cfg.Paths.LogDir)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "cursor", cfg.App.Name)
}

func TestLoadUserFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[app]
name = "zed"
pattern = "zed-*.AppImage"
alias = "zed.latest"

[paths]
bin_dir = "/opt/images"

[logs]
max_size = 1048576

[launch]
grace_period = "500ms"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "zed", cfg.App.Name)
	assert.Equal(t, "zed-*.AppImage", cfg.App.Pattern)
	assert.Equal(t, "zed.latest", cfg.App.Alias)
	assert.Equal(t, "/opt/images", cfg.Paths.BinDir)
	assert.Equal(t, int64(1048576), cfg.Logs.MaxSize)
	assert.Equal(t, 500*time.Millisecond, cfg.Launch.GracePeriod)
}

func TestLoadPartialFileKeepsOtherDefaults(t *testing.T) {
	path := writeConfig(t, `
[app]
name = "zed"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "zed", cfg.App.Name)
	// Untouched keys keep their built-in defaults.
	assert.Equal(t, "cursor-*.AppImage", cfg.App.Pattern)
	assert.Equal(t, int64(5*1024*1024), cfg.Logs.MaxSize)
}

func TestEnvOverridesBeatFile(t *testing.T) {
	path := writeConfig(t, `
[app]
name = "zed"
`)
	t.Setenv(EnvAppName, "helix")
	t.Setenv(EnvAppPattern, "helix-*.AppImage")
	t.Setenv(EnvAppAlias, "helix.latest")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "helix", cfg.App.Name)
	assert.Equal(t, "helix-*.AppImage", cfg.App.Pattern)
	assert.Equal(t, "helix.latest", cfg.App.Alias)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "not [valid toml")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "empty app name",
			content: `
[app]
name = ""
`,
		},
		{
			name: "zero max size",
			content: `
[logs]
max_size = 0
`,
		},
		{
			name: "garbage grace period",
			content: `
[launch]
grace_period = "soon"
`,
		},
		{
			name: "negative grace period",
			content: `
[launch]
grace_period = "-1s"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
		})
	}
}

func TestRenderRoundTrip(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[app]
name = "zed"

[logs]
max_size = 1048576

[launch]
grace_period = "750ms"
`))
	require.NoError(t, err)

	rendered, err := Render(cfg)
	require.NoError(t, err)

	assert.Contains(t, rendered, "max_size")
	assert.Contains(t, rendered, "grace_period = '750ms'")
	assert.NotContains(t, rendered, "GracePeriod")

	reloaded, err := Load(writeConfig(t, rendered))
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestGetDefaultsContent(t *testing.T) {
	content := GetDefaultsContent()
	assert.Contains(t, content, "[app]")
	assert.Contains(t, content, "max_size")
}

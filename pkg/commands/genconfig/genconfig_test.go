package genconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/applaunch/pkg/config"
)

func TestGenConfigPrintsDefaults(t *testing.T) {
	result, err := GenConfig(GenConfigOptions{
		ConfigFile: filepath.Join(t.TempDir(), "applaunch.toml"),
	})
	require.NoError(t, err)

	assert.Equal(t, config.GetDefaultsContent(), result.ConfigContent)
	assert.Empty(t, result.FileWritten)
}

func TestGenConfigWrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "conf", "applaunch.toml")

	result, err := GenConfig(GenConfigOptions{Write: true, ConfigFile: target})
	require.NoError(t, err)
	assert.Equal(t, target, result.FileWritten)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, config.GetDefaultsContent(), string(content))

	// The written file must load cleanly.
	_, err = config.Load(target)
	require.NoError(t, err)
}

func TestGenConfigWriteSkipsExisting(t *testing.T) {
	target := filepath.Join(t.TempDir(), "applaunch.toml")
	require.NoError(t, os.WriteFile(target, []byte("[app]\nname = \"mine\"\n"), 0644))

	result, err := GenConfig(GenConfigOptions{Write: true, ConfigFile: target})
	require.NoError(t, err)
	assert.Empty(t, result.FileWritten)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(content), "mine", "an existing config must never be overwritten")
}

func TestGenConfigEffective(t *testing.T) {
	target := filepath.Join(t.TempDir(), "applaunch.toml")
	require.NoError(t, os.WriteFile(target, []byte(`
[app]
name = "zed"

[paths]
bin_dir = "/opt/images"

[launch]
grace_period = "750ms"
`), 0644))

	result, err := GenConfig(GenConfigOptions{Effective: true, ConfigFile: target})
	require.NoError(t, err)

	// The rendered output uses the documented table and key names, with
	// the duration as a string rather than raw nanoseconds.
	assert.Contains(t, result.ConfigContent, "[app]")
	assert.Contains(t, result.ConfigContent, "bin_dir")
	assert.Contains(t, result.ConfigContent, "max_size")
	assert.Contains(t, result.ConfigContent, "grace_period")
	assert.Contains(t, result.ConfigContent, "750ms")
	assert.NotContains(t, result.ConfigContent, "[App]")
	assert.NotContains(t, result.ConfigContent, "GracePeriod")

	// Feeding the output back in as a config file must reproduce the
	// same resolved configuration.
	rendered := filepath.Join(t.TempDir(), "applaunch.toml")
	require.NoError(t, os.WriteFile(rendered, []byte(result.ConfigContent), 0644))

	original, err := config.Load(target)
	require.NoError(t, err)
	roundTripped, err := config.Load(rendered)
	require.NoError(t, err)
	assert.Equal(t, original, roundTripped)
}

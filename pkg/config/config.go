// Package config loads the applaunch configuration.
//
// Configuration is layered: embedded defaults, then the user file at
// $XDG_CONFIG_HOME/applaunch/applaunch.toml, then APPLAUNCH_* environment
// overrides. Later layers win.
package config

import (
	"os"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	tomlv2 "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/applaunch/pkg/errors"
)

// Environment variable overrides for the most commonly tweaked keys.
const (
	EnvAppName    = "APPLAUNCH_APP_NAME"
	EnvAppPattern = "APPLAUNCH_APP_PATTERN"
	EnvAppAlias   = "APPLAUNCH_APP_ALIAS"
)

// Config is the fully resolved applaunch configuration.
type Config struct {
	App    AppConfig
	Paths  PathsConfig
	Logs   LogsConfig
	Launch LaunchConfig
}

// AppConfig identifies the wrapped application.
type AppConfig struct {
	// Name of the application, used for process matching and log scoping.
	Name string

	// Pattern is the glob matched against bin directory entries to find
	// candidate executable images.
	Pattern string

	// Alias is the stable symlink name kept pointing at the newest image.
	Alias string
}

// PathsConfig optionally overrides the derived directories. Empty values
// mean "use the XDG defaults from pkg/paths".
type PathsConfig struct {
	BinDir string
	LogDir string
}

// LogsConfig bounds the managed log files.
type LogsConfig struct {
	// MaxSize is the rotation threshold in bytes.
	MaxSize int64
}

// LaunchConfig tunes the spawn step.
type LaunchConfig struct {
	// GracePeriod is how long to wait after spawning before checking the
	// child survived.
	GracePeriod time.Duration
}

// renderConfig mirrors the TOML layout for output, so a rendered config
// round-trips through Load: same table and key names as defaults.toml,
// durations as strings.
type renderConfig struct {
	App struct {
		Name    string `toml:"name"`
		Pattern string `toml:"pattern"`
		Alias   string `toml:"alias"`
	} `toml:"app"`
	Paths struct {
		BinDir string `toml:"bin_dir"`
		LogDir string `toml:"log_dir"`
	} `toml:"paths"`
	Logs struct {
		MaxSize int64 `toml:"max_size"`
	} `toml:"logs"`
	Launch struct {
		GracePeriod string `toml:"grace_period"`
	} `toml:"launch"`
}

// Render serializes a resolved configuration in the same layout as the
// defaults file, suitable for feeding back in as a config file.
func Render(cfg *Config) (string, error) {
	var out renderConfig
	out.App.Name = cfg.App.Name
	out.App.Pattern = cfg.App.Pattern
	out.App.Alias = cfg.App.Alias
	out.Paths.BinDir = cfg.Paths.BinDir
	out.Paths.LogDir = cfg.Paths.LogDir
	out.Logs.MaxSize = cfg.Logs.MaxSize
	out.Launch.GracePeriod = cfg.Launch.GracePeriod.String()

	rendered, err := tomlv2.Marshal(out)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(rendered), nil
}

// rawConfig mirrors the TOML layout before conversion.
type rawConfig struct {
	App struct {
		Name    string `koanf:"name"`
		Pattern string `koanf:"pattern"`
		Alias   string `koanf:"alias"`
	} `koanf:"app"`
	Paths struct {
		BinDir string `koanf:"bin_dir"`
		LogDir string `koanf:"log_dir"`
	} `koanf:"paths"`
	Logs struct {
		MaxSize int64 `koanf:"max_size"`
	} `koanf:"logs"`
	Launch struct {
		GracePeriod string `koanf:"grace_period"`
	} `koanf:"launch"`
}

// Load reads the layered configuration. configFile may name a file that
// does not exist; only a present-but-unreadable or malformed file is an
// error (CONFIG_LOAD / CONFIG_PARSE).
func Load(configFile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load built-in defaults")
	}

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", configFile)
			}
		}
	}

	var raw rawConfig
	if err := k.Unmarshal("", &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid configuration")
	}

	applyEnvOverrides(&raw)

	return fromRaw(raw)
}

// applyEnvOverrides lets a single invocation retarget the wrapper without
// touching the config file.
func applyEnvOverrides(raw *rawConfig) {
	if v := os.Getenv(EnvAppName); v != "" {
		raw.App.Name = v
	}
	if v := os.Getenv(EnvAppPattern); v != "" {
		raw.App.Pattern = v
	}
	if v := os.Getenv(EnvAppAlias); v != "" {
		raw.App.Alias = v
	}
}

func fromRaw(raw rawConfig) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:    raw.App.Name,
			Pattern: raw.App.Pattern,
			Alias:   raw.App.Alias,
		},
		Paths: PathsConfig{
			BinDir: raw.Paths.BinDir,
			LogDir: raw.Paths.LogDir,
		},
		Logs: LogsConfig{
			MaxSize: raw.Logs.MaxSize,
		},
	}

	if cfg.App.Name == "" || cfg.App.Pattern == "" || cfg.App.Alias == "" {
		return nil, errors.New(errors.ErrConfigParse, "app.name, app.pattern and app.alias must not be empty")
	}
	if cfg.Logs.MaxSize <= 0 {
		return nil, errors.Newf(errors.ErrConfigParse, "logs.max_size must be positive, got %d", cfg.Logs.MaxSize)
	}

	if raw.Launch.GracePeriod == "" {
		cfg.Launch.GracePeriod = 0
	} else {
		grace, err := time.ParseDuration(raw.Launch.GracePeriod)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid launch.grace_period %q", raw.Launch.GracePeriod)
		}
		if grace < 0 {
			return nil, errors.Newf(errors.ErrConfigParse, "launch.grace_period must not be negative, got %s", grace)
		}
		cfg.Launch.GracePeriod = grace
	}

	return cfg, nil
}

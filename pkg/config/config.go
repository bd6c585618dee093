// Package config loads spanline's tool configuration: built-in defaults,
// then /etc/spanline/spanline.toml, then the XDG user config, each layer
// overriding the previous one. Command-line flags override all of them.
package config

import (
	_ "embed"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/tdmtools/spanline/pkg/errors"
	"github.com/tdmtools/spanline/pkg/logging"
)

//go:embed defaults.toml
var defaultConfig []byte

// SystemConfigPath is the machine-wide configuration file
const SystemConfigPath = "/etc/spanline/spanline.toml"

// Config holds the tool configuration
type Config struct {
	// RulesFile is the span-types rule file applied by set and compare
	RulesFile string `koanf:"rules_file" toml:"rules_file"`

	// IdentifierKey is the identifier field dumpconfig prefers when
	// rendering a device: hwid, location or path
	IdentifierKey string `koanf:"identifier_key" toml:"identifier_key"`

	// DefaultLineMode forces the wildcard type dumpconfig generates;
	// empty derives it from the observed span types
	DefaultLineMode string `koanf:"default_line_mode" toml:"default_line_mode"`

	// SysfsRoot is the root of the driver's device attribute tree
	SysfsRoot string `koanf:"sysfs_root" toml:"sysfs_root"`

	// Color controls colored output: auto, always or never
	Color string `koanf:"color" toml:"color"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		RulesFile:     "/etc/spanline/span-types.conf",
		IdentifierKey: "hwid",
		SysfsRoot:     "/sys/bus/xbus/devices",
		Color:         "auto",
	}
}

// UserConfigPath returns the per-user configuration file location
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "spanline", "spanline.toml")
}

// Load builds the effective configuration from defaults and the config
// files that exist
func Load() (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	for _, path := range []string{SystemConfigPath, UserConfigPath()} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal config")
	}
	return &cfg, nil
}

// WriteDefault renders the default configuration as TOML
func WriteDefault(w io.Writer) error {
	data, err := gotoml.Marshal(Default())
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to marshal default config")
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to write default config")
	}
	return nil
}

// Package config loads tyname tool settings.
//
// Precedence, lowest to highest: defaults, the project tyname.toml found
// by walking up from the working directory, TYNAME_* environment
// variables (TYNAME_OUTPUT_FORMAT, TYNAME_GOLDEN_PATH, ...), and finally
// explicit flags bound by the CLI.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/tyname/errors"
	"github.com/teranos/tyname/render"
)

// FileName is the project configuration file searched for by Load.
const FileName = "tyname.toml"

// EnvPrefix prefixes every environment override, e.g. TYNAME_GOLDEN_PATH.
const EnvPrefix = "TYNAME"

// Config holds all tool settings.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Golden GoldenConfig `mapstructure:"golden"`
	Log    LogConfig    `mapstructure:"log"`
}

// OutputConfig controls how names are printed.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// GoldenConfig locates the golden file.
type GoldenConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig controls diagnostics on stderr.
type LogConfig struct {
	JSON      bool `mapstructure:"json"`
	Verbosity int  `mapstructure:"verbosity"`
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output.format", render.FormatText)
	v.SetDefault("golden.path", filepath.Join("testdata", "names.golden.toml"))
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}

// NewViper returns a Viper instance with defaults and environment binding.
// It does not read any file.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Open returns a Viper instance holding defaults, environment bindings
// and the config file at path. An empty path means the project tyname.toml
// found from the working directory, if there is one.
func Open(path string) (*viper.Viper, error) {
	v := NewViper()

	if path == "" {
		dir, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get working directory")
		}
		path = FindProjectConfig(dir)
		if path == "" {
			return v, nil
		}
	}

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}
	return v, nil
}

// Load opens the configuration at path and unmarshals it, see Open
func Load(path string) (*Config, error) {
	v, err := Open(path)
	if err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

// LoadWithViper unmarshals and validates the configuration held by v
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	cfg.resolvePaths(v.ConfigFileUsed())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolvePaths makes a relative golden.path relative to the directory of
// the config file, so the tool finds the same golden file from any
// subdirectory. Paths from the environment stay relative to the working
// directory. Flag values are restored by the CLI.
func (c *Config) resolvePaths(configFile string) {
	if configFile == "" || c.Golden.Path == "" || filepath.IsAbs(c.Golden.Path) {
		return
	}
	if _, ok := os.LookupEnv(EnvPrefix + "_GOLDEN_PATH"); ok {
		return
	}
	c.Golden.Path = filepath.Join(filepath.Dir(configFile), c.Golden.Path)
}

// Validate rejects settings the tool cannot act on.
func (c *Config) Validate() error {
	if !render.IsFormat(c.Output.Format) {
		err := errors.NewInvalidRequestError("output.format %q", c.Output.Format)
		return errors.WithHintf(err, "use one of: %s", strings.Join(render.Formats(), ", "))
	}
	if c.Golden.Path == "" {
		return errors.NewInvalidRequestError("golden.path is empty")
	}
	if c.Log.Verbosity < 0 {
		return errors.NewInvalidRequestError("log.verbosity %d is negative", c.Log.Verbosity)
	}
	return nil
}

// FindProjectConfig walks up from dir looking for tyname.toml.
// Returns the path to the first file found, or "" if there is none.
func FindProjectConfig(dir string) string {
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/tyname/errors"
)

func TestLoadWithViperDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, filepath.Join("testdata", "names.golden.toml"), cfg.Golden.Path)
	assert.False(t, cfg.Log.JSON)
	assert.Equal(t, 0, cfg.Log.Verbosity)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `
[output]
format = "yaml"

[golden]
path = "names.toml"

[log]
json = true
verbosity = 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "names.toml"), cfg.Golden.Path)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, 2, cfg.Log.Verbosity)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("[output]\nformat = \"yaml\"\n"), 0o644))
	t.Setenv("TYNAME_OUTPUT_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadFromMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate(t *testing.T) {
	valid := Config{
		Output: OutputConfig{Format: "json"},
		Golden: GoldenConfig{Path: "names.toml"},
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "unknown format", mutate: func(c *Config) { c.Output.Format = "xml" }, wantErr: true},
		{name: "empty golden path", mutate: func(c *Config) { c.Golden.Path = "" }, wantErr: true},
		{name: "negative verbosity", mutate: func(c *Config) { c.Log.Verbosity = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsInvalidRequestError(err))
		})
	}
}

func TestFindProjectConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	assert.Equal(t, "", FindProjectConfig(nested))

	path := filepath.Join(root, "a", FileName)
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))
	assert.Equal(t, path, FindProjectConfig(nested))
	assert.Equal(t, path, FindProjectConfig(filepath.Join(root, "a")))
}

func TestOpenWithoutProjectConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	v, err := Open("")
	require.NoError(t, err)
	assert.Equal(t, "", v.ConfigFileUsed())
	assert.Equal(t, "text", v.GetString("output.format"))
}

func TestOpenFindsProjectConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "pkg")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("[output]\nformat = \"plain\"\n"), 0o644))
	t.Chdir(nested)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "plain", cfg.Output.Format)
}

func TestGoldenPathRelativeToProjectConfig(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	nested := filepath.Join(root, "pkg", "sub")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("[output]\nformat = \"plain\"\n"), 0o644))
	t.Chdir(nested)

	tests := []struct {
		name string
		env  string
		want string
	}{
		{name: "default", want: filepath.Join(root, "testdata", "names.golden.toml")},
		{name: "env stays relative to working directory", env: "local.toml", want: "local.toml"},
		{name: "absolute env", env: filepath.Join(root, "abs.toml"), want: filepath.Join(root, "abs.toml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv("TYNAME_GOLDEN_PATH", tt.env)
			}
			cfg, err := Load("")
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Golden.Path)
		})
	}
}

func TestGoldenPathWithoutConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("testdata", "names.golden.toml"), cfg.Golden.Path)
}

package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/tyname/catalog"
	"github.com/teranos/tyname/errors"
)

// run executes the command tree in an empty working directory so no
// project tyname.toml is picked up.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return runIn(t, t.TempDir(), args...)
}

func runIn(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(dir)

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNameCommand(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"Vec[U8]", "Vec<u8>\n"},
		{"Result[I32, String]", "Result<i32, String>\n"},
		{"Fn0[Unit]", "fn() -> ()\n"},
		{"Tuple5[I8, I16, I32, I64, I128]", "(i8, i16, i32, i64, i128)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			out, _, err := run(t, "name", tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestNameCommandUnknownKey(t *testing.T) {
	_, _, err := run(t, "name", "Nope")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListCommandJSON(t *testing.T) {
	out, _, err := run(t, "list", "--format", "json", "--prefix", "Result")
	require.NoError(t, err)

	var entries []catalog.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Equal(t, []catalog.Entry{
		{Key: "Result[I32, String]", Name: "Result<i32, String>"},
		{Key: "Result[Unit, Unit]", Name: "Result<(), ()>"},
	}, entries)
}

func TestListCommandFormatFromEnv(t *testing.T) {
	t.Setenv("TYNAME_OUTPUT_FORMAT", "plain")

	out, _, err := run(t, "list", "--prefix", "Vec[")
	require.NoError(t, err)
	assert.Equal(t, "Vec[U8]\tVec<u8>\n", out)
}

func TestListCommandRejectsUnknownFormat(t *testing.T) {
	_, _, err := run(t, "list", "--format", "xml")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidRequestError(err))
}

func TestListCommandVerboseLogs(t *testing.T) {
	_, stderr, err := run(t, "list", "-v", "--json-log", "--format", "plain")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"listing type names"`)
}

func TestUpdateThenCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "golden", "names.toml")

	out, _, err := run(t, "update", "--golden", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 42 names")

	out, _, err = run(t, "check", "--golden", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Type names match")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	stale := bytes.Replace(data, []byte(`"fn() -> ()"`), []byte(`"fn()"`), 1)
	require.NoError(t, os.WriteFile(path, stale, 0o644))

	out, _, err = run(t, "check", "--golden", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrGoldenMismatch))
	assert.Contains(t, out, `~ Fn0[Unit] = "fn() -> ()", want "fn()"`)
}

func TestCheckMissingGoldenFile(t *testing.T) {
	_, _, err := run(t, "check", "--golden", filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[output]\nformat = \"plain\"\n"), 0o644))

	out, _, err := run(t, "--config", cfgPath, "list", "--prefix", "Unit")
	require.NoError(t, err)
	assert.Equal(t, "Unit\t()\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tyname dev")

	out, _, err = run(t, "version", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"version": "dev"`)

	out, _, err = run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestConfigLoadedLogLine(t *testing.T) {
	_, stderr, err := run(t, "list", "-vv", "--json-log", "--format", "plain")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"logger":"cli"`)
	assert.Contains(t, stderr, `"command":"list"`)
	assert.Contains(t, stderr, `"verbosity":"Debug (-vv)"`)
}

func TestCheckFromSubdirectoryUsesProjectGolden(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "tyname.toml"), []byte("[golden]\npath = \"names.toml\"\n"), 0o644))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	_, _, err := runIn(t, root, "update")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "names.toml"))

	out, _, err := runIn(t, nested, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Type names match")

	_, _, err = runIn(t, nested, "update", "--golden", "local.toml")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(nested, "local.toml"))
}

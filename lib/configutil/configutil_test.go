package configutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name  string   `json:"name"`
	Token string   `json:"token"`
	Items []string `json:"items"`
}

type validatedConfig struct {
	Name string `json:"name"`
}

func (c validatedConfig) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func writeFile(t testing.TB, path, contents string) {
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		t.Fatal(err)
	}
}

func TestLocalPath(t *testing.T) {
	require.Equal(t, "config/auth.local.json5", LocalPath("config/auth.json5"))
	require.Equal(t, "auth.local.json", LocalPath("auth.json"))
	require.Equal(t, "auth.local", LocalPath("auth"))
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")
	writeFile(t, path, `{
		// comments and trailing commas are json5
		name: "default",
		token: "abc",
		items: ["a", "b"],
	}`)

	cfg, err := ReadConfig[testConfig](path)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, testConfig{Name: "default", Token: "abc", Items: []string{"a", "b"}}, cfg)
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")
	writeFile(t, path, `{"name": "default", "token": "abc"}`)
	writeFile(t, filepath.Join(dir, "config.local.json5"), `{"token": "secret"}`)

	cfg, err := ReadConfig[testConfig](path)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "default", cfg.Name)
	require.Equal(t, "secret", cfg.Token)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "nope.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json5")
	writeFile(t, path, `{"name": `)

	_, err := ReadConfig[testConfig](path)
	require.Error(t, err)
	require.NotErrorIs(t, err, os.ErrNotExist)
}

func TestReadConfigValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json5")
	writeFile(t, path, `{"name": ""}`)

	_, err := ReadConfig[validatedConfig](path)
	require.ErrorContains(t, err, "name is required")

	writeFile(t, path, `{"name": "ok"}`)
	cfg, err := ReadConfig[validatedConfig](path)
	require.NoError(t, err)
	require.Equal(t, "ok", cfg.Name)
}

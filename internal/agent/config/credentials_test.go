package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/agent/config"
)

func TestLoad_MissingFile_ReturnsEmpty(t *testing.T) {
	c, err := config.Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	require.NotNil(t, c)
	require.False(t, c.SignedIn())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")

	require.NoError(t, config.Save(path, &config.Credentials{Token: "tok", Email: "a@b.ru"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	c, err := config.Load(path)
	require.NoError(t, err)
	require.True(t, c.SignedIn())
	require.Equal(t, "tok", c.Token)
	require.Equal(t, "a@b.ru", c.Email)
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, config.Save(path, &config.Credentials{Token: "tok"}))

	require.NoError(t, config.Remove(path))
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))

	// повторное удаление не ошибка
	require.NoError(t, config.Remove(path))
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p, err := config.DefaultPath()
	require.NoError(t, err)
	require.Equal(t, "credentials.json", filepath.Base(p))
	require.Equal(t, ".mesto", filepath.Base(filepath.Dir(p)))
}

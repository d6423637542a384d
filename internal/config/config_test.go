package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "config"))
	require.NoError(t, err)
	require.Empty(t, cfg.User.Name)
	require.NotNil(t, cfg.Remotes)
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config")

	cfg := &Config{
		User:    User{Name: "Ada", Email: "ada@example.com"},
		Remotes: map[string]string{"origin": "file:///tmp/other/.kit"},
	}
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestAuthor(t *testing.T) {
	t.Parallel()

	empty := &Config{}
	require.Equal(t, "", empty.Author())

	cfg := &Config{User: User{Name: "Ada", Email: "ada@example.com"}}
	require.Equal(t, "Ada <ada@example.com>", cfg.Author())
}

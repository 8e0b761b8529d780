package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "bufpool.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_ParsesAllFields(t *testing.T) {
	path := writeConfig(t, `
buffer_pool:
  capacity: 128
  policy: MRU
  page_size: 8192
pagestore:
  path: /tmp/novasql/pages.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 128, cfg.BufferPool.Capacity)
	require.Equal(t, "MRU", cfg.BufferPool.Policy)
	require.Equal(t, 8192, cfg.BufferPool.PageSize)
	require.Equal(t, "/tmp/novasql/pages.db", cfg.PageStore.Path)
}

func TestLoad_DefaultsAppliedForMissingKeys(t *testing.T) {
	path := writeConfig(t, `buffer_pool:
  capacity: 16
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 16, cfg.BufferPool.Capacity)
	require.Equal(t, "LRU", cfg.BufferPool.Policy)
	require.Equal(t, 8192, cfg.BufferPool.PageSize)
	require.Equal(t, "./data/pages.db", cfg.PageStore.Path)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

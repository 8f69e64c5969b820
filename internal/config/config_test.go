package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ROWTALLY_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "", cfg.Store.Path)
	require.Equal(t, "measurements.csv", cfg.Export.Path)
	require.Equal(t, 40, cfg.UI.MaxCellWidth)
	require.Equal(t, 6, cfg.UI.MaxCellHeight)
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "[store]\npath = \"/tmp/rowtally.db\"\n\n[export]\npath = \"out.csv\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("ROWTALLY_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/rowtally.db", cfg.Store.Path)
	require.Equal(t, "out.csv", cfg.Export.Path)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("ROWTALLY_CONFIG", path)

	want := Config{
		Store:  StoreConfig{Path: "/data/measures.db"},
		Export: ExportConfig{Path: "measures.csv"},
		UI:     UIConfig{MaxCellWidth: 60, MaxCellHeight: 10},
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want.Store.Path, got.Store.Path)
	require.Equal(t, want.Export.Path, got.Export.Path)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "zh-TW", c.Language)
	assert.Equal(t, "standard", c.DetailLevel)
	assert.Equal(t, "xlsx", c.OutputFormat)
	assert.Equal(t, 10, c.MaxSearchResults)
	assert.Zero(t, c.HistoryLimit)
	assert.NotEmpty(t, c.WorkingDirectory)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	want := &Global{
		Language:         "zh-TW",
		DetailLevel:      "detailed",
		ChartStyle:       "minimal",
		OutputFormat:     "csv",
		WorkingDirectory: "/data",
		MaxSearchResults: 25,
		HistoryLimit:     50,
	}
	require.NoError(t, Save(want, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TABLECHAT_DETAIL_LEVEL", "brief")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, Save(&Global{DetailLevel: "detailed", WorkingDirectory: "/data"}, path))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "brief", c.DetailLevel)
}

func TestSaveCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested.yaml")
	require.NoError(t, Save(&Global{Language: "zh-TW"}, path))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

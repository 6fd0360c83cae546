package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Len(t, cfg.Colors, 6)

	_, err = os.Stat(path)
	assert.NoError(t, err, "default config should be written")
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("db_path: /tmp/cubes.db\nlog_level: debug\nhistory_limit: 50\ncolors:\n  W: \"15\"\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cubes.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 50, cfg.HistoryLimit)
	assert.Equal(t, "15", cfg.Colors["W"])

	dbPath, err := cfg.ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cubes.db", dbPath)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"negative limit": "history_limit: -1\n",
		"bad level":      "log_level: loud\n",
		"bad color key":  "colors:\n  P: \"5\"\n",
		"bad yaml":       "colors: [unclosed\n",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

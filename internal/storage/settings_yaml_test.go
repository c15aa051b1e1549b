package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"stopwatch/internal/ui/preferences"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettingsFile(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveThenLoad(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", settingsFileName)
	settings := preferences.Settings{
		TickInterval: 25 * time.Millisecond,
		WindowWidth:  400,
		WindowHeight: 600,
		TrayEnabled:  false,
	}

	require.NoError(t, SaveSettingsFile(configPath, settings))
	loaded, err := LoadSettingsFile(configPath)

	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestLoadKeepsDefaultsForInvalidValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("tick_interval_ms: -5\nwindow_width: 500\n"), 0o644))

	settings, err := LoadSettingsFile(configPath)

	require.NoError(t, err)
	defaults := preferences.DefaultSettings()
	assert.Equal(t, defaults.TickInterval, settings.TickInterval)
	assert.Equal(t, float32(500), settings.WindowWidth)
	assert.Equal(t, defaults.WindowHeight, settings.WindowHeight)
	assert.Equal(t, defaults.TrayEnabled, settings.TrayEnabled)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("tick_interval_ms: [unclosed\n"), 0o644))

	settings, err := LoadSettingsFile(configPath)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse settings yaml")
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

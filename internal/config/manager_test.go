package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs", "config.yaml")
	m := NewManager(path)

	require.NoError(t, m.Load())
	require.NotNil(t, m.Get())
	assert.False(t, m.Get().LaunchAtLogin)

	_, err := os.Stat(path)
	assert.NoError(t, err, "defaults are written back on first load")
}

func TestLaunchAtLoginPersistsAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	m := NewManager(path)
	require.NoError(t, m.Load())
	require.NoError(t, m.SetLaunchAtLogin(true))

	// Fresh manager simulates a process restart.
	m2 := NewManager(path)
	require.NoError(t, m2.Load())
	assert.True(t, m2.Get().LaunchAtLogin)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{invalid"), 0600))

	m := NewManager(path)
	assert.Error(t, m.Load())
}

//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearDatabaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvDevDatabaseURL, "")
	t.Setenv(EnvProdDatabaseURL, "")
	t.Setenv(EnvDatabaseURL, "")
	t.Setenv(EnvLogLevel, "")
	for _, key := range []string{EnvDevDatabaseURL, EnvProdDatabaseURL, EnvDatabaseURL, EnvLogLevel} {
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadSettingsFromEnvironment(t *testing.T) {
	clearDatabaseEnv(t)
	t.Setenv(EnvDevDatabaseURL, "postgres://dev@localhost:5432/app")
	t.Setenv(EnvProdDatabaseURL, "postgres://prod@db.example.com:5432/app")
	t.Setenv(EnvLogLevel, LogLevelDebug)

	settings, err := LoadSettings()
	require.NoError(t, err)

	require.NotNil(t, settings.Dev)
	assert.Equal(t, "postgres://dev@localhost:5432/app", settings.Dev.DSN)
	assert.Equal(t, PostgresDbType, settings.Dev.Type)

	require.NotNil(t, settings.Prod)
	assert.Equal(t, "postgres://prod@db.example.com:5432/app", settings.Prod.DSN)

	assert.Equal(t, LogLevelDebug, settings.Logger.LogLevel)
	assert.Equal(t, LogTypeConsole, settings.Logger.LogType)
}

func TestLoadSettingsDatabaseURLFallback(t *testing.T) {
	clearDatabaseEnv(t)
	t.Setenv(EnvDatabaseURL, "postgres://fallback@localhost:5432/app")

	settings, err := LoadSettings()
	require.NoError(t, err)

	require.NotNil(t, settings.Dev)
	assert.Equal(t, "postgres://fallback@localhost:5432/app", settings.Dev.DSN)
	assert.Nil(t, settings.Prod)
}

func TestLoadSettingsFromDotenvFile(t *testing.T) {
	clearDatabaseEnv(t)

	envFile := filepath.Join(t.TempDir(), ".env.local")
	content := "DEV_DATABASE_URL=postgres://file@localhost:5432/app\nLOG_LEVEL=warning\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0600))

	settings, err := LoadSettings(envFile)
	require.NoError(t, err)

	require.NotNil(t, settings.Dev)
	assert.Equal(t, "postgres://file@localhost:5432/app", settings.Dev.DSN)
	assert.Equal(t, LogLevelWarning, settings.Logger.LogLevel)
}

func TestLoadSettingsMissingDotenvIsNotFatal(t *testing.T) {
	clearDatabaseEnv(t)

	settings, err := LoadSettings("/nonexistent/.env")
	require.NoError(t, err)

	assert.Nil(t, settings.Dev)
	assert.Nil(t, settings.Prod)
	assert.Equal(t, LogLevelInfo, settings.Logger.LogLevel)
}

func TestTargetSettings(t *testing.T) {
	dev := &DatabaseSettings{Type: PostgresDbType, DSN: "postgres://dev@localhost/app"}
	settings := &Settings{Dev: dev}

	t.Run("configured target", func(t *testing.T) {
		got, err := settings.TargetSettings(TargetDev)
		require.NoError(t, err)
		assert.Same(t, dev, got)
	})

	t.Run("unconfigured target names the env var", func(t *testing.T) {
		_, err := settings.TargetSettings(TargetProd)
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvProdDatabaseURL)
	})

	t.Run("unknown target", func(t *testing.T) {
		_, err := settings.TargetSettings("staging")
		assert.Error(t, err)
	})
}

func TestResolveTargets(t *testing.T) {
	tests := []struct {
		target   string
		expected []string
		wantErr  bool
	}{
		{target: TargetDev, expected: []string{TargetDev}},
		{target: TargetProd, expected: []string{TargetProd}},
		{target: TargetAll, expected: []string{TargetDev, TargetProd}},
		{target: "staging", wantErr: true},
		{target: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			got, err := ResolveTargets(tt.target)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

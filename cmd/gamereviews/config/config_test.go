package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	require.Equal(t, 4000, Port())
	require.Equal(t, "", Fixtures())
	require.True(t, PlaygroundEnabled())
	require.Equal(t, 10*time.Second, HTTPReadTimeout())
	require.Equal(t, 10*time.Second, HTTPWriteTimeout())
	require.Equal(t, 30*time.Second, ShutdownTimeout())
	require.Equal(t, []string{"*"}, AllowedOrigins())
}

func TestEnvOverrides(t *testing.T) {
	env := map[string]string{
		"GAMEREVIEWS_PORT":                 "8081",
		"GAMEREVIEWS_FIXTURES":             "/tmp/fixtures.yaml",
		"GAMEREVIEWS_PLAYGROUND_ENABLED":   "false",
		"GAMEREVIEWS_HTTP_READ_TIMEOUT":    "2s",
		"GAMEREVIEWS_SHUTDOWN_TIMEOUT":     "1m",
		"GAMEREVIEWS_CORS_ALLOWED_ORIGINS": "https://a.example https://b.example",
	}
	for k, v := range env {
		require.NoError(t, os.Setenv(k, v))
	}
	t.Cleanup(func() {
		for k := range env {
			_ = os.Unsetenv(k)
		}
	})

	c := newConfig()
	require.Equal(t, 8081, c.viper.GetInt(keyPort))
	require.Equal(t, "/tmp/fixtures.yaml", c.viper.GetString(keyFixtures))
	require.False(t, c.viper.GetBool(keyPlaygroundEnabled))
	require.Equal(t, 2*time.Second, c.viper.GetDuration(keyHTTPReadTimeout))
	require.Equal(t, 10*time.Second, c.viper.GetDuration(keyHTTPWriteTimeout))
	require.Equal(t, time.Minute, c.viper.GetDuration(keyShutdownTimeout))
	require.Equal(t, []string{"https://a.example", "https://b.example"}, c.viper.GetStringSlice(keyAllowedOrigins))
}

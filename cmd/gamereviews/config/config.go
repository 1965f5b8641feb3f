package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix            = "GAMEREVIEWS"
	keyPort              = "PORT"
	keyFixtures          = "FIXTURES"
	keyPlaygroundEnabled = "PLAYGROUND_ENABLED"
	keyHTTPReadTimeout   = "HTTP_READ_TIMEOUT"
	keyHTTPWriteTimeout  = "HTTP_WRITE_TIMEOUT"
	keyShutdownTimeout   = "SHUTDOWN_TIMEOUT"
	keyAllowedOrigins    = "CORS_ALLOWED_ORIGINS"
)

var global *config

func init() {
	global = newConfig()
}

func newConfig() *config {
	c := &config{
		viper: viper.New(),
	}
	c.viper.SetEnvPrefix(envPrefix)
	c.viper.AutomaticEnv()
	c.loadDefaults()
	return c
}

type config struct {
	viper *viper.Viper
}

func (c *config) loadDefaults() {
	c.viper.SetDefault(keyPort, 4000)
	c.viper.SetDefault(keyFixtures, "")
	c.viper.SetDefault(keyPlaygroundEnabled, true)
	c.viper.SetDefault(keyHTTPReadTimeout, 10*time.Second)
	c.viper.SetDefault(keyHTTPWriteTimeout, 10*time.Second)
	c.viper.SetDefault(keyShutdownTimeout, 30*time.Second)
	c.viper.SetDefault(keyAllowedOrigins, []string{"*"})
}

// Port is the port the GraphQL API listens on.
func Port() int {
	return global.viper.GetInt(keyPort)
}

// Fixtures is the path of a YAML fixtures file. When empty, the embedded
// fixtures are used.
func Fixtures() string {
	return global.viper.GetString(keyFixtures)
}

func PlaygroundEnabled() bool {
	return global.viper.GetBool(keyPlaygroundEnabled)
}

func HTTPReadTimeout() time.Duration {
	return global.viper.GetDuration(keyHTTPReadTimeout)
}

func HTTPWriteTimeout() time.Duration {
	return global.viper.GetDuration(keyHTTPWriteTimeout)
}

// ShutdownTimeout bounds how long in-flight requests are waited on during
// shutdown.
func ShutdownTimeout() time.Duration {
	return global.viper.GetDuration(keyShutdownTimeout)
}

// AllowedOrigins are the origins permitted to make cross-origin requests. The
// environment variable holds a space separated list.
func AllowedOrigins() []string {
	return global.viper.GetStringSlice(keyAllowedOrigins)
}

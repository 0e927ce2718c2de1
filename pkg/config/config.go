// Package config loads and validates engine configuration from
// triggerflow.yaml merged over built-in defaults, with environment variable
// expansion. Database settings are environment-only (see pkg/database).
package config

// Config is the fully resolved engine configuration.
type Config struct {
	configDir string

	Server     *ServerConfig
	Dispatcher *DispatcherConfig
	Poller     *PollerConfig
	Scheduler  *SchedulerConfig
	Executor   *ExecutorConfig
	Registry   *RegistryConfig
	Webhooks   *WebhookConfig
	OAuth      map[string]OAuthProviderConfig
}

// ConfigDir returns the directory configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	// Addr is the listen address of the HTTP API.
	Addr string `yaml:"addr"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr: ":8080",
	}
}

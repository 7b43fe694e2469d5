// Package config loads and resolves storebuilder configuration.
package config

// Config is the root configuration for storebuilder.
type Config struct {
	Gateway GatewayConfig `yaml:"gateway,omitempty"`
	Store   StoreConfig   `yaml:"store,omitempty"`
	Enrich  EnrichConfig  `yaml:"enrich,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// GatewayConfig controls the HTTP/WebSocket server.
type GatewayConfig struct {
	Port int    `yaml:"port,omitempty"`
	Bind string `yaml:"bind,omitempty"` // "loopback" | "lan"
}

// StoreConfig controls agent persistence.
type StoreConfig struct {
	Driver string `yaml:"driver,omitempty"` // "sqlite" | "memory"
	Path   string `yaml:"path,omitempty"`   // sqlite file; defaults to ~/.storebuilder/agents.db
}

// EnrichConfig controls optional LLM reply decoration. Credentials may be
// written as ${ENV_VAR} references.
type EnrichConfig struct {
	Enabled   bool   `yaml:"enabled,omitempty"`
	APIKey    string `yaml:"apiKey,omitempty"`
	BaseURL   string `yaml:"baseUrl,omitempty"`
	Model     string `yaml:"model,omitempty"`
	TimeoutMS int    `yaml:"timeoutMs,omitempty"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // "silent" | "error" | "warn" | "info" | "debug" | "trace"
	Style string `yaml:"style,omitempty"` // "pretty" | "json"
}

// ConfigError reports a configuration problem in a user-facing way.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Defaults returns the built-in configuration used when no file exists.
func Defaults() Config {
	return Config{
		Gateway: GatewayConfig{
			Port: 18931,
			Bind: "loopback",
		},
		Store: StoreConfig{
			Driver: "sqlite",
		},
		Enrich: EnrichConfig{
			Model:     "gpt-4o-mini",
			TimeoutMS: 4000,
		},
		Logging: LoggingConfig{
			Level: "info",
			Style: "pretty",
		},
	}
}

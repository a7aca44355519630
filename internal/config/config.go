// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Convert ConvertConfig
	Server  ServerConfig
	Logging LoggingConfig
}

// ConvertConfig holds conversion settings. CLI flags override these.
type ConvertConfig struct {
	// Input is the default input file (default: pokedex.csv)
	Input string `env:"DEXCONV_INPUT" default:"pokedex.csv"`

	// Output is the default output file (default: pokedex.js)
	Output string `env:"DEXCONV_OUTPUT" default:"pokedex.js"`

	// ExportName is the name assigned in the output module (default: BattlePokedex)
	ExportName string `env:"DEXCONV_EXPORT_NAME" default:"BattlePokedex"`

	// Standalone selects the extended schema and complete records (default: false)
	Standalone bool `env:"DEXCONV_STANDALONE" default:"false"`

	// Duplicates is the duplicate species policy: overwrite or reject (default: overwrite)
	Duplicates string `env:"DEXCONV_DUPLICATES" default:"overwrite"`

	// AliasFile is an optional YAML file of extra aliases
	AliasFile string `env:"DEXCONV_ALIAS_FILE"`

	// MaxFileSize is the maximum input size in bytes, "32MB" style suffixes allowed (default: 32MB)
	MaxFileSize int64 `env:"DEXCONV_MAX_FILE_SIZE" default:"32MB"`
}

// ServerConfig holds HTTP server settings for serve mode.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" envAlt:"PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`

	// MaxConcurrent is the maximum number of conversions running at once (default: 4)
	MaxConcurrent int `env:"SERVER_MAX_CONCURRENT" default:"4"`

	// MaxWait is how long a request waits for a conversion slot (default: 10s)
	MaxWait time.Duration `env:"SERVER_MAX_WAIT" default:"10s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

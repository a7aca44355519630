package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable the loader reads so host settings can't leak
// into a test. t.Setenv restores the original values on cleanup.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"DEXCONV_INPUT", "DEXCONV_OUTPUT", "DEXCONV_EXPORT_NAME", "DEXCONV_STANDALONE",
		"DEXCONV_DUPLICATES", "DEXCONV_ALIAS_FILE", "DEXCONV_MAX_FILE_SIZE",
		"SERVER_HOST", "SERVER_PORT", "PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
		"SERVER_IDLE_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT", "SERVER_REQUEST_TIMEOUT",
		"SERVER_MAX_CONCURRENT", "SERVER_MAX_WAIT",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "pokedex.csv", cfg.Convert.Input)
	assert.Equal(t, "pokedex.js", cfg.Convert.Output)
	assert.Equal(t, "BattlePokedex", cfg.Convert.ExportName)
	assert.False(t, cfg.Convert.Standalone)
	assert.Equal(t, "overwrite", cfg.Convert.Duplicates)
	assert.Empty(t, cfg.Convert.AliasFile)
	assert.Equal(t, int64(33554432), cfg.Convert.MaxFileSize)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 4, cfg.Server.MaxConcurrent)
	assert.Equal(t, 10*time.Second, cfg.Server.MaxWait)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_OverrideDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEXCONV_STANDALONE", "true")
	t.Setenv("DEXCONV_DUPLICATES", "reject")
	t.Setenv("DEXCONV_EXPORT_NAME", "Pokedex")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Convert.Standalone)
	assert.Equal(t, "reject", cfg.Convert.Duplicates)
	assert.Equal(t, "Pokedex", cfg.Convert.ExportName)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_AltEnvVar(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestLoad_Duration(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_READ_TIMEOUT", "45s")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "2m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 45*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Server.ShutdownTimeout)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		value   string
		wantErr string
	}{
		{"bad bool", "DEXCONV_STANDALONE", "sometimes", "DEXCONV_STANDALONE"},
		{"bad int", "DEXCONV_MAX_FILE_SIZE", "big", "DEXCONV_MAX_FILE_SIZE"},
		{"bad duration", "SERVER_READ_TIMEOUT", "soon", "SERVER_READ_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.env, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_ReportsEveryBadValue(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEXCONV_STANDALONE", "sometimes")
	t.Setenv("SERVER_PORT", "eighty")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEXCONV_STANDALONE")
	assert.Contains(t, err.Error(), "SERVER_PORT")
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1024", 1024, false},
		{"32MB", 32 << 20, false},
		{"512 kb", 512 << 10, false},
		{"2GB", 2 << 30, false},
		{"10B", 10, false},
		{"big", 0, true},
		{"MB", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSize(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadFiles_DotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), ".env")
	content := "DEXCONV_INPUT=dex.csv\nLOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Cleanup(func() { os.Unsetenv("DEXCONV_INPUT") })

	cfg, err := LoadFiles(path)
	require.NoError(t, err)

	assert.Equal(t, "dex.csv", cfg.Convert.Input)
	// The environment wins over the file.
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadFiles_MissingFileIgnored(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFiles(filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)
	assert.Equal(t, "pokedex.csv", cfg.Convert.Input)
}

func validConfig() *Config {
	return &Config{
		Convert: ConvertConfig{ExportName: "BattlePokedex", Duplicates: "overwrite", MaxFileSize: 1024},
		Server:  ServerConfig{Port: 8080, ShutdownTimeout: time.Second, RequestTimeout: time.Second, MaxConcurrent: 4, MaxWait: time.Second},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"invalid port", func(c *Config) { c.Server.Port = 70000 }, "SERVER_PORT"},
		{"zero port", func(c *Config) { c.Server.Port = 0 }, "SERVER_PORT"},
		{"invalid policy", func(c *Config) { c.Convert.Duplicates = "merge" }, "DEXCONV_DUPLICATES"},
		{"policy case insensitive", func(c *Config) { c.Convert.Duplicates = "Reject" }, ""},
		{"empty export", func(c *Config) { c.Convert.ExportName = "" }, "DEXCONV_EXPORT_NAME"},
		{"negative size", func(c *Config) { c.Convert.MaxFileSize = -1 }, "DEXCONV_MAX_FILE_SIZE"},
		{"invalid log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"invalid log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"zero shutdown", func(c *Config) { c.Server.ShutdownTimeout = 0 }, "SERVER_SHUTDOWN_TIMEOUT"},
		{"zero concurrency", func(c *Config) { c.Server.MaxConcurrent = 0 }, "SERVER_MAX_CONCURRENT"},
		{"zero max wait", func(c *Config) { c.Server.MaxWait = 0 }, "SERVER_MAX_WAIT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_CollectsAllFailures(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = -1
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVER_PORT")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"localhost", 3000, "localhost:3000"},
		{"", 80, ":80"},
	}

	for _, tt := range tests {
		cfg := ServerConfig{Host: tt.host, Port: tt.port}
		assert.Equal(t, tt.want, cfg.Addr())
	}
}

func TestConfigString(t *testing.T) {
	cfg := validConfig()
	cfg.Convert.Input = "dex.csv"

	s := cfg.String()
	assert.Contains(t, s, `Input: "dex.csv"`)
	assert.Contains(t, s, `Duplicates: "overwrite"`)
	assert.Contains(t, s, "Port: 8080")
}

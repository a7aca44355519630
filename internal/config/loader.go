package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables.
// It applies defaults for unset values and validates the result.
// Returns an error if required values are missing or validation fails.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := loadStruct(reflect.ValueOf(cfg).Elem()); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// LoadFiles overlays the given .env files (default: ".env") onto the
// environment with godotenv, then calls Load. Variables already set in the
// environment win over file values; missing files are ignored.
func LoadFiles(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("config load %s: %w", f, err)
		}
	}
	return Load()
}

// envTag is the parsed tag set of one config field.
type envTag struct {
	names    []string // primary name first, then the alternate
	fallback string
	required bool
}

func tagFor(f reflect.StructField) (envTag, bool) {
	name := f.Tag.Get("env")
	if name == "" {
		return envTag{}, false
	}
	tag := envTag{
		names:    []string{name},
		fallback: f.Tag.Get("default"),
		required: f.Tag.Get("required") == "true",
	}
	if alt := f.Tag.Get("envAlt"); alt != "" {
		tag.names = append(tag.names, alt)
	}
	return tag, true
}

// value returns the first non-empty variable, or the default.
func (s envTag) value() (string, error) {
	for _, name := range s.names {
		if v := os.Getenv(name); v != "" {
			return v, nil
		}
	}
	if s.required {
		return "", fmt.Errorf("required environment variable %s is not set", s.names[0])
	}
	return s.fallback, nil
}

// loadStruct fills tagged fields of v, descending into nested sections.
// Every bad value is reported, not just the first.
func loadStruct(v reflect.Value) error {
	var errs []error
	for i := 0; i < v.NumField(); i++ {
		field, sf := v.Field(i), v.Type().Field(i)
		if !field.CanSet() {
			continue
		}
		if sf.Type.Kind() == reflect.Struct {
			if err := loadStruct(field); err != nil {
				errs = append(errs, err)
			}
			continue
		}

		tag, ok := tagFor(sf)
		if !ok {
			continue
		}
		raw, err := tag.value()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if raw == "" {
			continue
		}
		if err := setField(field, raw); err != nil {
			errs = append(errs, fmt.Errorf("invalid value for %s=%q: %w", tag.names[0], raw, err))
		}
	}
	return errors.Join(errs...)
}

// setField parses raw into the field's type. Byte counts (int64) accept a
// KB, MB or GB suffix.
func setField(field reflect.Value, raw string) error {
	switch p := field.Addr().Interface().(type) {
	case *string:
		*p = raw
	case *bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid boolean: %w", err)
		}
		*p = b
	case *time.Duration:
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}
		*p = d
	case *int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid integer: %w", err)
		}
		*p = n
	case *int64:
		n, err := parseSize(raw)
		if err != nil {
			return err
		}
		*p = n
	default:
		return fmt.Errorf("unsupported field type: %s", field.Type())
	}
	return nil
}

var sizeUnits = []struct {
	suffix string
	scale  int64
}{
	{"GB", 1 << 30},
	{"MB", 1 << 20},
	{"KB", 1 << 10},
	{"B", 1},
}

// parseSize reads a byte count such as "33554432", "32MB" or "512 kb".
func parseSize(raw string) (int64, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	scale := int64(1)
	for _, u := range sizeUnits {
		if strings.HasSuffix(s, u.suffix) {
			s, scale = strings.TrimSpace(strings.TrimSuffix(s, u.suffix)), u.scale
			break
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size: %w", err)
	}
	return n * scale, nil
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	// Convert validation
	if c.Convert.ExportName == "" {
		errs = append(errs, "DEXCONV_EXPORT_NAME must not be empty")
	}
	validPolicies := map[string]bool{"overwrite": true, "reject": true}
	if !validPolicies[strings.ToLower(c.Convert.Duplicates)] {
		errs = append(errs, fmt.Sprintf("DEXCONV_DUPLICATES (%q) must be one of: overwrite, reject", c.Convert.Duplicates))
	}
	if c.Convert.MaxFileSize < 0 {
		errs = append(errs, "DEXCONV_MAX_FILE_SIZE must be non-negative")
	}

	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("SERVER_PORT (%d) must be 1-65535", c.Server.Port))
	}
	if c.Server.ReadTimeout < 0 {
		errs = append(errs, "SERVER_READ_TIMEOUT must be non-negative")
	}
	if c.Server.WriteTimeout < 0 {
		errs = append(errs, "SERVER_WRITE_TIMEOUT must be non-negative")
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, "SERVER_SHUTDOWN_TIMEOUT must be positive")
	}
	if c.Server.RequestTimeout <= 0 {
		errs = append(errs, "SERVER_REQUEST_TIMEOUT must be positive")
	}
	if c.Server.MaxConcurrent < 1 || c.Server.MaxConcurrent > 64 {
		errs = append(errs, fmt.Sprintf("SERVER_MAX_CONCURRENT (%d) must be 1-64", c.Server.MaxConcurrent))
	}
	if c.Server.MaxWait <= 0 {
		errs = append(errs, "SERVER_MAX_WAIT must be positive")
	}

	// Logging validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a compact representation of the config for logging.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	b.WriteString(fmt.Sprintf("Convert: {Input: %q, Output: %q, Export: %q, Standalone: %v, Duplicates: %q, AliasFile: %q}, ",
		c.Convert.Input, c.Convert.Output, c.Convert.ExportName, c.Convert.Standalone, c.Convert.Duplicates, c.Convert.AliasFile))
	b.WriteString(fmt.Sprintf("Server: {Host: %q, Port: %d, MaxConcurrent: %d}, ", c.Server.Host, c.Server.Port, c.Server.MaxConcurrent))
	b.WriteString(fmt.Sprintf("Logging: {Level: %q, Format: %q}",
		c.Logging.Level, c.Logging.Format))
	b.WriteString("}")
	return b.String()
}

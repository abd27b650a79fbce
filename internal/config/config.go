// Package config loads settings from defaults, a YAML file, a .env file and the
// environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load
const (
	EnvAPIKey    = "BART_API_KEY"
	EnvAPIURL    = "BART_API_URL"
	EnvStations  = "BART_STATIONS"
	EnvRefreshMS = "BART_REFRESH_MS"
	EnvColumns   = "BART_COLUMNS"
	EnvLogFile   = "BART_LOG_FILE"
)

const (
	defaultRefreshMS = 10000
	defaultColumns   = 4
	dotEnvFile       = ".env"
)

// Config holds the settings of the board and the API client
type Config struct {
	APIKey    string   `yaml:"api_key"`
	APIURL    string   `yaml:"api_url" validate:"omitempty,url"`
	Stations  []string `yaml:"stations" validate:"dive,len=4,alphanum"`
	RefreshMS int      `yaml:"refresh_ms" validate:"gt=0"`
	Columns   int      `yaml:"columns" validate:"min=1,max=16"`
	LogFile   string   `yaml:"log_file"`
}

// Default returns the built-in settings. An empty API key means the public demo key.
func Default() Config {
	return Config{
		RefreshMS: defaultRefreshMS,
		Columns:   defaultColumns,
	}
}

// DefaultPath returns the config file location under the user config directory
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bart", "config.yml")
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "bart", "config.yml")
}

// Load builds the configuration. An empty path means DefaultPath, which may be
// missing; an explicit path must exist. Variables from a .env file in the working
// directory never override the real environment. The result is not validated:
// callers apply their own overrides first and then call Validate.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", dotEnvFile, err)
	}

	if err := cfg.mergeEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	cfg.Normalize()
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAPIKey); ok && v != "" {
		c.APIKey = v
	}
	if v, ok := lookup(EnvAPIURL); ok && v != "" {
		c.APIURL = v
	}
	if v, ok := lookup(EnvStations); ok && v != "" {
		c.Stations = SplitStations(v)
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		c.LogFile = v
	}
	for _, e := range []struct {
		name string
		dst  *int
	}{
		{EnvRefreshMS, &c.RefreshMS},
		{EnvColumns, &c.Columns},
	} {
		v, ok := lookup(e.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: not a number: %q", e.name, v)
		}
		*e.dst = n
	}
	return nil
}

// SplitStations parses a comma-separated station list, dropping empty entries
func SplitStations(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Normalize upper-cases and trims station codes
func (c *Config) Normalize() {
	for i, s := range c.Stations {
		c.Stations[i] = strings.ToUpper(strings.TrimSpace(s))
	}
}

// Refresh returns the refresh interval
func (c Config) Refresh() time.Duration {
	return time.Duration(c.RefreshMS) * time.Millisecond
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the configuration and reports every invalid field
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "len", "alphanum":
		return fmt.Sprintf("%s: %q is not a 4-character station abbreviation", field, fe.Value())
	case "url":
		return fmt.Sprintf("%s: %q is not a URL", field, fe.Value())
	case "gt":
		return fmt.Sprintf("%s: must be greater than %s", field, fe.Param())
	case "min", "max":
		return fmt.Sprintf("%s: must be between 1 and 16", field)
	default:
		return fmt.Sprintf("%s: failed %s", field, fe.Tag())
	}
}

// Package config resolves client settings from defaults, the TOML config
// file and SF_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bnema/storefront-cli/internal/logging"
	"github.com/caarlos0/env/v10"
	"github.com/spf13/viper"
)

const (
	DefaultAPIURL  = "http://localhost:4000/api"
	defaultDirName = ".storefront"
	configFileName = "config.toml"

	BackendAuto = "auto"
	BackendFile = "file"
	BackendPass = "pass"

	KeyAPIURL            = "api_url"
	KeyDataDir           = "data_dir"
	KeyCredentialBackend = "credential_backend"
	KeyLogLevel          = "log_level"
	KeyRequestTimeout    = "request_timeout"
)

type Config struct {
	APIURL            string        `env:"SF_API_URL"`
	DataDir           string        `env:"SF_DATA_DIR"`
	CredentialBackend string        `env:"SF_CREDENTIAL_BACKEND"`
	LogLevel          string        `env:"SF_LOG_LEVEL"`
	RequestTimeout    time.Duration `env:"SF_REQUEST_TIMEOUT"`
}

type pathEnv struct {
	Path string `env:"SF_CONFIG"`
}

// Default returns the built-in settings rooted at homeDir.
func Default(homeDir string) Config {
	return Config{
		APIURL:            DefaultAPIURL,
		DataDir:           filepath.Join(homeDir, defaultDirName),
		CredentialBackend: BackendAuto,
		LogLevel:          logging.DefaultLevel,
	}
}

// Path returns SF_CONFIG when set, otherwise ~/.storefront/config.toml.
func Path() (string, error) {
	var pe pathEnv
	if err := env.Parse(&pe); err != nil {
		return "", fmt.Errorf("parse config env: %w", err)
	}
	if strings.TrimSpace(pe.Path) != "" {
		return filepath.Clean(pe.Path), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, defaultDirName, configFileName), nil
}

// Load resolves the effective configuration: file values over defaults,
// then environment over both.
func Load(path string) (Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFile resolves defaults and the config file only. A missing file is
// not an error.
func LoadFile(path string) (Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	defaults := Default(homeDir)

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetDefault(KeyAPIURL, defaults.APIURL)
	v.SetDefault(KeyDataDir, defaults.DataDir)
	v.SetDefault(KeyCredentialBackend, defaults.CredentialBackend)
	v.SetDefault(KeyLogLevel, defaults.LogLevel)
	v.SetDefault(KeyRequestTimeout, "")

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	if version := v.GetInt("version"); version > currentSchemaVersion {
		return Config{}, fmt.Errorf("unsupported config schema version %d (current %d)", version, currentSchemaVersion)
	}

	cfg := Config{
		APIURL:            v.GetString(KeyAPIURL),
		DataDir:           v.GetString(KeyDataDir),
		CredentialBackend: v.GetString(KeyCredentialBackend),
		LogLevel:          v.GetString(KeyLogLevel),
	}
	if raw := strings.TrimSpace(v.GetString(KeyRequestTimeout)); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", KeyRequestTimeout, err)
		}
		cfg.RequestTimeout = timeout
	}

	return cfg, nil
}

func (c Config) Validate() error {
	parsed, err := url.Parse(c.APIURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%s must be an http(s) URL, got %q", KeyAPIURL, c.APIURL)
	}

	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("%s is empty", KeyDataDir)
	}

	switch c.CredentialBackend {
	case BackendAuto, BackendFile, BackendPass:
	default:
		return fmt.Errorf("unknown %s %q (want auto, file or pass)", KeyCredentialBackend, c.CredentialBackend)
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	if c.RequestTimeout < 0 {
		return fmt.Errorf("%s must not be negative", KeyRequestTimeout)
	}

	return nil
}

// Set assigns one setting by its file key.
func (c *Config) Set(key string, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case KeyAPIURL:
		c.APIURL = strings.TrimRight(value, "/")
	case KeyDataDir:
		c.DataDir = value
	case KeyCredentialBackend:
		c.CredentialBackend = strings.ToLower(value)
	case KeyLogLevel:
		c.LogLevel = strings.ToLower(value)
	case KeyRequestTimeout:
		if value == "" || value == "0" {
			c.RequestTimeout = 0
			return nil
		}
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("parse %s: %w", KeyRequestTimeout, err)
		}
		c.RequestTimeout = timeout
	default:
		return fmt.Errorf("unknown config key %q (want one of %s)", key, strings.Join(Keys(), ", "))
	}

	return nil
}

// Values returns every setting keyed by its file key.
func (c Config) Values() map[string]string {
	timeout := ""
	if c.RequestTimeout > 0 {
		timeout = c.RequestTimeout.String()
	}

	return map[string]string{
		KeyAPIURL:            c.APIURL,
		KeyDataDir:           c.DataDir,
		KeyCredentialBackend: c.CredentialBackend,
		KeyLogLevel:          c.LogLevel,
		KeyRequestTimeout:    timeout,
	}
}

func Keys() []string {
	keys := []string{KeyAPIURL, KeyDataDir, KeyCredentialBackend, KeyLogLevel, KeyRequestTimeout}
	sort.Strings(keys)
	return keys
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	currentSchemaVersion = 1
	configFileMode       = 0o600
	configDirMode        = 0o700
	tempFilePattern      = ".config-*.toml.tmp"
)

type fileSchema struct {
	Version           int    `toml:"version"`
	APIURL            string `toml:"api_url"`
	DataDir           string `toml:"data_dir,omitempty"`
	CredentialBackend string `toml:"credential_backend,omitempty"`
	LogLevel          string `toml:"log_level,omitempty"`
	RequestTimeout    string `toml:"request_timeout,omitempty"`
}

func toSchema(cfg Config) fileSchema {
	schema := fileSchema{
		Version:           currentSchemaVersion,
		APIURL:            cfg.APIURL,
		DataDir:           cfg.DataDir,
		CredentialBackend: cfg.CredentialBackend,
		LogLevel:          cfg.LogLevel,
	}
	if cfg.RequestTimeout > 0 {
		schema.RequestTimeout = cfg.RequestTimeout.String()
	}

	return schema
}

// Save validates cfg and replaces the file at path atomically.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(toSchema(cfg))
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false
	return nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/wasmpack-labs/wasmpack/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Dir returns the settings directory, ~/.wasmpack by default. When the
// home directory cannot be resolved it degrades to ./.wasmpack so the CLI
// stays usable in stripped-down environments.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the settings file path under Dir.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the settings directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load points viper at the settings file and the WASMPACK_* environment.
// A missing settings file is not an error: callers that only read keys
// with sensible fallbacks (the init wizard, `new`) work on a fresh
// machine without any setup.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// Get returns the string value for key, or "" when unset. Keys are
// dotted paths, e.g. "init.license".
func Get(key string) string {
	return viper.GetString(key)
}

// Set stores key=value and persists the whole settings file, creating
// the directory and file on first use.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	// viper refuses to write a config file that never existed, so touch
	// it first.
	configFile := FilePath()
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

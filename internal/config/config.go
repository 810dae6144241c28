package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/readlater-labs/readlater/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyFile  = "file"
	KeyColor = "color"
)

// Keys lists every key accepted by Set.
var Keys = []string{KeyFile, KeyColor}

// Dir returns the path to the config directory (~/.readlater/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.readlater/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// DefaultListPath returns ~/.read_later_list.
func DefaultListPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return branding.ListFile()
	}
	return filepath.Join(home, branding.ListFile())
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// Any previously loaded values are discarded.
func Load() error {
	viper.Reset()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	viper.SetDefault(KeyFile, DefaultListPath())
	viper.SetDefault(KeyColor, true)

	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(FilePath()); os.IsNotExist(statErr) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", FilePath(), err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// ListPath resolves the list file location. A non-empty override (the
// --file flag) wins, then READLATER_FILE, then the "file" config key, then
// ~/.read_later_list. A leading "~/" is expanded to the home directory.
func ListPath(override string) string {
	path := override
	if path == "" {
		path = viper.GetString(KeyFile)
	}
	if path == "" {
		path = DefaultListPath()
	}
	return expandHome(path)
}

// ColorEnabled reports whether colored output is allowed by config.
func ColorEnabled() bool {
	return viper.GetBool(KeyColor)
}

// Set writes a config key-value pair and saves the config file. Only keys
// already in the file and the one being set are written; defaults and
// environment overrides are not persisted.
func Set(key, value string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys, ", "))
	}

	var typed any = value
	if key == KeyColor {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("config key %q expects true or false, got %q", key, value)
		}
		typed = b
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", configFile, err)
		}
	}
	file.Set(key, typed)

	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, typed)
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

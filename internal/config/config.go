// Package config loads runtime configuration from defaults, an optional TOML
// file, WATCHLIST_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvConfigFile names the variable that points at an explicit config file.
const EnvConfigFile = "WATCHLIST_CONFIG"

// Config holds application configuration.
type Config struct {
	// FilePath is the watch list file. WATCHLIST_FILE_PATH overrides it.
	FilePath string `mapstructure:"file_path"`
	// Passphrase seals the file when set. WATCHLIST_PASSPHRASE overrides it.
	Passphrase string `mapstructure:"passphrase"`
	// LogLevel is a logrus level name.
	LogLevel string `mapstructure:"log_level"`
	// Verbose forces debug logging.
	Verbose bool `mapstructure:"verbose"`
}

// Load reads configuration. flags may be nil; when given, its "file",
// "config" and "verbose" flags take precedence over every other source if
// they were set on the command line.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("user home dir: %w", err)
	}

	// default values
	v.SetDefault("file_path", filepath.Join(home, ".wl", "watchlist.json"))
	v.SetDefault("passphrase", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("verbose", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv(EnvConfigFile)
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(expandHome(cfgPath, home))
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "wl"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WATCHLIST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		for key, name := range map[string]string{"file_path": "file", "verbose": "verbose"} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.FilePath = expandHome(strings.TrimSpace(c.FilePath), home)
	if c.FilePath == "" {
		return Config{}, fmt.Errorf("file_path must not be empty")
	}
	return c, nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// Package config handles sdr configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"sdr/internal/workspace"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
)

// ColorMode controls coloured output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config is the settings for one invocation. It is built once from defaults,
// environment, config file and command-line options, then passed to the
// components that need it.
type Config struct {
	User         string
	DBPath       string
	Speak        bool
	SpeakCommand string
	Color        ColorMode
	Strict       bool
	Debug        bool
}

// DefaultDir returns the directory searched for config.yaml:
// $XDG_CONFIG_HOME/sdr, or the platform user config directory.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sdr")
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sdr")
}

// Load reads configuration from SDR_* environment variables and, when
// configDir is non-empty, from configDir/config.yaml. A missing config file
// is not an error.
func Load(configDir string) (Config, error) {
	v := viper.New()
	for k, val := range DefaultValues() {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configDir != "" {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(configDir)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		User:         v.GetString(KeyUsername),
		DBPath:       v.GetString(KeyDBPath),
		Speak:        v.GetBool(KeySpeak),
		SpeakCommand: v.GetString(KeySpeakCommand),
		Color:        ColorMode(v.GetString(KeyColor)),
		Strict:       v.GetBool(KeyStrict),
		Debug:        v.GetBool(KeyDebug),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ResolveDefaults fills User and DBPath from the workspace around dir when
// nothing has set them.
func (c *Config) ResolveDefaults(dir string) {
	if c.User == "" {
		c.User = workspace.DetectUser(dir)
	}
	if c.DBPath == "" {
		c.DBPath = workspace.FindDBPath(dir, workspace.DBBaseName)
	}
}

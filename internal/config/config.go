package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/blackwell-systems/codelaunch/internal/vscode"
)

// Config is the top-level codelaunch configuration.
type Config struct {
	// EditorCommand overrides the launch command, shell-quoted. Empty means
	// the located build's binary with --new-window.
	EditorCommand string          `mapstructure:"editor_command"`
	ExtraDirs     []string        `mapstructure:"extra_dirs"`
	Flavors       []vscode.Flavor `mapstructure:"flavors"`
	Log           Log             `mapstructure:"log"`
	Output        Output          `mapstructure:"output"`
}

// Log defines logging preferences.
type Log struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Sink       string `mapstructure:"sink"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("editor_command", "")
	v.SetDefault("extra_dirs", []string{})
	v.SetDefault("log.level", DefaultLog.Level)
	v.SetDefault("log.format", DefaultLog.Format)
	v.SetDefault("log.sink", DefaultLog.Sink)
	v.SetDefault("log.file", DefaultLog.File)
	v.SetDefault("log.max_size_mb", DefaultLog.MaxSizeMB)
	v.SetDefault("log.max_backups", DefaultLog.MaxBackups)
	v.SetDefault("output.color", DefaultOutput.Color)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(ConfigDir())
		v.SetConfigName(strings.TrimSuffix(DefaultConfigFile, filepath.Ext(DefaultConfigFile)))
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if len(cfg.Flavors) == 0 {
		cfg.Flavors = vscode.DefaultFlavors
	}

	cfg.Log.File = expandPath(cfg.Log.File)
	for i, d := range cfg.ExtraDirs {
		cfg.ExtraDirs[i] = expandPath(d)
	}

	return &cfg, nil
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}

// ConfigFile returns the config file Load reads for cfgFile: the explicit
// path when given, otherwise the default file in ConfigDir.
func ConfigFile(cfgFile string) string {
	if cfgFile != "" {
		return expandPath(cfgFile)
	}
	return filepath.Join(ConfigDir(), DefaultConfigFile)
}

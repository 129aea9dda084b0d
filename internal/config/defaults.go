// Package config provides configuration loading and defaults for codelaunch.
package config

// DefaultConfigDir is the default location for codelaunch configuration.
const DefaultConfigDir = "~/.config/codelaunch"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultLogFile is where the interactive picker writes its log.
const DefaultLogFile = "~/.config/codelaunch/codelaunch.log"

// EnvPrefix prefixes environment overrides, e.g. CODELAUNCH_LOG_LEVEL.
const EnvPrefix = "CODELAUNCH"

// DefaultLog holds the default logging settings. An empty sink lets the
// running mode decide.
var DefaultLog = Log{
	Level:      "warn",
	Format:     "text",
	File:       DefaultLogFile,
	MaxSizeMB:  5,
	MaxBackups: 3,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
}

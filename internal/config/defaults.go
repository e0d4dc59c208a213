package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultModName        = "climateadjuster"
	defaultFileName       = "climate_data.json"
	defaultHostShape      = "modern"
	defaultLogLevel       = "info"
	defaultRequestTimeout = 5 * time.Second
)

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ModName:   defaultModName,
			HostShape: defaultHostShape,
			LogLevel:  defaultLogLevel,
		},
		Storage: Storage{
			ConfigRoot: defaultConfigRoot(),
			FileName:   defaultFileName,
		},
		Server: Server{
			RequestTimeout: defaultRequestTimeout,
		},
	}
}

// defaultConfigRoot follows the XDG base directory convention:
// $XDG_CONFIG_HOME, then $HOME/.config, then ./config.
func defaultConfigRoot() string {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return xdgHome
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config")
	}
	return "config"
}

// jsonPathFromArgs finds the value of -c/-config (or their double-dash
// forms) in args without parsing the full flag set.
func jsonPathFromArgs(args []string) string {
	for i, arg := range args {
		for _, name := range []string{"-c", "--c", "-config", "--config"} {
			if arg == name && i+1 < len(args) {
				return args[i+1]
			}
			if value, ok := strings.CutPrefix(arg, name+"="); ok {
				return value
			}
		}
	}
	return ""
}

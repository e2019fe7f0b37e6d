// Package config is the Config struct consumed by cmd/swiftmtctl, built
// from viper after cobra has registered and bound its flags — mirroring
// joestump-claude-ops's cmd/claudeops/main.go + internal/config split:
// cobra owns flag defaults and registration, viper holds the bound values
// (a flag that was set wins over its default). No environment variables
// are bound.
package config

import "github.com/spf13/viper"

// Config holds the runtime configuration for swiftmtctl.
type Config struct {
	InputPath    string
	DictCacheDir string
	MessageTypes []string
	LogLevel     string
}

// Load reads configuration from viper: the flag values, or their defaults,
// bound by the cobra command in cmd/swiftmtctl. Environment variables are
// not consulted.
func Load() Config {
	return Config{
		InputPath:    viper.GetString("input"),
		DictCacheDir: viper.GetString("dict_cache_dir"),
		MessageTypes: viper.GetStringSlice("message_types"),
		LogLevel:     viper.GetString("log_level"),
	}
}

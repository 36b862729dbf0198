package config

import (
	_ "embed"
)

//go:embed defaults/gridzero.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration.
// It matches the embedded defaults/gridzero.yaml.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			TickRate:      30,
			RevealDelayMS: 1000,
			Theme:         "default",
			Mouse:         true,
		},
		Server: ServerConfig{
			Address:        ":23234",
			IdleTimeoutMin: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

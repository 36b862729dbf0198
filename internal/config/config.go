// Package config provides YAML-based application configuration for Grid Zero.
package config

import (
	"time"

	"github.com/vovakirdan/gridzero/internal/core"
)

// Config is the root of the configuration file.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Levels  LevelsConfig  `yaml:"levels"`
	Server  ServerConfig  `yaml:"server"`
}

// DisplayConfig controls presentation timing and looks.
type DisplayConfig struct {
	TickRate      int    `yaml:"tick_rate"`       // Ticks per second
	RevealDelayMS int    `yaml:"reveal_delay_ms"` // Delay before a result overlay
	Theme         string `yaml:"theme"`           // "default", "neon" or "mono"
	Mouse         bool   `yaml:"mouse"`           // Capture mouse input in the terminal
}

// LevelsConfig selects the level pack.
type LevelsConfig struct {
	Path string `yaml:"path"` // File or directory; empty for the built-in pack
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address        string `yaml:"address"`
	HostKey        string `yaml:"host_key"`
	IdleTimeoutMin int    `yaml:"idle_timeout_min"`
}

// RevealDelay returns the reveal delay as a duration.
func (d DisplayConfig) RevealDelay() time.Duration {
	return time.Duration(d.RevealDelayMS) * time.Millisecond
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMin) * time.Minute
}

// Runtime builds the runtime configuration passed to games.
func (c Config) Runtime(screenW, screenH int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.ScreenW = screenW
	rc.ScreenH = screenH
	rc.TickRate = c.Display.TickRate
	rc.RevealDelay = c.Display.RevealDelay()
	return rc
}

// normalize replaces unusable values with defaults.
func (c *Config) normalize() {
	def := DefaultConfig()

	if c.Display.TickRate <= 0 {
		c.Display.TickRate = def.Display.TickRate
	}
	if c.Display.RevealDelayMS < 0 {
		c.Display.RevealDelayMS = 0
	}
	if c.Display.Theme == "" {
		c.Display.Theme = def.Display.Theme
	}
	if c.Server.Address == "" {
		c.Server.Address = def.Server.Address
	}
	if c.Server.IdleTimeoutMin <= 0 {
		c.Server.IdleTimeoutMin = def.Server.IdleTimeoutMin
	}
}

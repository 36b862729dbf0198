package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridzero/internal/config"
	"github.com/vovakirdan/gridzero/internal/games/zerogrid"
	gridcore "github.com/vovakirdan/gridzero/internal/games/zerogrid/core"
	"github.com/vovakirdan/gridzero/internal/games/zerogrid/levels"
)

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}
	if flagLevels != "" {
		cfg.Levels.Path = flagLevels
	}
	return cfg, nil
}

// loadCatalog loads the configured level pack and makes it the game's catalog.
func loadCatalog(cfg config.Config, logger *log.Logger) (*gridcore.Catalog, error) {
	catalog, err := levels.Load(cfg.Levels.Path)
	if err != nil {
		return nil, err
	}
	zerogrid.SetCatalog(catalog)

	source := cfg.Levels.Path
	if source == "" {
		source = "built-in"
	}
	logger.Info("levels loaded", "count", catalog.Count(), "source", source)

	return catalog, nil
}

// newLogger creates a logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridzero",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile opens the --log file for appending, or discards output when unset.
func openLogFile() (io.Writer, func(), error) {
	if flagLog == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// fail prints an error and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// gridzero-gui opens Grid Zero in a desktop window.
//
// Usage:
//
//	gridzero-gui [--level N] [--levels PATH] [--config PATH]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridzero/internal/config"
	"github.com/vovakirdan/gridzero/internal/games/zerogrid"
	"github.com/vovakirdan/gridzero/internal/games/zerogrid/levels"
	"github.com/vovakirdan/gridzero/internal/platform/gui"
	"github.com/vovakirdan/gridzero/internal/registry"
)

var (
	flagConfig string
	flagLevels string
	flagLevel  int
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "gridzero-gui",
	Short: "Grid Zero in a desktop window",
	Long: `Open Grid Zero in a desktop window.

Controls:
  Mouse click   - Fire the clicked cell
  Arrows/HJKL   - Move the cursor
  Space/Enter   - Fire the cell under the cursor
  N             - Next level (after a win)
  R             - Retry the level
  Shift+R       - Restart from level 1
  Q/Esc         - Quit`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.Flags().StringVar(&flagLevels, "levels", "", "Level pack YAML file or directory")
	rootCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start on (1-based)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	var out io.Writer = io.Discard
	if flagDebug {
		out = os.Stderr
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridzero-gui",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLevels != "" {
		cfg.Levels.Path = flagLevels
	}

	catalog, err := levels.Load(cfg.Levels.Path)
	if err != nil {
		return err
	}
	if flagLevel < 1 || flagLevel > catalog.Count() {
		return fmt.Errorf("level %d out of range (1-%d)", flagLevel, catalog.Count())
	}
	zerogrid.SetCatalog(catalog)

	game, err := registry.Create(zerogrid.GameID)
	if err != nil {
		return err
	}

	rc := cfg.Runtime(64, 24)
	rc.StartLevel = flagLevel - 1

	logger.Info("starting", "levels", catalog.Count(), "level", flagLevel)
	return gui.Run(game, rc, logger)
}

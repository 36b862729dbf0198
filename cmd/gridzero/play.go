package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridzero/internal/platform/tui"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Grid Zero in the terminal.

Without --level a level picker is shown first.

Controls:
  Arrows/HJKL   - Move the cursor
  Space/Enter   - Fire the cell under the cursor
  Mouse click   - Fire the clicked cell
  N             - Next level (after a win)
  R             - Retry the level
  Shift+R       - Restart from level 1
  Esc/B         - Back to the level picker
  Ctrl+S        - Save a screenshot
  Q/Ctrl+C      - Quit

Examples:
  gridzero play
  gridzero play --level 2
  gridzero play --levels ./packs/hard.yaml --log ./gridzero.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start on this level (1-based), skipping the picker")
}

func runPlay(_ *cobra.Command, _ []string) {
	logOut, closeLog, err := openLogFile()
	if err != nil {
		fail(err)
	}
	defer closeLog()
	logger := newLogger(logOut)

	cfg, err := loadConfig()
	if err != nil {
		fail(err)
	}

	catalog, err := loadCatalog(cfg, logger)
	if err != nil {
		fail(err)
	}
	if flagLevel < 0 || flagLevel > catalog.Count() {
		fail(fmt.Errorf("level %d out of range (1-%d)", flagLevel, catalog.Count()))
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := cfg.Runtime(width, height)
	if flagLevel > 0 {
		rc.StartLevel = flagLevel - 1
	}

	theme, ok := tui.ThemeByName(cfg.Display.Theme)
	if !ok {
		logger.Warn("unknown theme, using default", "theme", cfg.Display.Theme, "available", tui.ThemeNames())
	}

	opts := tui.Options{
		Theme:  theme,
		Logger: logger,
		Mouse:  cfg.Display.Mouse,
	}

	if err := tui.Run(rc, opts, flagLevel > 0); err != nil {
		logger.Error("terminal UI failed", "error", err)
		fail(err)
	}
}

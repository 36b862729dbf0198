// gridzero is a terminal grid puzzle: clear every cell to zero.
//
// Usage:
//
//	gridzero play            - Pick a level and play
//	gridzero play --level 2  - Start directly on level 2
//	gridzero levels          - List the level catalog
//	gridzero serve           - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Configuration file (default search: ~/.gridzero, ./configs)
//	--levels <path>  - Level pack file or directory
//	--fps <rate>     - Tick rate override
//	--log <path>     - Log file for play sessions
//	--debug          - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagLevels string
	flagFPS    int
	flagLog    string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridzero",
	Short: "Grid Zero - clear the grid in your terminal",
	Long: `Grid Zero is a single-screen grid puzzle. Firing a cell zeroes it and
adds its value to every neighbor. Clear every cell to win the level;
once every value shares one sign, the level is stalled.

Available commands:
  play     - Play in the terminal
  levels   - Show the level catalog
  serve    - Start SSH server for remote play

Examples:
  gridzero play
  gridzero play --level 3
  gridzero play --levels ./my-levels/
  gridzero levels
  gridzero serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Level pack YAML file or directory")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Log file path")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	gridcore "github.com/vovakirdan/gridzero/internal/games/zerogrid/core"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long: `Shows every level in the active pack with its starting grid.

Examples:
  gridzero levels
  gridzero levels --levels ./my-levels/`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	cfg, err := loadConfig()
	if err != nil {
		fail(err)
	}
	catalog, err := loadCatalog(cfg, logger)
	if err != nil {
		fail(err)
	}

	fmt.Print(formatCatalog(catalog))
	fmt.Println()
	fmt.Println("Run 'gridzero play --level <#>' to play a level.")
}

// formatCatalog renders the catalog as an indented listing.
func formatCatalog(catalog *gridcore.Catalog) string {
	templates := catalog.Templates()

	maxIDLen := 2 // "ID" header
	for _, t := range templates {
		maxIDLen = max(maxIDLen, len(t.ID()))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %-3s  %-*s  %-5s  %s\n", "#", maxIDLen, "ID", "Size", "Name")
	fmt.Fprintf(&b, "  %-3s  %-*s  %-5s  %s\n", "-", maxIDLen, "--", "----", "----")

	for i, t := range templates {
		size := fmt.Sprintf("%dx%d", t.Cols(), t.Rows())
		fmt.Fprintf(&b, "  %-3d  %-*s  %-5s  %s\n", i+1, maxIDLen, t.ID(), size, t.Name())

		cells := t.Cells()
		indent := strings.Repeat(" ", 7+maxIDLen)
		for r := range t.Rows() {
			row := cells[r*t.Cols() : (r+1)*t.Cols()]
			vals := make([]string, len(row))
			for j, v := range row {
				vals[j] = fmt.Sprintf("%3d", v)
			}
			fmt.Fprintf(&b, "%s  %s\n", indent, strings.Join(vals, " "))
		}
	}
	return b.String()
}

// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLFile is the top-level structure of a level pack file.
type YAMLFile struct {
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel represents one level in YAML form.
type YAMLLevel struct {
	ID    string   `yaml:"id"`
	Name  string   `yaml:"name"`
	Size  YAMLSize `yaml:"size"`
	Cells [][]int  `yaml:"cells"` // One list per row, top to bottom
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Level is a parsed level with row-major cells.
type Level struct {
	ID    string
	Name  string
	Rows  int
	Cols  int
	Cells []int
}

// ParseYAML parses a level pack. Size may be omitted, in which case it is
// taken from the cell rows.
func ParseYAML(data []byte) ([]Level, error) {
	var yf YAMLFile
	if err := yaml.Unmarshal(data, &yf); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yf.Levels) == 0 {
		return nil, fmt.Errorf("no levels defined")
	}

	out := make([]Level, 0, len(yf.Levels))
	for i, yl := range yf.Levels {
		lvl, err := yl.toLevel()
		if err != nil {
			return nil, fmt.Errorf("level %d (%q): %w", i, yl.ID, err)
		}
		out = append(out, lvl)
	}
	return out, nil
}

func (yl YAMLLevel) toLevel() (Level, error) {
	rows := yl.Size.H
	cols := yl.Size.W
	if rows == 0 {
		rows = len(yl.Cells)
	}
	if cols == 0 && len(yl.Cells) > 0 {
		cols = len(yl.Cells[0])
	}

	if len(yl.Cells) != rows {
		return Level{}, fmt.Errorf("expected %d rows, got %d", rows, len(yl.Cells))
	}

	cells := make([]int, 0, rows*cols)
	for y, row := range yl.Cells {
		if len(row) != cols {
			return Level{}, fmt.Errorf("row %d: expected %d cells, got %d", y, cols, len(row))
		}
		cells = append(cells, row...)
	}

	return Level{
		ID:    yl.ID,
		Name:  yl.Name,
		Rows:  rows,
		Cols:  cols,
		Cells: cells,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

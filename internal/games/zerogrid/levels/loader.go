// Package levels loads Grid Zero level packs into a catalog.
// This package depends on core but core does not depend on levels.
package levels

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/gridzero/internal/games/zerogrid/core"
	"github.com/vovakirdan/gridzero/internal/games/zerogrid/levels/formats"
)

//go:embed default.yaml
var defaultYAML []byte

// builtin mirrors default.yaml and is used if the embedded pack fails to parse.
var builtin = []core.Template{
	core.MustTemplate("01", "Inside Out", 3, 3, []int{-1, -1, -1, -1, 1, -1, -1, -1, -1}),
	core.MustTemplate("02", "Ring", 3, 3, []int{1, 1, 1, 1, -1, 1, 1, 1, 1}),
	core.MustTemplate("03", "Crosscurrent", 3, 3, []int{1, 3, 2, -1, 3, -2, 1, 3, 2}),
}

// Default returns the built-in catalog.
func Default() *core.Catalog {
	templates, err := parse(defaultYAML, "default.yaml")
	if err != nil || len(templates) == 0 {
		templates = builtin
	}

	catalog, err := core.NewCatalog(templates...)
	if err != nil {
		panic(fmt.Sprintf("levels: built-in catalog: %v", err))
	}
	return catalog
}

// Load builds a catalog from path. An empty path returns the built-in
// catalog; a directory is scanned with LoadDir, anything else is read
// as a single level file.
func Load(path string) (*core.Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if info.IsDir() {
		return NewLoader(path).Catalog()
	}

	templates, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	catalog, err := core.NewCatalog(templates...)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", path, err)
	}
	return catalog, nil
}

// LoadFile loads every level in a single file.
func LoadFile(path string) ([]core.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: reading file %s: %w", path, err)
	}
	return parse(data, path)
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Files are visited in path order; levels keep their order within a file.
func (l *Loader) LoadAll() ([]core.Template, error) {
	var paths []string

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sort.Strings(paths)

	var templates []core.Template
	for _, path := range paths {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		templates = append(templates, loaded...)
	}
	return templates, nil
}

// Catalog loads all levels under Root into a catalog.
func (l *Loader) Catalog() (*core.Catalog, error) {
	templates, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	catalog, err := core.NewCatalog(templates...)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", l.Root, err)
	}
	return catalog, nil
}

// parse routes data to the parser for the file's extension.
func parse(data []byte, path string) ([]core.Template, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var parsed []formats.Level
	var err error
	switch ext {
	case ".yaml", ".yml":
		parsed, err = formats.ParseYAML(data)
	default:
		return nil, fmt.Errorf("levels: unsupported extension: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: parsing file %s: %w", path, err)
	}

	templates := make([]core.Template, 0, len(parsed))
	for i, p := range parsed {
		id := p.ID
		if id == "" {
			id = fmt.Sprintf("%s#%d", strings.TrimSuffix(filepath.Base(path), ext), i+1)
		}
		name := p.Name
		if name == "" {
			name = id
		}

		t, err := core.NewTemplate(id, name, p.Rows, p.Cols, p.Cells)
		if err != nil {
			return nil, fmt.Errorf("levels: %s: %w", path, err)
		}
		templates = append(templates, t)
	}
	return templates, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

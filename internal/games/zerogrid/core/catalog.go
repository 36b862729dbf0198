package core

import "fmt"

// Catalog is an ordered, immutable list of level templates.
type Catalog struct {
	templates []Template
}

// NewCatalog builds a catalog from the given templates in order.
func NewCatalog(templates ...Template) (*Catalog, error) {
	if len(templates) == 0 {
		return nil, ErrEmptyCatalog
	}

	own := make([]Template, len(templates))
	copy(own, templates)
	return &Catalog{templates: own}, nil
}

// Count returns the number of levels.
func (c *Catalog) Count() int {
	return len(c.templates)
}

// Get returns the template at index (0-based).
func (c *Catalog) Get(index int) (Template, error) {
	if index < 0 || index >= len(c.templates) {
		return Template{}, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, index, len(c.templates))
	}
	return c.templates[index], nil
}

// Templates returns the levels in order.
func (c *Catalog) Templates() []Template {
	out := make([]Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// Names returns the display names of all levels.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.templates))
	for i, t := range c.templates {
		names[i] = t.Name()
	}
	return names
}

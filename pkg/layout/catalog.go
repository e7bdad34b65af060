package layout

import (
	"errors"
	"fmt"
)

var ErrLayoutNotFound = errors.New("layout not found")

// Catalog is the read-only registry of slide layouts.
// It is filled once at construction and never changes afterwards, so it is safe
// for concurrent readers.
type Catalog struct {
	layouts   []Layout
	index     map[string]int
	defaultId string
}

// NewCatalog returns the catalog of built-in layouts
func NewCatalog() *Catalog {
	return NewCatalogFrom(builtinLayouts())
}

// NewCatalogFrom registers the given layouts in order.
// It panics on duplicate ids or invalid grid regions: the table is static and a bad entry
// is a programming error.
func NewCatalogFrom(layouts []Layout) *Catalog {
	c := &Catalog{
		layouts: make([]Layout, 0, len(layouts)),
		index:   make(map[string]int, len(layouts)),
	}

	for _, l := range layouts {
		if _, exists := c.index[l.Id]; exists {
			panic(fmt.Sprintf("layout %q registered twice", l.Id))
		}
		for i, p := range l.Elements {
			if err := p.Grid.Validate(); err != nil {
				panic(fmt.Sprintf("layout %q placeholder %d: %v", l.Id, i, err))
			}
		}
		c.index[l.Id] = len(c.layouts)
		c.layouts = append(c.layouts, l.clone())
		if l.IsDefault && c.defaultId == "" {
			c.defaultId = l.Id
		}
	}

	if c.defaultId == "" && len(c.layouts) > 0 {
		c.defaultId = c.layouts[0].Id
	}

	return c
}

// Get returns the layout registered under id
func (c *Catalog) Get(id string) (Layout, error) {
	i, ok := c.index[id]
	if !ok {
		return Layout{}, fmt.Errorf("%w: %s", ErrLayoutNotFound, id)
	}
	return c.layouts[i].clone(), nil
}

// GetOrDefault resolves id, falling back to the default layout.
// The bool reports whether id itself was found.
func (c *Catalog) GetOrDefault(id string) (Layout, bool) {
	if l, err := c.Get(id); err == nil {
		return l, true
	}
	return c.Default(), false
}

// Default returns the layout flagged as default (or the first registered one).
func (c *Catalog) Default() Layout {
	if c.defaultId == "" {
		return Layout{}
	}
	return c.layouts[c.index[c.defaultId]].clone()
}

// List returns all layouts in registration order
func (c *Catalog) List() []Layout {
	out := make([]Layout, len(c.layouts))
	for i, l := range c.layouts {
		out[i] = l.clone()
	}
	return out
}

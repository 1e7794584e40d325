package model

import (
	"errors"
	"fmt"
)

// Screen names.
const (
	ScreenDMs         = "dms"
	ScreenHome        = "home"
	ScreenActivity    = "activity"
	ScreenAssigned    = "assigned"
	ScreenCanvases    = "canvases"
	ScreenConnections = "connections"
)

// Screens is the display order of the built-in screens.
var Screens = []string{ScreenHome, ScreenDMs, ScreenActivity, ScreenAssigned, ScreenCanvases, ScreenConnections}

var ErrDuplicateID = errors.New("duplicate item id")

// Catalog is the immutable, ordered item set of one screen.
type Catalog struct {
	Screen string
	items  []Item
}

// NewCatalog copies items into a new Catalog. Ids must be unique per Kind.
func NewCatalog(screen string, items ...Item) (*Catalog, error) {
	seen := make(map[Kind]map[string]struct{}, 6)
	out := make([]Item, 0, len(items))
	for i, it := range items {
		if it == nil {
			return nil, fmt.Errorf("catalog %s: item %d is nil", screen, i)
		}
		ids := seen[it.Kind()]
		if ids == nil {
			ids = make(map[string]struct{})
			seen[it.Kind()] = ids
		}
		if _, dup := ids[it.ItemID()]; dup {
			return nil, fmt.Errorf("catalog %s: %s %q: %w", screen, it.Kind(), it.ItemID(), ErrDuplicateID)
		}
		ids[it.ItemID()] = struct{}{}
		out = append(out, it)
	}
	return &Catalog{Screen: screen, items: out}, nil
}

// MustCatalog is NewCatalog for static data; it panics on error.
func MustCatalog(screen string, items ...Item) *Catalog {
	c, err := NewCatalog(screen, items...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

func (c *Catalog) At(i int) Item { return c.items[i] }

// Items returns a copy of the catalog's items in order.
func (c *Catalog) Items() []Item {
	if c == nil {
		return nil
	}
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

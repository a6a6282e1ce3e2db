package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

var ErrUnknownItem = errors.New("emoji is not part of the catalog")

// Item is one catalog row. Identity is the icon; Position is the row index
// in the catalog file and defines the display order.
type Item struct {
	Icon       string
	Collection string
	Position   int
}

// Catalog is the immutable emoji table loaded once at startup.
type Catalog struct {
	items  []Item
	byIcon map[string]Item
}

// Load reads the catalog from a CSV file with one `icon,collection` pair
// per line.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse reads `icon,collection` rows. Row order defines item positions.
func Parse(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog csv: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("catalog is empty")
	}

	c := &Catalog{
		items:  make([]Item, 0, len(records)),
		byIcon: make(map[string]Item, len(records)),
	}
	for i, record := range records {
		item := Item{
			Icon:       record[0],
			Collection: record[1],
			Position:   i,
		}
		if item.Icon == "" {
			return nil, fmt.Errorf("catalog row %d has an empty icon", i+1)
		}
		if _, exists := c.byIcon[item.Icon]; exists {
			return nil, fmt.Errorf("catalog row %d repeats icon %s", i+1, item.Icon)
		}
		c.items = append(c.items, item)
		c.byIcon[item.Icon] = item
	}
	return c, nil
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// At returns the item at the given position.
func (c *Catalog) At(position int) Item {
	return c.items[position]
}

// Items returns the catalog contents in position order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Item resolves an icon to its catalog record, so every textual mention of
// an emoji maps to the same canonical item.
func (c *Catalog) Item(icon string) (Item, error) {
	item, ok := c.byIcon[icon]
	if !ok {
		return Item{}, ErrUnknownItem
	}
	return item, nil
}

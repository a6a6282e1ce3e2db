package album

import (
	"strings"
	"testing"

	"github.com/susu3304/emojialbum/internal/catalog"
)

func largeCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	rows := []string{
		"🐶,Pets", "🐱,Pets", "🐭,Pets", "🐹,Pets",
		"🐍,Reptiles", "🦎,Reptiles", "🐢,Reptiles",
		"🦅,Birds", "🦉,Birds", "🐧,Birds",
	}
	c, err := catalog.Parse(strings.NewReader(strings.Join(rows, "\n") + "\n"))
	if err != nil {
		t.Fatalf("Failed to build test catalog: %v", err)
	}
	return c
}

func TestDrawReturnsDistinctItems(t *testing.T) {
	c := largeCatalog(t)

	// Draw repeatedly; each batch must have exactly 5 distinct items
	for i := 0; i < 50; i++ {
		items, err := Draw(c, 5)
		if err != nil {
			t.Fatalf("Draw() returned error: %v", err)
		}
		if len(items) != 5 {
			t.Fatalf("Draw() returned %d items, want 5", len(items))
		}
		seen := make(map[catalog.Item]bool, len(items))
		for _, item := range items {
			if seen[item] {
				t.Fatalf("Draw() repeated item %s in one batch", item.Icon)
			}
			seen[item] = true
		}
	}
}

func TestDrawWholeCatalog(t *testing.T) {
	c := largeCatalog(t)

	items, err := Draw(c, c.Len())
	if err != nil {
		t.Fatalf("Draw() returned error: %v", err)
	}
	if len(items) != c.Len() {
		t.Errorf("Draw() returned %d items, want %d", len(items), c.Len())
	}
}

func TestDrawErrors(t *testing.T) {
	c := largeCatalog(t)

	if _, err := Draw(c, c.Len()+1); err == nil {
		t.Error("Draw() past the catalog size succeeded, want error")
	}
	if _, err := Draw(c, 0); err == nil {
		t.Error("Draw(0) succeeded, want error")
	}
}

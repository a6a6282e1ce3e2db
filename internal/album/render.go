package album

import (
	"sort"
	"strings"

	"github.com/susu3304/emojialbum/internal/catalog"
)

// Render formats holdings as one section per collection. Collections and
// the emojis inside them follow catalog order, and quantity is shown by
// repeating the icon glyph, not by a count.
func Render(holdings Holdings) string {
	type entry struct {
		item     catalog.Item
		quantity int
	}
	entries := make([]entry, 0, len(holdings))
	for item, quantity := range holdings {
		entries = append(entries, entry{item, quantity})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].item.Position < entries[j].item.Position
	})

	var sections []string
	var icons []string
	collection := ""
	flush := func() {
		if len(icons) == 0 {
			return
		}
		sections = append(sections, collection+" Collection\n"+strings.Join(icons, " ")+"\n\n")
		icons = nil
	}
	for _, e := range entries {
		if e.item.Collection != collection {
			flush()
			collection = e.item.Collection
		}
		icons = append(icons, strings.Repeat(e.item.Icon, e.quantity))
	}
	flush()

	return strings.Join(sections, " ")
}

// RenderItems formats a drawn batch the same way a full album is rendered.
func RenderItems(items []catalog.Item) string {
	holdings := make(Holdings, len(items))
	for _, item := range items {
		holdings[item]++
	}
	return Render(holdings)
}

package api

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/gorilla/mux"
	"github.com/susu3304/emojialbum/internal/album"
	"github.com/susu3304/emojialbum/internal/catalog"
)

type catalogEntry struct {
	Icon       string `json:"icon"`
	Collection string `json:"collection"`
	Position   int    `json:"position"`
}

type albumEntry struct {
	Icon       string `json:"icon"`
	Collection string `json:"collection"`
	Quantity   int    `json:"quantity"`
}

type albumResponse struct {
	Username string       `json:"username"`
	Emojis   []albumEntry `json:"emojis"`
	Rendered string       `json:"rendered"`
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (a *API) handleCatalog(w http.ResponseWriter, r *http.Request) {
	items := a.catalog.Items()
	entries := make([]catalogEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, catalogEntry{
			Icon:       item.Icon,
			Collection: item.Collection,
			Position:   item.Position,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

func (a *API) handleAlbum(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username := vars["username"]
	if username == "" {
		http.Error(w, "missing username", http.StatusBadRequest)
		return
	}

	holdings := a.ledger.View(username)
	items := make([]catalog.Item, 0, len(holdings))
	for item := range holdings {
		items = append(items, item)
	}
	// Catalog order, same as the rendered album
	sort.Slice(items, func(i, j int) bool {
		return items[i].Position < items[j].Position
	})

	entries := make([]albumEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, albumEntry{
			Icon:       item.Icon,
			Collection: item.Collection,
			Quantity:   holdings[item],
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(albumResponse{
		Username: username,
		Emojis:   entries,
		Rendered: album.Render(holdings),
	})
}

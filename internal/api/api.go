package api

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/susu3304/emojialbum/internal/album"
	"github.com/susu3304/emojialbum/internal/catalog"
	"github.com/susu3304/emojialbum/internal/config"
)

// API is the read-only web surface: it exposes the catalog and individual
// albums for dashboards, but never mutates the ledger.
type API struct {
	router  *mux.Router
	catalog *catalog.Catalog
	ledger  *album.Ledger
	config  *config.Config
}

func New(cfg *config.Config, c *catalog.Catalog, ledger *album.Ledger) *API {
	api := &API{
		router:  mux.NewRouter(),
		catalog: c,
		ledger:  ledger,
		config:  cfg,
	}

	api.setupRoutes()
	return api
}

func (a *API) setupRoutes() {
	a.router.HandleFunc("/api/health", a.handleHealth).Methods("GET")
	a.router.HandleFunc("/api/catalog", a.handleCatalog).Methods("GET")
	a.router.HandleFunc("/api/users/{username}/album", a.handleAlbum).Methods("GET")
}

func (a *API) Start() error {
	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}

	handler := cors.New(corsOptions).Handler(a.router)

	log.Printf("API server listening on http://%s", a.config.WebBind)
	return http.ListenAndServe(a.config.WebBind, handler)
}

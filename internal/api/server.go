// Package api exposes the asset inventory over HTTP: bulk import, import
// history, asset listing and report downloads.
package api

import (
	"net/http"

	"github.com/grclabs/asset-api/internal/asset"
	"github.com/grclabs/asset-api/internal/importer"
	mw "github.com/grclabs/asset-api/internal/middleware"
	"github.com/grclabs/asset-api/internal/report"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Server holds the HTTP handlers and their service dependencies.
type Server struct {
	imports *importer.Service
	assets  *asset.Inventory
	reports *report.Service

	corsOrigin string
}

// NewServer creates the API server.
func NewServer(imports *importer.Service, assets *asset.Inventory, reports *report.Service, corsOrigin string) *Server {
	return &Server{
		imports:    imports,
		assets:     assets,
		reports:    reports,
		corsOrigin: corsOrigin,
	}
}

// Router builds the chi router with middleware and all API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.Logger)
	r.Use(chimw.Recoverer)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{s.corsOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "X-User-ID"},
		AllowCredentials: true,
	})
	r.Use(c.Handler)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/assets/{assetType}/import", s.handleImport)
		r.Post("/assets/{assetType}/import/preview", s.handlePreview)
		r.Get("/assets/{assetType}", s.handleListAssets)

		r.Get("/imports", s.handleImportHistory)
		r.Get("/imports/{id}", s.handleImportLog)

		r.Get("/reports/{assetType}", s.handleReport)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

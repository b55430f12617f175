// Package v1alpha1 exposes the tracker over HTTP. Routes live under
// /v1alpha1 and speak JSON; import endpoints accept the raw pasted
// text as the request body.
package v1alpha1

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/wftrack/loadout-api/internal/catalog"
	"github.com/wftrack/loadout-api/internal/errors"
	archivesvc "github.com/wftrack/loadout-api/internal/orchestrators/archive"
	buildsvc "github.com/wftrack/loadout-api/internal/orchestrators/builds"
	checksvc "github.com/wftrack/loadout-api/internal/orchestrators/checklist"
	todosvc "github.com/wftrack/loadout-api/internal/orchestrators/todo"
	wishsvc "github.com/wftrack/loadout-api/internal/orchestrators/wishlist"
)

// Config holds the dependencies for the API server
type Config struct {
	Document  *catalog.Document
	Catalog   *catalog.Index
	Builds    buildsvc.Service
	Checklist checksvc.Service
	Todo      todosvc.Service
	Wishlist  wishsvc.Service
	Archive   archivesvc.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Document == nil {
		vb.RequiredField("Document")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Builds == nil {
		vb.RequiredField("Builds")
	}
	if c.Checklist == nil {
		vb.RequiredField("Checklist")
	}
	if c.Todo == nil {
		vb.RequiredField("Todo")
	}
	if c.Wishlist == nil {
		vb.RequiredField("Wishlist")
	}
	if c.Archive == nil {
		vb.RequiredField("Archive")
	}

	return vb.Build()
}

// Server routes tracker API requests to the orchestrators
type Server struct {
	cfg    *Config
	router chi.Router
}

// NewServer creates a new API server with the provided dependencies
func NewServer(cfg *Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	s := &Server{
		cfg:    cfg,
		router: chi.NewRouter(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Route("/v1alpha1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/groupings", s.handleGetGroupings)
			r.Get("/items", s.handleGetItems)
			r.Get("/items/{itemID}", s.handleGetItem)
			r.Get("/search", s.handleSearch)
			r.Get("/suggestions", s.handleSuggestions)
		})

		r.Route("/builds", func(r chi.Router) {
			r.Get("/", s.handleListBuilds)
			r.Post("/", s.handleCreateBuild)
			r.Post("/import", s.handleImportBuilds)
			r.Put("/{buildID}", s.handleSaveBuild)
			r.Delete("/{buildID}", s.handleDeleteBuild)
		})

		r.Route("/checklist", func(r chi.Router) {
			r.Post("/import", s.handleImportChecked)
			r.Get("/{itemID}/checked", s.handleGetChecked)
			r.Put("/{itemID}/checked", s.handleSetChecked)
			r.Get("/{itemID}/values/{fieldKey}", s.handleGetValue)
			r.Put("/{itemID}/values/{fieldKey}", s.handleSetValue)
		})

		r.Route("/todo", func(r chi.Router) {
			r.Get("/", s.handleListTodo)
			r.Post("/", s.handlePutTodo)
			r.Delete("/{entryID}", s.handleDeleteTodo)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", s.handleListWishes)
			r.Post("/", s.handlePutWish)
			r.Delete("/{entryID}", s.handleDeleteWish)
		})

		r.Route("/archive", func(r chi.Router) {
			r.Get("/export", s.handleExport)
			r.Post("/import", s.handleImportArchive)
			r.Post("/clear", s.handleClear)
		})
	})

	s.router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// respondError maps a coded error onto its HTTP status
func respondError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	respondJSON(w, code.HTTPStatus(), map[string]string{
		"code":  code.String(),
		"error": errors.GetMessage(err),
	})
}

func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode request body")
	}
	return nil
}

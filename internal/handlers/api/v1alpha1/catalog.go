package v1alpha1

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wftrack/loadout-api/internal/errors"
)

// handleGetGroupings returns the grouping structure of the loaded
// catalog document, in canonical order
func (s *Server) handleGetGroupings(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.cfg.Document.Groupings)
}

// handleGetItems returns every deduplicated catalog record in catalog order
func (s *Server) handleGetItems(w http.ResponseWriter, _ *http.Request) {
	items := s.cfg.Catalog.Items()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"total": len(items),
	})
}

// handleGetItem returns a single catalog record by ID
func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	rec, ok := s.cfg.Catalog.Get(itemID)
	if !ok {
		respondError(w, errors.NotFoundf("item %s not found", itemID))
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// handleSearch returns the cross-grouping search aggregate
func (s *Server) handleSearch(w http.ResponseWriter, _ *http.Request) {
	items := s.cfg.Catalog.Search()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"total": len(items),
	})
}

// handleSuggestions returns the autocomplete name list
func (s *Server) handleSuggestions(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.cfg.Catalog.Suggestions())
}

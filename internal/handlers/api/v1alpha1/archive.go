package v1alpha1

import (
	"io"
	"net/http"

	"github.com/wftrack/loadout-api/internal/errors"
	archivesvc "github.com/wftrack/loadout-api/internal/orchestrators/archive"
)

// handleExport streams the full tracker state as one JSON document
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	out, err := s.cfg.Archive.Export(r.Context(), &archivesvc.ExportInput{})
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="tracker-export.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.Payload)
}

func (s *Server) handleImportArchive(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, errors.Wrap(err, "failed to read request body"))
		return
	}

	out, err := s.cfg.Archive.Import(r.Context(), &archivesvc.ImportInput{Payload: payload})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{
		"imported": out.Imported,
		"skipped":  out.Skipped,
	})
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	out, err := s.cfg.Archive.Clear(r.Context(), &archivesvc.ClearInput{})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"removed": out.Removed})
}

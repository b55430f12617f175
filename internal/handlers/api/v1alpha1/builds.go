package v1alpha1

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wftrack/loadout-api/internal/entities/wf"
	"github.com/wftrack/loadout-api/internal/errors"
	buildsvc "github.com/wftrack/loadout-api/internal/orchestrators/builds"
)

func (s *Server) handleListBuilds(w http.ResponseWriter, r *http.Request) {
	out, err := s.cfg.Builds.ListBuilds(r.Context(), &buildsvc.ListBuildsInput{})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out.Builds)
}

// handleCreateBuild returns a fresh template; the client persists it
// with a save once edited
func (s *Server) handleCreateBuild(w http.ResponseWriter, r *http.Request) {
	out, err := s.cfg.Builds.CreateBuild(r.Context(), &buildsvc.CreateBuildInput{})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"build": out.Build,
		"slots": out.Slots,
	})
}

func (s *Server) handleSaveBuild(w http.ResponseWriter, r *http.Request) {
	var build wf.BuildRecord
	if err := decodeJSON(r, &build); err != nil {
		respondError(w, err)
		return
	}
	build.ID = chi.URLParam(r, "buildID")

	out, err := s.cfg.Builds.SaveBuild(r.Context(), &buildsvc.SaveBuildInput{Build: &build})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"build": out.Build,
		"slots": out.Slots,
	})
}

func (s *Server) handleDeleteBuild(w http.ResponseWriter, r *http.Request) {
	out, err := s.cfg.Builds.DeleteBuild(r.Context(), &buildsvc.DeleteBuildInput{
		ID: chi.URLParam(r, "buildID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"removed": out.Removed})
}

// handleImportBuilds accepts the pasted export text verbatim as the
// request body
func (s *Server) handleImportBuilds(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, errors.Wrap(err, "failed to read request body"))
		return
	}

	out, err := s.cfg.Builds.ImportBuilds(r.Context(), &buildsvc.ImportBuildsInput{
		Payload: string(payload),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"builds":   out.Builds,
		"imported": len(out.Builds),
	})
}

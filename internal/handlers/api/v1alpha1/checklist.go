package v1alpha1

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wftrack/loadout-api/internal/errors"
	checksvc "github.com/wftrack/loadout-api/internal/orchestrators/checklist"
)

func (s *Server) handleGetChecked(w http.ResponseWriter, r *http.Request) {
	out, err := s.cfg.Checklist.GetChecked(r.Context(), &checksvc.GetCheckedInput{
		ItemID: chi.URLParam(r, "itemID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"checked": out.Checked})
}

func (s *Server) handleSetChecked(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Checked bool `json:"checked"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, err)
		return
	}

	_, err := s.cfg.Checklist.SetChecked(r.Context(), &checksvc.SetCheckedInput{
		ItemID:  chi.URLParam(r, "itemID"),
		Checked: body.Checked,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"checked": body.Checked})
}

func (s *Server) handleGetValue(w http.ResponseWriter, r *http.Request) {
	out, err := s.cfg.Checklist.GetValue(r.Context(), &checksvc.GetValueInput{
		ItemID:   chi.URLParam(r, "itemID"),
		FieldKey: chi.URLParam(r, "fieldKey"),
		Default:  r.URL.Query().Get("default"),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"value": out.Value})
}

func (s *Server) handleSetValue(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Value string `json:"value"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, err)
		return
	}

	_, err := s.cfg.Checklist.SetValue(r.Context(), &checksvc.SetValueInput{
		ItemID:   chi.URLParam(r, "itemID"),
		FieldKey: chi.URLParam(r, "fieldKey"),
		Value:    body.Value,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"value": body.Value})
}

// handleImportChecked accepts newline-separated item names as the
// request body and checks every catalog match
func (s *Server) handleImportChecked(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, errors.Wrap(err, "failed to read request body"))
		return
	}

	out, err := s.cfg.Checklist.ImportChecked(r.Context(), &checksvc.ImportCheckedInput{
		Payload: string(payload),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"checked":   out.Checked,
		"unmatched": out.Unmatched,
	})
}

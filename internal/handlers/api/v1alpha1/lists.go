package v1alpha1

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wftrack/loadout-api/internal/entities/wf"
	todosvc "github.com/wftrack/loadout-api/internal/orchestrators/todo"
	wishsvc "github.com/wftrack/loadout-api/internal/orchestrators/wishlist"
)

func (s *Server) handleListTodo(w http.ResponseWriter, r *http.Request) {
	out, err := s.cfg.Todo.ListEntries(r.Context(), &todosvc.ListEntriesInput{})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out.Entries)
}

func (s *Server) handlePutTodo(w http.ResponseWriter, r *http.Request) {
	var entry wf.TodoEntry
	if err := decodeJSON(r, &entry); err != nil {
		respondError(w, err)
		return
	}

	out, err := s.cfg.Todo.PutEntry(r.Context(), &todosvc.PutEntryInput{Entry: &entry})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out.Entry)
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	out, err := s.cfg.Todo.DeleteEntry(r.Context(), &todosvc.DeleteEntryInput{
		ID: chi.URLParam(r, "entryID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"removed": out.Removed})
}

func (s *Server) handleListWishes(w http.ResponseWriter, r *http.Request) {
	out, err := s.cfg.Wishlist.ListEntries(r.Context(), &wishsvc.ListEntriesInput{})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out.Entries)
}

func (s *Server) handlePutWish(w http.ResponseWriter, r *http.Request) {
	var entry wf.WishEntry
	if err := decodeJSON(r, &entry); err != nil {
		respondError(w, err)
		return
	}

	out, err := s.cfg.Wishlist.PutEntry(r.Context(), &wishsvc.PutEntryInput{Entry: &entry})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out.Entry)
}

func (s *Server) handleDeleteWish(w http.ResponseWriter, r *http.Request) {
	out, err := s.cfg.Wishlist.DeleteEntry(r.Context(), &wishsvc.DeleteEntryInput{
		ID: chi.URLParam(r, "entryID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"removed": out.Removed})
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/limjemmy/takenote/internal/notes"
)

func ListNotesHandler(svc *notes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		owner, err := notes.OwnerFromQuery(query.Get("user_id"), query.Get("google_id"))
		if err != nil {
			writeNoteError(w, http.StatusBadRequest, "Missing user identifier")
			return
		}

		result, err := svc.List(r.Context(), owner)
		if err != nil {
			writeNoteError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func CreateNoteHandler(svc *notes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserID   *int64  `json:"user_id"`
			GoogleID *string `json:"google_id"`
			Title    string  `json:"title"`
			Content  string  `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeNoteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		// Resolution failure is deferred to the service so an empty
		// title/content is reported first, whoever the caller is.
		owner, _ := notes.OwnerFromIDs(req.UserID, req.GoogleID)

		note, err := svc.Create(r.Context(), owner, req.Title, req.Content)
		switch {
		case errors.Is(err, notes.ErrMissingFields):
			writeNoteError(w, http.StatusBadRequest, "Title/content required")
			return
		case errors.Is(err, notes.ErrMissingOwner):
			writeNoteError(w, http.StatusBadRequest, "Missing user identifier")
			return
		case err != nil:
			writeNoteError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"noteId":  note.ID,
		})
	}
}

func UpdateNoteHandler(svc *notes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			writeNoteError(w, http.StatusNotFound, "Note not found")
			return
		}

		var req struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeNoteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		err = svc.Update(r.Context(), id, req.Title, req.Content)
		switch {
		case errors.Is(err, notes.ErrMissingFields):
			writeNoteError(w, http.StatusBadRequest, "Title/content required")
			return
		case errors.Is(err, notes.ErrNotFound):
			writeNoteError(w, http.StatusNotFound, "Note not found")
			return
		case err != nil:
			writeNoteError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
	}
}

func DeleteNoteHandler(svc *notes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			writeNoteError(w, http.StatusNotFound, "Note not found")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeNoteError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
	}
}

package todos

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
)

type createTodoRequest struct {
	Title  string `json:"title"`
	IsDone bool   `json:"is_done"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func ListHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := store.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "db error: "+err.Error())
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func CreateHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createTodoRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid json")
			return
		}

		title := strings.TrimSpace(body.Title)
		if title == "" {
			writeError(w, http.StatusUnprocessableEntity, ErrTitleRequired.Error())
			return
		}

		created, err := store.Create(r.Context(), title, body.IsDone)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "db error: "+err.Error())
			return
		}
		writeJSON(w, http.StatusOK, created)
	}
}

func DeleteHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.URL.Path, "/todos/")
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "Item not found")
			return
		}

		if err := store.Delete(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "Item not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "db error: "+err.Error())
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted successfully"})
	}
}

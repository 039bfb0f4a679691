package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"jobtrack-engine/internal/repo"
	"jobtrack-engine/internal/schema"
)

type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}

// writeRepoError maps the repo/schema error taxonomy onto statuses.
// Anything unrecognized is a store failure and stays a bare 500; no
// internals cross the boundary.
func writeRepoError(w http.ResponseWriter, r *http.Request, entity string, err error) {
	var ve *schema.ValidationError
	switch {
	case errors.As(err, &ve):
		WriteError(w, r, http.StatusBadRequest, "validation_error", ve.Error())
	case errors.Is(err, repo.ErrNotFound):
		WriteError(w, r, http.StatusNotFound, "not_found", entity+" not found")
	case errors.Is(err, repo.ErrBadRequest):
		WriteError(w, r, http.StatusBadRequest, "bad_request", "email is required")
	case errors.Is(err, repo.ErrEmailTaken):
		WriteError(w, r, http.StatusBadRequest, "email_taken", "Email is already in use")
	default:
		WriteError(w, r, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

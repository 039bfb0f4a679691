package httpapi

import (
	"net/http"

	"jobtrack-engine/internal/repo"
	"jobtrack-engine/internal/schema"
)

type RegisterHandler struct {
	Users repo.Users
}

func (h RegisterHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in schema.RegisterInput
	if !decodeBody(w, r, &in) {
		return
	}
	if _, err := h.Users.Register(r.Context(), in); err != nil {
		writeRepoError(w, r, "User", err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]any{"message": "User registered successfully"})
}

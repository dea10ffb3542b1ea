package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shaling-ai/data-insights/internal/core"
)

type SessionHandler struct {
	src core.DataSource
}

func NewSessionHandler(src core.DataSource) *SessionHandler {
	return &SessionHandler{src: src}
}

// GetSession returns one session with its sorted messages.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "uuid"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid uuid")
		return
	}

	session := h.src.SessionByUUID(id)
	if session == nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	writeJSON(w, http.StatusOK, session)
}

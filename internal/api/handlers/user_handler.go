package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shaling-ai/data-insights/internal/core"
)

type UserHandler struct {
	src core.DataSource
}

func NewUserHandler(src core.DataSource) *UserHandler {
	return &UserHandler{src: src}
}

// UserSummary is the list-view shape: the user's own fields plus the
// linked session count, without the nested graph.
type UserSummary struct {
	UUID             string     `json:"uuid"`
	NickName         string     `json:"nick_name"`
	Credits          float64    `json:"credits"`
	Email            string     `json:"email"`
	RegistrationTime *time.Time `json:"registration_time,omitempty"`
	SessionCount     int        `json:"session_count"`
}

// ListUsers returns user summaries in load order. An optional limit
// query parameter caps the list; zero or absent means all.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users := h.src.Users()

	limit := len(users)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		if n > 0 && n < limit {
			limit = n
		}
	}

	out := make([]UserSummary, 0, limit)
	for _, u := range users[:limit] {
		out = append(out, UserSummary{
			UUID:             u.UUID.String(),
			NickName:         u.NickName,
			Credits:          u.Credits,
			Email:            u.Email,
			RegistrationTime: u.RegistrationTime,
			SessionCount:     len(u.Sessions),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// GetUser returns one user with the linked sessions and their messages.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "uuid"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid uuid")
		return
	}

	user := h.src.UserByUUID(id)
	if user == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

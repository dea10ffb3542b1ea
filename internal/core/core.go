package core

import (
	"github.com/google/uuid"

	"github.com/shaling-ai/data-insights/internal/models"
)

// DataSource exposes a loaded dataset to the consumers (report, API, TUI,
// export). It abstracts the CSV loader so higher layers never depend on
// where the records came from.
type DataSource interface {
	Users() []*models.User
	Sessions() []*models.Session
	SessionTexts() []*models.SessionText

	// Lookups return nil when no record carries the given UUID.
	UserByUUID(id uuid.UUID) *models.User
	SessionByUUID(id uuid.UUID) *models.Session

	Stats() Stats
}

// Stats summarizes a loaded dataset.
type Stats struct {
	Users                int `json:"users"`
	Sessions             int `json:"sessions"`
	SessionTexts         int `json:"session_texts"`
	UsersWithSessions    int `json:"users_with_sessions"`
	SessionsWithMessages int `json:"sessions_with_messages"`
}

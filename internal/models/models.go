package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered caller loaded from the user export.
type User struct {
	UUID             uuid.UUID  `json:"uuid"`
	NickName         string     `json:"nick_name"`
	Credits          float64    `json:"credits"`
	Email            string     `json:"email"`
	RegistrationTime *time.Time `json:"registration_time,omitempty"` // created_at column in the export

	// Populated by the loader when relationships are linked.
	Sessions []*Session `json:"sessions,omitempty"`
}

// SessionIDs returns the UUIDs of the sessions linked to this user.
func (u *User) SessionIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(u.Sessions))
	for _, s := range u.Sessions {
		ids = append(ids, s.UUID)
	}
	return ids
}

// Session represents one phone call session.
type Session struct {
	UUID                 uuid.UUID  `json:"uuid"`
	FromUserUUID         *uuid.UUID `json:"from_user_uuid,omitempty"` // caller, unset for orphaned sessions
	SessionType          int        `json:"session_type"`
	BeginAt              *time.Time `json:"begin_at,omitempty"`
	EndAt                *time.Time `json:"end_at,omitempty"`
	Duration             float64    `json:"duration"` // seconds
	FromLanguage         string     `json:"from_language"`
	ToLanguage           string     `json:"to_language"`
	IsPaid               bool       `json:"is_paid"`
	IsTranslationEnabled bool       `json:"is_translation_enabled"`
	IsAICall             bool       `json:"is_ai_call"`

	// Populated by the loader when relationships are linked.
	Messages []*SessionText `json:"messages,omitempty"`
}

// SessionText represents a single transcribed utterance within a session.
type SessionText struct {
	ID             int        `json:"id"`
	UUID           uuid.UUID  `json:"uuid"`
	SessionUUID    uuid.UUID  `json:"session_uuid"`
	StartAt        *time.Time `json:"start_at,omitempty"`
	Text           string     `json:"text"`
	TextTranslated string     `json:"text_translated"`
	Speaker        int        `json:"speaker"`
	IsInput        int        `json:"is_input"`
	Type           int        `json:"type"`
}

// Package export writes a bounded JSON snapshot of a loaded dataset,
// suitable for sharing samples without shipping the raw CSV exports.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shaling-ai/data-insights/internal/core"
	"github.com/shaling-ai/data-insights/internal/models"
)

// Options bounds the snapshot size. Zero or negative limits mean no
// limit on that axis.
type Options struct {
	MaxUsers              int
	MaxSessionsPerUser    int
	MaxMessagesPerSession int
}

// Snapshot is the top-level export structure.
type Snapshot struct {
	Metadata Metadata     `json:"metadata"`
	Users    []UserExport `json:"users"`
}

// Metadata describes when and from what the snapshot was built.
type Metadata struct {
	ExportVersion string     `json:"export_version"`
	ExportDate    string     `json:"export_date"`
	AppName       string     `json:"app_name"`
	Stats         core.Stats `json:"stats"`
}

// UserExport represents one user in the snapshot. SessionCount is the
// full linked count even when the sessions list is truncated.
type UserExport struct {
	UUID             string          `json:"uuid"`
	NickName         string          `json:"nick_name"`
	Credits          float64         `json:"credits"`
	Email            string          `json:"email"`
	RegistrationTime *time.Time      `json:"registration_time,omitempty"`
	SessionCount     int             `json:"session_count"`
	Sessions         []SessionExport `json:"sessions"`
}

// SessionExport represents one session in the snapshot. MessageCount is
// the full linked count even when the messages list is truncated.
type SessionExport struct {
	UUID                 string          `json:"uuid"`
	SessionType          int             `json:"session_type"`
	BeginAt              *time.Time      `json:"begin_at,omitempty"`
	EndAt                *time.Time      `json:"end_at,omitempty"`
	Duration             float64         `json:"duration"`
	FromLanguage         string          `json:"from_language"`
	ToLanguage           string          `json:"to_language"`
	IsPaid               bool            `json:"is_paid"`
	IsTranslationEnabled bool            `json:"is_translation_enabled"`
	IsAICall             bool            `json:"is_ai_call"`
	MessageCount         int             `json:"message_count"`
	Messages             []MessageExport `json:"messages"`
}

// MessageExport represents one message in the snapshot.
type MessageExport struct {
	ID             int        `json:"id"`
	UUID           string     `json:"uuid"`
	StartAt        *time.Time `json:"start_at,omitempty"`
	Text           string     `json:"text"`
	TextTranslated string     `json:"text_translated,omitempty"`
	Speaker        int        `json:"speaker"`
	IsInput        int        `json:"is_input"`
	Type           int        `json:"type"`
}

// Build assembles a snapshot from the data source, truncating each
// level to the configured limits. Users keep their load order;
// sessions and messages keep their linked order.
func Build(src core.DataSource, opts Options) Snapshot {
	users := src.Users()
	limit := len(users)
	if opts.MaxUsers > 0 && opts.MaxUsers < limit {
		limit = opts.MaxUsers
	}

	out := Snapshot{
		Metadata: Metadata{
			ExportVersion: "1.0",
			ExportDate:    time.Now().Format(time.RFC3339),
			AppName:       "data-insights",
			Stats:         src.Stats(),
		},
		Users: make([]UserExport, 0, limit),
	}

	for _, u := range users[:limit] {
		out.Users = append(out.Users, buildUser(u, opts))
	}
	return out
}

func buildUser(u *models.User, opts Options) UserExport {
	limit := len(u.Sessions)
	if opts.MaxSessionsPerUser > 0 && opts.MaxSessionsPerUser < limit {
		limit = opts.MaxSessionsPerUser
	}

	ue := UserExport{
		UUID:             u.UUID.String(),
		NickName:         u.NickName,
		Credits:          u.Credits,
		Email:            u.Email,
		RegistrationTime: u.RegistrationTime,
		SessionCount:     len(u.Sessions),
		Sessions:         make([]SessionExport, 0, limit),
	}
	for _, s := range u.Sessions[:limit] {
		ue.Sessions = append(ue.Sessions, buildSession(s, opts))
	}
	return ue
}

func buildSession(s *models.Session, opts Options) SessionExport {
	limit := len(s.Messages)
	if opts.MaxMessagesPerSession > 0 && opts.MaxMessagesPerSession < limit {
		limit = opts.MaxMessagesPerSession
	}

	se := SessionExport{
		UUID:                 s.UUID.String(),
		SessionType:          s.SessionType,
		BeginAt:              s.BeginAt,
		EndAt:                s.EndAt,
		Duration:             s.Duration,
		FromLanguage:         s.FromLanguage,
		ToLanguage:           s.ToLanguage,
		IsPaid:               s.IsPaid,
		IsTranslationEnabled: s.IsTranslationEnabled,
		IsAICall:             s.IsAICall,
		MessageCount:         len(s.Messages),
		Messages:             make([]MessageExport, 0, limit),
	}
	for _, m := range s.Messages[:limit] {
		se.Messages = append(se.Messages, MessageExport{
			ID:             m.ID,
			UUID:           m.UUID.String(),
			StartAt:        m.StartAt,
			Text:           m.Text,
			TextTranslated: m.TextTranslated,
			Speaker:        m.Speaker,
			IsInput:        m.IsInput,
			Type:           m.Type,
		})
	}
	return se
}

// WriteFile builds the snapshot and writes it as indented JSON.
func WriteFile(path string, src core.DataSource, opts Options) error {
	snapshot := Build(src, opts)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// DefaultFilename returns a timestamped snapshot filename.
func DefaultFilename() string {
	return fmt.Sprintf("insights_%s.json", time.Now().Format("20060102_150405"))
}

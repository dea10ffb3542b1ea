package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/shaling-ai/data-insights/internal/core"
	"github.com/shaling-ai/data-insights/internal/models"
)

type fakeSource struct {
	users    []*models.User
	sessions []*models.Session
	texts    []*models.SessionText
}

func (f *fakeSource) Users() []*models.User { return f.users }

func (f *fakeSource) Sessions() []*models.Session { return f.sessions }

func (f *fakeSource) SessionTexts() []*models.SessionText { return f.texts }

func (f *fakeSource) UserByUUID(id uuid.UUID) *models.User {
	for _, u := range f.users {
		if u.UUID == id {
			return u
		}
	}
	return nil
}
func (f *fakeSource) SessionByUUID(id uuid.UUID) *models.Session {
	for _, s := range f.sessions {
		if s.UUID == id {
			return s
		}
	}
	return nil
}
func (f *fakeSource) Stats() core.Stats {
	st := core.Stats{Users: len(f.users), Sessions: len(f.sessions), SessionTexts: len(f.texts)}
	for _, u := range f.users {
		if len(u.Sessions) > 0 {
			st.UsersWithSessions++
		}
	}
	for _, s := range f.sessions {
		if len(s.Messages) > 0 {
			st.SessionsWithMessages++
		}
	}
	return st
}

// newFakeSource builds one user with one session holding three messages
// plus a second bare user.
func newFakeSource() *fakeSource {
	begin := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	session := &models.Session{
		UUID:    uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"),
		BeginAt: &begin,
	}
	for i := 1; i <= 3; i++ {
		session.Messages = append(session.Messages, &models.SessionText{
			ID:          i,
			UUID:        uuid.New(),
			SessionUUID: session.UUID,
			Text:        "msg",
		})
	}
	ada := &models.User{
		UUID:     uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		NickName: "ada",
		Sessions: []*models.Session{session},
	}
	grace := &models.User{
		UUID:     uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		NickName: "grace",
	}
	return &fakeSource{
		users:    []*models.User{ada, grace},
		sessions: []*models.Session{session},
		texts:    session.Messages,
	}
}

func TestBuildTruncates(t *testing.T) {
	src := newFakeSource()

	snap := Build(src, Options{MaxUsers: 1, MaxSessionsPerUser: 1, MaxMessagesPerSession: 2})

	if len(snap.Users) != 1 {
		t.Fatalf("got %d users, want 1", len(snap.Users))
	}
	u := snap.Users[0]
	if u.NickName != "ada" {
		t.Errorf("user = %q, want %q", u.NickName, "ada")
	}
	if u.SessionCount != 1 || len(u.Sessions) != 1 {
		t.Fatalf("session count/len = %d/%d, want 1/1", u.SessionCount, len(u.Sessions))
	}
	s := u.Sessions[0]
	if s.MessageCount != 3 {
		t.Errorf("MessageCount = %d, want 3", s.MessageCount)
	}
	if len(s.Messages) != 2 {
		t.Errorf("got %d messages, want 2 after truncation", len(s.Messages))
	}
}

func TestBuildNoLimits(t *testing.T) {
	src := newFakeSource()

	snap := Build(src, Options{})

	if len(snap.Users) != 2 {
		t.Fatalf("got %d users, want 2", len(snap.Users))
	}
	if got := len(snap.Users[0].Sessions[0].Messages); got != 3 {
		t.Errorf("got %d messages, want 3", got)
	}
	if snap.Metadata.Stats.Users != 2 {
		t.Errorf("stats users = %d, want 2", snap.Metadata.Stats.Users)
	}
	if snap.Metadata.ExportVersion != "1.0" {
		t.Errorf("export version = %q, want %q", snap.Metadata.ExportVersion, "1.0")
	}
}

func TestDefaultFilename(t *testing.T) {
	name := DefaultFilename()
	if !strings.HasPrefix(name, "insights_") || !strings.HasSuffix(name, ".json") {
		t.Errorf("DefaultFilename() = %q, want insights_*.json", name)
	}
}

func TestWriteFile(t *testing.T) {
	src := newFakeSource()
	path := filepath.Join(t.TempDir(), "snapshot.json")

	if err := WriteFile(path, src, Options{MaxUsers: 1}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	if snap.Metadata.AppName != "data-insights" {
		t.Errorf("app name = %q", snap.Metadata.AppName)
	}
	if len(snap.Users) != 1 {
		t.Errorf("got %d users, want 1", len(snap.Users))
	}
}

package dataset

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/shaling-ai/data-insights/internal/core"
	"github.com/shaling-ai/data-insights/internal/logging"
	"github.com/shaling-ai/data-insights/internal/models"
)

// Loader reads the CSV exports into memory and maintains UUID indexes
// over the retained records. The slices and records it hands out are
// shared views; callers must treat them as read-only.
type Loader struct {
	cfg Config

	users        []*models.User
	sessions     []*models.Session
	sessionTexts []*models.SessionText

	usersByUUID    map[uuid.UUID]*models.User
	sessionsByUUID map[uuid.UUID]*models.Session
}

var _ core.DataSource = (*Loader)(nil)

// NewLoader constructs a Loader with empty collections.
func NewLoader(cfg Config) *Loader {
	return &Loader{
		cfg:            cfg.withDefaults(),
		usersByUUID:    make(map[uuid.UUID]*models.User),
		sessionsByUUID: make(map[uuid.UUID]*models.Session),
	}
}

// LoadAll loads users, sessions and session texts in that order, then
// links the relationships unless opts.SkipLink is set. Each load
// replaces that collection wholesale.
func (l *Loader) LoadAll(opts LoadOptions) error {
	opts = opts.withDefaults()

	if _, err := l.LoadUsers(opts.UserFile); err != nil {
		return err
	}
	if _, err := l.LoadSessions(opts.SessionFile); err != nil {
		return err
	}
	if _, err := l.LoadSessionTexts(opts.SessionTextFile); err != nil {
		return err
	}
	if !opts.SkipLink {
		l.LinkAll()
	}
	return nil
}

// LoadUsers reads the user file, keeps only users registered within the
// trailing window and rebuilds the user index. Duplicate UUIDs all stay
// in the collection; the index keeps the last one read.
func (l *Loader) LoadUsers(filename string) ([]*models.User, error) {
	var all []*models.User
	skipped := 0
	err := forEachRow(filepath.Join(l.cfg.DataDir, filename), func(r row) {
		u, err := parseUser(r)
		if err != nil {
			skipped++
			logging.Logger.Debugf("dataset: %v", err)
			return
		}
		all = append(all, u)
	})
	if err != nil {
		return nil, err
	}

	l.users = filterByRegistration(all, l.cfg.Now(), l.cfg.RegistrationDays)
	l.usersByUUID = make(map[uuid.UUID]*models.User, len(l.users))
	for _, u := range l.users {
		l.usersByUUID[u.UUID] = u
	}

	logging.Logger.Infof("dataset: loaded %d users (%d parsed, %d skipped, window %dd)",
		len(l.users), len(all), skipped, l.cfg.RegistrationDays)
	return l.users, nil
}

// LoadSessions reads the session file and rebuilds the session index.
func (l *Loader) LoadSessions(filename string) ([]*models.Session, error) {
	var all []*models.Session
	skipped := 0
	err := forEachRow(filepath.Join(l.cfg.DataDir, filename), func(r row) {
		s, err := parseSession(r)
		if err != nil {
			skipped++
			logging.Logger.Debugf("dataset: %v", err)
			return
		}
		all = append(all, s)
	})
	if err != nil {
		return nil, err
	}

	l.sessions = all
	l.sessionsByUUID = make(map[uuid.UUID]*models.Session, len(all))
	for _, s := range all {
		l.sessionsByUUID[s.UUID] = s
	}

	logging.Logger.Infof("dataset: loaded %d sessions (%d skipped)", len(all), skipped)
	return l.sessions, nil
}

// LoadSessionTexts reads the session text file.
func (l *Loader) LoadSessionTexts(filename string) ([]*models.SessionText, error) {
	var all []*models.SessionText
	skipped := 0
	err := forEachRow(filepath.Join(l.cfg.DataDir, filename), func(r row) {
		t, err := parseSessionText(r)
		if err != nil {
			skipped++
			logging.Logger.Debugf("dataset: %v", err)
			return
		}
		all = append(all, t)
	})
	if err != nil {
		return nil, err
	}

	l.sessionTexts = all
	logging.Logger.Infof("dataset: loaded %d session texts (%d skipped)", len(all), skipped)
	return l.sessionTexts, nil
}

// LinkAll rebuilds both relationship passes from the current
// collections: texts onto sessions first, then sessions onto users.
// Calling it again after a reload reflects the new state.
func (l *Loader) LinkAll() {
	linkTextsToSessions(l.sessions, l.sessionTexts)
	linkSessionsToUsers(l.users, l.sessions)
}

// filterByRegistration keeps users whose registration time is set and
// falls on or after now minus the window. Days are fixed 24h spans.
func filterByRegistration(users []*models.User, now time.Time, windowDays int) []*models.User {
	cutoff := now.Add(-time.Duration(windowDays) * 24 * time.Hour)
	kept := make([]*models.User, 0, len(users))
	for _, u := range users {
		if u.RegistrationTime != nil && !u.RegistrationTime.Before(cutoff) {
			kept = append(kept, u)
		}
	}
	return kept
}

// Users returns the retained users in file order.
func (l *Loader) Users() []*models.User { return l.users }

// Sessions returns all sessions in file order.
func (l *Loader) Sessions() []*models.Session { return l.sessions }

// SessionTexts returns all session texts in file order.
func (l *Loader) SessionTexts() []*models.SessionText { return l.sessionTexts }

// UserByUUID returns the indexed user or nil when the UUID is unknown.
func (l *Loader) UserByUUID(id uuid.UUID) *models.User { return l.usersByUUID[id] }

// SessionByUUID returns the indexed session or nil when the UUID is
// unknown.
func (l *Loader) SessionByUUID(id uuid.UUID) *models.Session { return l.sessionsByUUID[id] }

// Stats counts the loaded collections. Relationship counts are zero
// until LinkAll has run.
func (l *Loader) Stats() core.Stats {
	st := core.Stats{
		Users:        len(l.users),
		Sessions:     len(l.sessions),
		SessionTexts: len(l.sessionTexts),
	}
	for _, u := range l.users {
		if len(u.Sessions) > 0 {
			st.UsersWithSessions++
		}
	}
	for _, s := range l.sessions {
		if len(s.Messages) > 0 {
			st.SessionsWithMessages++
		}
	}
	return st
}

package dataset

import (
	"sort"

	"github.com/google/uuid"

	"github.com/shaling-ai/data-insights/internal/models"
)

// messageOrder is the sort key for messages inside a session: the
// start_at epoch seconds when the timestamp is set, the raw id
// otherwise. A single int64 axis keeps mixed groups comparable.
func messageOrder(t *models.SessionText) int64 {
	if t.StartAt != nil {
		return t.StartAt.Unix()
	}
	return int64(t.ID)
}

// sessionBefore orders a user's sessions by begin_at ascending, with
// unset timestamps first.
func sessionBefore(a, b *models.Session) bool {
	switch {
	case a.BeginAt == nil && b.BeginAt == nil:
		return false
	case a.BeginAt == nil:
		return true
	case b.BeginAt == nil:
		return false
	}
	return a.BeginAt.Before(*b.BeginAt)
}

// linkTextsToSessions groups the texts by session_uuid and assigns each
// session its sorted message list. Every session is assigned, including
// those with no texts; texts whose session_uuid matches no session are
// simply never attached.
func linkTextsToSessions(sessions []*models.Session, texts []*models.SessionText) {
	bySession := make(map[uuid.UUID][]*models.SessionText)
	for _, t := range texts {
		bySession[t.SessionUUID] = append(bySession[t.SessionUUID], t)
	}
	for _, s := range sessions {
		messages := bySession[s.UUID]
		sort.SliceStable(messages, func(i, j int) bool {
			return messageOrder(messages[i]) < messageOrder(messages[j])
		})
		s.Messages = messages
	}
}

// linkSessionsToUsers groups the sessions by from_user_uuid and assigns
// each retained user its sorted session list. Sessions without a caller
// UUID stay orphaned; sessions pointing at filtered-out users are never
// attached.
func linkSessionsToUsers(users []*models.User, sessions []*models.Session) {
	byUser := make(map[uuid.UUID][]*models.Session)
	for _, s := range sessions {
		if s.FromUserUUID == nil {
			continue
		}
		byUser[*s.FromUserUUID] = append(byUser[*s.FromUserUUID], s)
	}
	for _, u := range users {
		group := byUser[u.UUID]
		sort.SliceStable(group, func(i, j int) bool {
			return sessionBefore(group[i], group[j])
		})
		u.Sessions = group
	}
}

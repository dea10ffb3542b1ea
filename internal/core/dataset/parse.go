package dataset

import (
	"github.com/shaling-ai/data-insights/internal/models"
)

// parseUser builds a User from one CSV row. Only the uuid column is
// required; every other field degrades to its zero value when absent
// or unparsable. The created_at column becomes RegistrationTime.
func parseUser(r row) (*models.User, error) {
	id, err := requiredUUID(r, "uuid")
	if err != nil {
		return nil, err
	}
	return &models.User{
		UUID:             id,
		NickName:         r.get("nick_name"),
		Credits:          floatOr(r, "credits", 0),
		Email:            r.get("email"),
		RegistrationTime: optionalTime(r, "created_at"),
	}, nil
}

// parseSession builds a Session from one CSV row. Only the uuid column
// is required; a missing or invalid from_user_uuid leaves the session
// orphaned rather than discarding it.
func parseSession(r row) (*models.Session, error) {
	id, err := requiredUUID(r, "uuid")
	if err != nil {
		return nil, err
	}
	return &models.Session{
		UUID:                 id,
		FromUserUUID:         optionalUUID(r, "from_user_uuid"),
		SessionType:          intOr(r, "session_type", 0),
		BeginAt:              optionalTime(r, "begin_at"),
		EndAt:                optionalTime(r, "end_at"),
		Duration:             floatOr(r, "duration", 0),
		FromLanguage:         r.get("from_language"),
		ToLanguage:           r.get("to_language"),
		IsPaid:               boolOr(r, "is_paid", false),
		IsTranslationEnabled: boolOr(r, "is_translation_enabled", false),
		IsAICall:             boolOr(r, "is_ai_call", false),
	}, nil
}

// parseSessionText builds a SessionText from one CSV row. id, uuid and
// session_uuid are required.
func parseSessionText(r row) (*models.SessionText, error) {
	id, err := requiredInt(r, "id")
	if err != nil {
		return nil, err
	}
	textUUID, err := requiredUUID(r, "uuid")
	if err != nil {
		return nil, err
	}
	sessionUUID, err := requiredUUID(r, "session_uuid")
	if err != nil {
		return nil, err
	}
	return &models.SessionText{
		ID:             id,
		UUID:           textUUID,
		SessionUUID:    sessionUUID,
		StartAt:        optionalTime(r, "start_at"),
		Text:           r.get("text"),
		TextTranslated: r.get("text_translated"),
		Speaker:        intOr(r, "speaker", 0),
		IsInput:        intOr(r, "is_input", 0),
		Type:           intOr(r, "type", 0),
	}, nil
}

package domain

import (
	"context"
	"time"
)

// Session represents a conference talk. It belongs to exactly one event and
// one speaker; both foreign keys are required and store-enforced.
// swagger:model Session
type Session struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	EventID     int64     `json:"event_id"`
	SpeakerID   int64     `json:"speaker_id"`
}

// SessionWithSpeaker bundles a session with its speaker.
type SessionWithSpeaker struct {
	*Session
	Speaker *Speaker `json:"speaker"`
}

// SessionRepository defines the interface for session storage.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	// ListByEventID returns the event's sessions, each joined with its speaker.
	ListByEventID(ctx context.Context, eventID int64) ([]*SessionWithSpeaker, error)
}

// SessionService defines the business logic for session management.
type SessionService interface {
	Create(ctx context.Context, session *Session) error
	ListByEvent(ctx context.Context, eventID int64) ([]*SessionWithSpeaker, error)
}

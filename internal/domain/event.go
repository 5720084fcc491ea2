package domain

import (
	"context"
	"time"
)

// Event represents a conference event.
// swagger:model Event
type Event struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventWithSessions bundles an event with its sessions. Sessions carry their
// speaker when loaded through GetByID or ListByEventID.
type EventWithSessions struct {
	*Event
	Sessions []*SessionWithSpeaker `json:"sessions"`
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id int64) (*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id int64) error
}

// EventService defines the business logic for event management.
type EventService interface {
	Create(ctx context.Context, event *Event) error
	// List returns all events, each with its nested sessions.
	List(ctx context.Context) ([]*EventWithSessions, error)
	// GetByID returns the event with its sessions, each session with its speaker.
	GetByID(ctx context.Context, id int64) (*EventWithSessions, error)
	Update(ctx context.Context, event *Event) (*Event, error)
	Delete(ctx context.Context, id int64) error
}

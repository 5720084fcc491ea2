package domain

import (
	"context"
	"time"
)

// Registration represents a user's registration for an event. A (user, event)
// pair registers at most once; the store enforces the uniqueness.
// swagger:model Registration
type Registration struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	EventID   int64     `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

// RegistrationUser is the subset of user fields exposed on registration listings.
type RegistrationUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegistrationWithUser bundles a registration with its user.
type RegistrationWithUser struct {
	*Registration
	User RegistrationUser `json:"user"`
}

// RegistrationRepository defines the interface for registration storage.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	ListByEventID(ctx context.Context, eventID int64) ([]*RegistrationWithUser, error)
}

// RegistrationService defines attendee registration operations.
type RegistrationService interface {
	// Register registers the user for the event. A duplicate (user, event) pair
	// returns ErrDuplicateRegistration.
	Register(ctx context.Context, eventID, userID int64) (*Registration, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*RegistrationWithUser, error)
}

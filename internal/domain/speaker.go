package domain

import "context"

// Speaker represents a speaker at the conference. UserID optionally links the
// speaker back to a registered user account.
// swagger:model Speaker
type Speaker struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Bio    string `json:"bio"`
	UserID *int64 `json:"user_id"`
}

// SpeakerRepository defines the interface for speaker storage.
type SpeakerRepository interface {
	Create(ctx context.Context, speaker *Speaker) error
	List(ctx context.Context) ([]*Speaker, error)
}

// SpeakerService defines the business logic for speaker management.
type SpeakerService interface {
	Create(ctx context.Context, speaker *Speaker) error
	List(ctx context.Context) ([]*Speaker, error)
}

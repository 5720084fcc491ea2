package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"conferencehub/internal/domain"
)

type sessionService struct {
	sessionRepo    domain.SessionRepository
	contextTimeout time.Duration
}

// NewSessionService creates a SessionService with the given repository.
func NewSessionService(sessionRepo domain.SessionRepository, timeout time.Duration) domain.SessionService {
	return &sessionService{
		sessionRepo:    sessionRepo,
		contextTimeout: timeout,
	}
}

func (s *sessionService) Create(ctx context.Context, session *domain.Session) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !session.EndTime.After(session.StartTime) {
		return fmt.Errorf("%w: end_time must be after start_time", domain.ErrInvalidInput)
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		if errors.Is(err, domain.ErrForeignKey) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (s *sessionService) ListByEvent(ctx context.Context, eventID int64) ([]*domain.SessionWithSpeaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sessions, err := s.sessionRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

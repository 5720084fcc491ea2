package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"conferencehub/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	sessionRepo    domain.SessionRepository
	contextTimeout time.Duration
}

// NewEventService creates an EventService with the given repositories.
func NewEventService(eventRepo domain.EventRepository, sessionRepo domain.SessionRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		sessionRepo:    sessionRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) Create(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	return s.eventRepo.Create(ctx, event)
}

func (s *eventService) List(ctx context.Context) ([]*domain.EventWithSessions, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	result := make([]*domain.EventWithSessions, 0, len(events))
	for _, event := range events {
		sessions, err := s.sessionRepo.ListByEventID(ctx, event.ID)
		if err != nil {
			return nil, fmt.Errorf("list sessions for event %d: %w", event.ID, err)
		}
		result = append(result, &domain.EventWithSessions{Event: event, Sessions: sessions})
	}
	return result, nil
}

func (s *eventService) GetByID(ctx context.Context, id int64) (*domain.EventWithSessions, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	sessions, err := s.sessionRepo.ListByEventID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return &domain.EventWithSessions{Event: event, Sessions: sessions}, nil
}

func (s *eventService) Update(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event.UpdatedAt = time.Now()
	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

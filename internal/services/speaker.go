package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"conferencehub/internal/domain"
)

type speakerService struct {
	speakerRepo    domain.SpeakerRepository
	contextTimeout time.Duration
}

// NewSpeakerService creates a SpeakerService with the given repository.
func NewSpeakerService(speakerRepo domain.SpeakerRepository, timeout time.Duration) domain.SpeakerService {
	return &speakerService{
		speakerRepo:    speakerRepo,
		contextTimeout: timeout,
	}
}

func (s *speakerService) Create(ctx context.Context, speaker *domain.Speaker) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	speaker.Name = strings.TrimSpace(speaker.Name)
	if speaker.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if err := s.speakerRepo.Create(ctx, speaker); err != nil {
		if errors.Is(err, domain.ErrForeignKey) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("create speaker: %w", err)
	}
	return nil
}

func (s *speakerService) List(ctx context.Context) ([]*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	speakers, err := s.speakerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list speakers: %w", err)
	}
	return speakers, nil
}

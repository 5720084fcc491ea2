package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"conferencehub/internal/domain"
)

type registrationService struct {
	registrationRepo domain.RegistrationRepository
	eventRepo        domain.EventRepository
	userRepo         domain.UserRepository
	emailService     domain.EmailService
	logger           *slog.Logger
	contextTimeout   time.Duration
}

// NewRegistrationService creates a RegistrationService. emailService may be nil
// to disable confirmation emails.
func NewRegistrationService(
	registrationRepo domain.RegistrationRepository,
	eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.RegistrationService {
	return &registrationService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		userRepo:         userRepo,
		emailService:     emailService,
		logger:           logger,
		contextTimeout:   timeout,
	}
}

func (s *registrationService) Register(ctx context.Context, eventID, userID int64) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// No existence pre-check: the store's unique and foreign-key constraints
	// are the source of truth, which closes the check-then-insert race.
	reg := &domain.Registration{
		UserID:    userID,
		EventID:   eventID,
		CreatedAt: time.Now(),
	}
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrDuplicateRegistration) {
			return nil, domain.ErrDuplicateRegistration
		}
		if errors.Is(err, domain.ErrForeignKey) {
			return nil, domain.ErrForeignKey
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.sendConfirmation(ctx, reg)
	return reg, nil
}

// sendConfirmation emails the attendee about their new registration.
// Best-effort: failures are logged and never surfaced to the caller.
func (s *registrationService) sendConfirmation(ctx context.Context, reg *domain.Registration) {
	if s.emailService == nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, reg.UserID)
	if err != nil {
		s.logger.WarnContext(ctx, "confirmation email skipped", "registration_id", reg.ID, "err", err)
		return
	}
	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		s.logger.WarnContext(ctx, "confirmation email skipped", "registration_id", reg.ID, "err", err)
		return
	}
	data := &domain.RegistrationEmailData{
		Email:     user.Email,
		Name:      user.Name,
		EventName: event.Name,
		EventDate: event.Date.Format("January 2, 2006"),
	}
	if err := s.emailService.SendRegistrationConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "confirmation email failed", "registration_id", reg.ID, "err", err)
	}
}

func (s *registrationService) ListByEvent(ctx context.Context, eventID int64) ([]*domain.RegistrationWithUser, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	regs, err := s.registrationRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}

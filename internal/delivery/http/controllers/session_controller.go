package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/domain"
)

// CreateSessionRequest is the request body for POST /sessions. Both foreign
// keys are required; the store rejects references to missing rows.
type CreateSessionRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	EventID     int64     `json:"event_id"`
	SpeakerID   int64     `json:"speaker_id"`
}

// Validate implements helpers.Validator.
func (s CreateSessionRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Title) == "" {
		errs = append(errs, "title is required")
	}
	if s.StartTime.IsZero() {
		errs = append(errs, "start_time is required")
	}
	if s.EndTime.IsZero() {
		errs = append(errs, "end_time is required")
	}
	if s.EventID <= 0 {
		errs = append(errs, "event_id is required")
	}
	if s.SpeakerID <= 0 {
		errs = append(errs, "speaker_id is required")
	}
	return errs
}

type SessionController struct {
	Logger  *slog.Logger
	Service domain.SessionService
}

func NewSessionController(logger *slog.Logger, svc domain.SessionService) *SessionController {
	return &SessionController{Logger: logger, Service: svc}
}

// Create godoc
// @Summary Create a session
// @Description Create a talk belonging to one event and one speaker.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateSessionRequest true "Session data"
// @Success 201 {object} domain.Session
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Router /sessions [post]
func (c *SessionController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	session := &domain.Session{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		EventID:     req.EventID,
		SpeakerID:   req.SpeakerID,
	}
	if err := c.Service.Create(r.Context(), session); err != nil {
		if !errors.Is(err, domain.ErrInvalidInput) && !errors.Is(err, domain.ErrForeignKey) {
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		}
		helpers.WriteJSONError(w, http.StatusBadRequest, "could not create the session")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, session)
}

// ListByEvent godoc
// @Summary List an event's sessions
// @Description Returns the event's sessions, each with its speaker.
// @Tags sessions
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {array} domain.SessionWithSpeaker
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{eventID}/sessions [get]
func (c *SessionController) ListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := helpers.PathID(w, r, "eventID")
	if !ok {
		return
	}
	sessions, err := c.Service.ListByEvent(r.Context(), eventID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "could not fetch sessions")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, sessions)
}

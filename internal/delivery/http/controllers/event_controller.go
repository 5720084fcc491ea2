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

// EventRequest is the request body for POST /events and PUT /events/{id}.
type EventRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
}

// Validate implements helpers.Validator.
func (e EventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(e.Name) == "" {
		errs = append(errs, "name is required")
	}
	if e.Date.IsZero() {
		errs = append(errs, "date is required")
	}
	return errs
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{Logger: logger, Service: svc}
}

// Create godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body EventRequest true "Event data"
// @Success 201 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Router /events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := &domain.Event{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
	}
	if err := c.Service.Create(r.Context(), event); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusBadRequest, "could not create the event")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, event)
}

// List godoc
// @Summary List events
// @Description Returns all events, each with its nested sessions.
// @Tags events
// @Produce json
// @Success 200 {array} domain.EventWithSessions
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "could not fetch events")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// GetByID godoc
// @Summary Get an event
// @Description Returns the event with its sessions, each session with its speaker.
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} domain.EventWithSessions
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{id} [get]
func (c *EventController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	event, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		// The only read that separates not-found from other store faults.
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "could not fetch the event")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// Update godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param body body EventRequest true "Event data"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Router /events/{id} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := &domain.Event{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
	}
	updated, err := c.Service.Update(r.Context(), event)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		}
		helpers.WriteJSONError(w, http.StatusBadRequest, "could not update the event")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete an event
// @Tags events
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Router /events/{id} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		}
		helpers.WriteJSONError(w, http.StatusBadRequest, "could not delete the event")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

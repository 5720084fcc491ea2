package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/delivery/http/middleware"
	"conferencehub/internal/domain"
)

// RegisterForEventResponse is the response body for POST /events/{id}/register.
type RegisterForEventResponse struct {
	Message      string               `json:"message"`
	Registration *domain.Registration `json:"registration"`
}

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{Logger: logger, Service: svc}
}

// Register godoc
// @Summary Register the authenticated user for an event
// @Description A user registers for a given event at most once; a second attempt fails with 400.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 201 {object} RegisterForEventResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Router /events/{id}/register [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	eventID, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}
	reg, err := c.Service.Register(r.Context(), eventID, id.UserID)
	if err != nil {
		if !errors.Is(err, domain.ErrDuplicateRegistration) && !errors.Is(err, domain.ErrForeignKey) {
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		}
		helpers.WriteJSONError(w, http.StatusBadRequest, "could not register for the event, possibly already registered")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, RegisterForEventResponse{Message: "registration successful", Registration: reg})
}

// ListByEvent godoc
// @Summary List an event's registrations
// @Description Returns the event's registrations, each with the registrant's id, name, and email.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {array} domain.RegistrationWithUser
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{id}/registrations [get]
func (c *RegistrationController) ListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	regs, err := c.Service.ListByEvent(r.Context(), eventID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "could not fetch registrations")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, regs)
}

package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/domain"
)

// CreateSpeakerRequest is the request body for POST /speakers.
// UserID optionally links the speaker to an existing user account.
type CreateSpeakerRequest struct {
	Name   string `json:"name"`
	Bio    string `json:"bio"`
	UserID *int64 `json:"user_id"`
}

// Validate implements helpers.Validator.
func (s CreateSpeakerRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

type SpeakerController struct {
	Logger  *slog.Logger
	Service domain.SpeakerService
}

func NewSpeakerController(logger *slog.Logger, svc domain.SpeakerService) *SpeakerController {
	return &SpeakerController{Logger: logger, Service: svc}
}

// Create godoc
// @Summary Create a speaker
// @Tags speakers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateSpeakerRequest true "Speaker data"
// @Success 201 {object} domain.Speaker
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Router /speakers [post]
func (c *SpeakerController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSpeakerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	speaker := &domain.Speaker{Name: req.Name, Bio: req.Bio, UserID: req.UserID}
	if err := c.Service.Create(r.Context(), speaker); err != nil {
		if !errors.Is(err, domain.ErrInvalidInput) && !errors.Is(err, domain.ErrForeignKey) {
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		}
		helpers.WriteJSONError(w, http.StatusBadRequest, "could not create the speaker")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, speaker)
}

// List godoc
// @Summary List speakers
// @Tags speakers
// @Produce json
// @Success 200 {array} domain.Speaker
// @Failure 500 {object} helpers.ErrorResponse
// @Router /speakers [get]
func (c *SpeakerController) List(w http.ResponseWriter, r *http.Request) {
	speakers, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "could not fetch speakers")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, speakers)
}

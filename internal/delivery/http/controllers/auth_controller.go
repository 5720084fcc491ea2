package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/delivery/http/middleware"
	"conferencehub/internal/domain"
)

// RegisterRequest is the request body for POST /register.
// Role is optional and defaults to ATTENDEE.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate implements helpers.Validator.
func (r RegisterRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	}
	if role := domain.Role(strings.ToUpper(strings.TrimSpace(r.Role))); r.Role != "" && !role.Valid() {
		errs = append(errs, "role must be ADMIN, SPEAKER, or ATTENDEE")
	}
	return errs
}

// RegisterResponse is the response body for POST /register.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// LoginRequest is the request body for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements helpers.Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the response body for POST /login.
type LoginResponse struct {
	Token string `json:"token"`
}

// ProfileResponse is the response body for GET /profile.
type ProfileResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{Logger: logger, Service: svc}
}

// Register godoc
// @Summary Register a new user
// @Description Create a user with email and password. Optional role: ADMIN, SPEAKER, or ATTENDEE (defaults to ATTENDEE).
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /register [post]
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	role := domain.Role(strings.ToUpper(strings.TrimSpace(req.Role)))
	user, err := c.Service.Register(r.Context(), req.Name, req.Email, req.Password, role)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			helpers.WriteJSONError(w, http.StatusBadRequest, "email already in use")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "could not register user")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, RegisterResponse{Message: "user registered successfully", UserID: user.ID})
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password. Returns a signed token carrying user id and role.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// Same message for unknown email and wrong password.
			helpers.WriteJSONError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "could not log in")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, LoginResponse{Token: token})
}

// Profile godoc
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /profile [get]
func (c *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}
	user, err := c.Service.Profile(r.Context(), id.UserID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "could not fetch profile")
		return
	}
	greeting := user.Name
	if greeting == "" {
		greeting = user.Email
	}
	helpers.WriteJSON(w, http.StatusOK, ProfileResponse{Message: "Welcome, " + greeting + "!", User: user})
}

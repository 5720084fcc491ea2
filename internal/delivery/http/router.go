package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"conferencehub/internal/delivery/http/controllers"
	"conferencehub/internal/delivery/http/middleware"
	"conferencehub/internal/domain"
)

// Controllers groups the controllers wired into the router.
type Controllers struct {
	Auth         *controllers.AuthController
	Event        *controllers.EventController
	Speaker      *controllers.SpeakerController
	Session      *controllers.SessionController
	Registration *controllers.RegistrationController
}

// NewRouter initializes the HTTP router with all application routes.
// Protected routes run RequireAuth first and, where a role is required, the
// role gate strictly after it.
func NewRouter(c Controllers, verifier domain.TokenVerifier) *http.ServeMux {
	mux := http.NewServeMux()

	authed := middleware.RequireAuth(verifier)
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return authed(middleware.RequireRole(domain.RoleAdmin)(h))
	}

	// Auth
	mux.HandleFunc("POST /register", c.Auth.Register)
	mux.HandleFunc("POST /login", c.Auth.Login)
	mux.HandleFunc("GET /profile", authed(c.Auth.Profile))

	// Events
	mux.HandleFunc("POST /events", admin(c.Event.Create))
	mux.HandleFunc("GET /events", c.Event.List)
	mux.HandleFunc("GET /events/{id}", c.Event.GetByID)
	mux.HandleFunc("PUT /events/{id}", admin(c.Event.Update))
	mux.HandleFunc("DELETE /events/{id}", admin(c.Event.Delete))

	// Speakers
	mux.HandleFunc("POST /speakers", admin(c.Speaker.Create))
	mux.HandleFunc("GET /speakers", c.Speaker.List)

	// Sessions
	mux.HandleFunc("POST /sessions", admin(c.Session.Create))
	mux.HandleFunc("GET /events/{eventID}/sessions", c.Session.ListByEvent)

	// Registrations
	mux.HandleFunc("POST /events/{id}/register", authed(c.Registration.Register))
	mux.HandleFunc("GET /events/{id}/registrations", admin(c.Registration.ListByEvent))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

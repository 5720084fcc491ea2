package domain

import "context"

// Mailer sends a single email message.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders a named email template into subject, html, and
// text bodies.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, htmlBody, textBody string, err error)
}

// RegistrationEmailData is the payload for the registration confirmation email.
type RegistrationEmailData struct {
	Email     string
	Name      string
	EventName string
	EventDate string
}

// EmailService sends application emails. Implementations are best-effort:
// callers treat failures as non-fatal.
type EmailService interface {
	SendRegistrationConfirmation(ctx context.Context, data *RegistrationEmailData) error
}

package dto

import (
	"time"

	"github.com/octobees/contact-site/api/internal/entity"
)

// ContactRequest captures the public contact form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Message string `json:"message"`
}

// ContactSubmittedResponse acknowledges a stored submission.
type ContactSubmittedResponse struct {
	Message   string    `json:"message"`
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse reports store connectivity for the contact form.
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// ContactListResponse is returned by the admin contact listing.
type ContactListResponse struct {
	Contacts  []entity.Contact `json:"contacts"`
	Total     int              `json:"total"`
	Timestamp time.Time        `json:"timestamp"`
}

// ErrorResponse is the body of every public failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

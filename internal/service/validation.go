package service

import (
	"regexp"
	"strings"

	"github.com/octobees/contact-site/api/internal/dto"
	"github.com/octobees/contact-site/api/internal/entity"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError indicates that client input was rejected before reaching the store.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Message
}

// Validation failures surfaced to the contact form.
var (
	ErrMissingFields = ValidationError{Message: "Missing required fields"}
	ErrInvalidEmail  = ValidationError{Message: "Invalid email format"}
)

// ValidEmail reports whether the value has the local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// NormalizeContact validates a form submission and returns the values to persist:
// every field trimmed, email lower-cased, blank company dropped.
func NormalizeContact(req dto.ContactRequest) (entity.NewContact, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	message := strings.TrimSpace(req.Message)

	if name == "" || email == "" || message == "" {
		return entity.NewContact{}, ErrMissingFields
	}
	if !ValidEmail(email) {
		return entity.NewContact{}, ErrInvalidEmail
	}

	contact := entity.NewContact{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if company := strings.TrimSpace(req.Company); company != "" {
		contact.Company = &company
	}
	return contact, nil
}

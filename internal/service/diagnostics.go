package service

import (
	"context"
	"errors"

	"github.com/octobees/contact-site/api/internal/dto"
	"github.com/octobees/contact-site/api/internal/entity"
	"github.com/octobees/contact-site/api/internal/repository"
)

// ErrUnknownAction is returned for diagnostics actions other than add_test_data.
var ErrUnknownAction = errors.New("invalid action")

// DiagnosticsService backs the admin database page.
type DiagnosticsService struct {
	contacts    repository.ContactsRepository
	diagnostics repository.DiagnosticsRepository
}

// NewDiagnosticsService wires the contact and diagnostics repositories.
func NewDiagnosticsService(contacts repository.ContactsRepository, diagnostics repository.DiagnosticsRepository) *DiagnosticsService {
	return &DiagnosticsService{contacts: contacts, diagnostics: diagnostics}
}

// Snapshot returns contacts with message lengths, table statistics and column metadata.
func (s *DiagnosticsService) Snapshot(ctx context.Context) (entity.DatabaseSnapshot, error) {
	return s.diagnostics.Snapshot(ctx)
}

// Apply runs a diagnostics action and returns the contacts it created.
func (s *DiagnosticsService) Apply(ctx context.Context, action string) ([]entity.Contact, error) {
	switch action {
	case dto.ActionAddTestData:
		return s.contacts.SeedTestContacts(ctx)
	default:
		return nil, ErrUnknownAction
	}
}

package service

import (
	"context"

	"github.com/octobees/contact-site/api/internal/dto"
	"github.com/octobees/contact-site/api/internal/entity"
	"github.com/octobees/contact-site/api/internal/repository"
)

// ContactService handles public contact submissions and the admin listing.
type ContactService struct {
	repo repository.ContactsRepository
}

// NewContactService creates a new instance of ContactService.
func NewContactService(repo repository.ContactsRepository) *ContactService {
	return &ContactService{repo: repo}
}

// Submit validates and normalizes the form, then stores it. Invalid input
// returns a ValidationError without touching the repository.
func (s *ContactService) Submit(ctx context.Context, req dto.ContactRequest) (*entity.Contact, error) {
	contact, err := NormalizeContact(req)
	if err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, contact)
}

// List returns every stored contact, most recent first.
func (s *ContactService) List(ctx context.Context) ([]entity.Contact, error) {
	return s.repo.List(ctx)
}

// Healthy reports whether the store answers a liveness query.
func (s *ContactService) Healthy(ctx context.Context) bool {
	return s.repo.TestConnection(ctx)
}

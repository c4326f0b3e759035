package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/octobees/contact-site/api/internal/entity"
	"github.com/octobees/contact-site/api/internal/repository"
)

// memoryContactsRepo stores contacts in memory, assigning ids the way the store would.
type memoryContactsRepo struct {
	mu       sync.Mutex
	contacts []entity.Contact
	nextID   int64
	saveErr  error
	listErr  error
	healthy  bool
	saves    int
}

func (m *memoryContactsRepo) Save(ctx context.Context, in entity.NewContact) (*entity.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	m.nextID++
	contact := entity.Contact{
		ID:        m.nextID,
		Name:      in.Name,
		Email:     in.Email,
		Company:   in.Company,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	m.contacts = append(m.contacts, contact)
	return &contact, nil
}

func (m *memoryContactsRepo) List(ctx context.Context) ([]entity.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]entity.Contact, 0, len(m.contacts))
	for i := len(m.contacts) - 1; i >= 0; i-- {
		out = append(out, m.contacts[i])
	}
	return out, nil
}

func (m *memoryContactsRepo) SeedTestContacts(ctx context.Context) ([]entity.Contact, error) {
	var inserted []entity.Contact
	for _, seed := range repository.SeedContacts() {
		contact, err := m.Save(ctx, seed)
		if err != nil {
			return nil, err
		}
		inserted = append(inserted, *contact)
	}
	return inserted, nil
}

func (m *memoryContactsRepo) TestConnection(ctx context.Context) bool {
	return m.healthy
}

func (m *memoryContactsRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.contacts)
}

type stubDiagnosticsRepo struct {
	snapshot entity.DatabaseSnapshot
	err      error
	calls    int
}

func (s *stubDiagnosticsRepo) Snapshot(ctx context.Context) (entity.DatabaseSnapshot, error) {
	s.calls++
	if s.err != nil {
		return entity.DatabaseSnapshot{}, s.err
	}
	return s.snapshot, nil
}

var errStoreDown = errors.New("store down")

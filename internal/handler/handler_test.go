package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/octobees/contact-site/api/internal/entity"
	"github.com/octobees/contact-site/api/internal/repository"
	"github.com/octobees/contact-site/api/internal/service"
)

type contactsRepoForHandler struct {
	save      func(ctx context.Context, contact entity.NewContact) (*entity.Contact, error)
	list      func(ctx context.Context) ([]entity.Contact, error)
	seed      func(ctx context.Context) ([]entity.Contact, error)
	healthy   bool
	saveCalls int
}

func (r *contactsRepoForHandler) Save(ctx context.Context, contact entity.NewContact) (*entity.Contact, error) {
	r.saveCalls++
	if r.save != nil {
		return r.save(ctx, contact)
	}
	return nil, errors.New("not implemented")
}

func (r *contactsRepoForHandler) List(ctx context.Context) ([]entity.Contact, error) {
	if r.list != nil {
		return r.list(ctx)
	}
	return nil, errors.New("not implemented")
}

func (r *contactsRepoForHandler) SeedTestContacts(ctx context.Context) ([]entity.Contact, error) {
	if r.seed != nil {
		return r.seed(ctx)
	}
	return nil, errors.New("not implemented")
}

func (r *contactsRepoForHandler) TestConnection(ctx context.Context) bool {
	return r.healthy
}

type diagnosticsRepoForHandler struct {
	snapshot func(ctx context.Context) (entity.DatabaseSnapshot, error)
}

func (r *diagnosticsRepoForHandler) Snapshot(ctx context.Context) (entity.DatabaseSnapshot, error) {
	if r.snapshot != nil {
		return r.snapshot(ctx)
	}
	return entity.DatabaseSnapshot{}, errors.New("not implemented")
}

var (
	_ repository.ContactsRepository    = (*contactsRepoForHandler)(nil)
	_ repository.DiagnosticsRepository = (*diagnosticsRepoForHandler)(nil)
)

func newContactHandler(repo repository.ContactsRepository) *ContactHandler {
	return NewContactHandler(service.NewContactService(repo))
}

func newAdminHandler(contacts repository.ContactsRepository, diagnostics repository.DiagnosticsRepository) *AdminHandler {
	return NewAdminHandler(service.NewContactService(contacts), service.NewDiagnosticsService(contacts, diagnostics))
}

func jsonContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

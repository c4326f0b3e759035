package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/octobees/contact-site/api/internal/dto"
	"github.com/octobees/contact-site/api/internal/service"
)

// AdminHandler exposes the contact listing and database diagnostics endpoints.
type AdminHandler struct {
	contacts    *service.ContactService
	diagnostics *service.DiagnosticsService
}

// NewAdminHandler constructs a handler instance.
func NewAdminHandler(contacts *service.ContactService, diagnostics *service.DiagnosticsService) *AdminHandler {
	return &AdminHandler{contacts: contacts, diagnostics: diagnostics}
}

// ListContacts handles GET /admin/contacts.
func (h *AdminHandler) ListContacts(c echo.Context) error {
	contacts, err := h.contacts.List(c.Request().Context())
	if err != nil {
		requestLogger(c).Error("fetch contacts failed", "error", err)
		return Error(c, http.StatusInternalServerError, "Failed to fetch contacts")
	}

	return Success(c, http.StatusOK, dto.ContactListResponse{
		Contacts:  contacts,
		Total:     len(contacts),
		Timestamp: time.Now().UTC(),
	})
}

// Database handles GET /admin/database.
func (h *AdminHandler) Database(c echo.Context) error {
	snapshot, err := h.diagnostics.Snapshot(c.Request().Context())
	if err != nil {
		requestLogger(c).Error("database snapshot failed", "error", err)
		return AdminError(c, http.StatusInternalServerError, err)
	}

	return Success(c, http.StatusOK, dto.DatabaseSnapshotResponse{
		Success:   true,
		Data:      snapshot,
		Timestamp: time.Now().UTC(),
	})
}

// DatabaseAction handles POST /admin/database.
func (h *AdminHandler) DatabaseAction(c echo.Context) error {
	var req dto.DatabaseActionRequest
	if err := bindJSON(c, &req); err != nil {
		return Error(c, http.StatusBadRequest, "Invalid action")
	}

	inserted, err := h.diagnostics.Apply(c.Request().Context(), req.Action)
	if err != nil {
		if errors.Is(err, service.ErrUnknownAction) {
			return Error(c, http.StatusBadRequest, "Invalid action")
		}
		requestLogger(c).Error("database action failed", "action", req.Action, "error", err)
		return AdminError(c, http.StatusInternalServerError, err)
	}

	return Success(c, http.StatusOK, dto.DatabaseActionResponse{
		Success:  true,
		Message:  fmt.Sprintf("%d test contacts added", len(inserted)),
		Contacts: inserted,
	})
}

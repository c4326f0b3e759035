package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/octobees/contact-site/api/internal/dto"
	"github.com/octobees/contact-site/api/internal/service"
)

// Health fields reported by GET /contact. The status stays OK while the
// handler answers; store reachability is carried by the database field.
const (
	statusOK             = "OK"
	databaseConnected    = "connected"
	databaseDisconnected = "disconnected"
)

const (
	contactSubmittedReply  = "Contact form submitted successfully"
	internalServerErrorMsg = "Internal server error"
)

// ContactHandler exposes the public contact form endpoints.
type ContactHandler struct {
	contacts *service.ContactService
}

// NewContactHandler creates a new handler instance.
func NewContactHandler(contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Submit handles POST /contact.
func (h *ContactHandler) Submit(c echo.Context) error {
	logger := requestLogger(c)

	var req dto.ContactRequest
	if err := bindJSON(c, &req); err != nil {
		logger.Info("contact submission rejected", "reason", "invalid payload")
		return Error(c, http.StatusBadRequest, "Invalid request body")
	}

	contact, err := h.contacts.Submit(c.Request().Context(), req)
	if err != nil {
		var vErr service.ValidationError
		if errors.As(err, &vErr) {
			logger.Info("contact submission rejected", "reason", vErr.Message)
			return Error(c, http.StatusBadRequest, vErr.Message)
		}
		logger.Error("contact submission failed", "error", err)
		return Error(c, http.StatusInternalServerError, internalServerErrorMsg)
	}

	logger.Info("contact submission stored", "id", contact.ID)
	return Success(c, http.StatusOK, dto.ContactSubmittedResponse{
		Message:   contactSubmittedReply,
		ID:        contact.ID,
		Timestamp: contact.CreatedAt,
	})
}

// Health handles GET /contact. Store connectivity is reported, never raised.
func (h *ContactHandler) Health(c echo.Context) error {
	resp := dto.HealthResponse{
		Status:    statusOK,
		Database:  databaseConnected,
		Timestamp: time.Now().UTC(),
	}
	if !h.contacts.Healthy(c.Request().Context()) {
		resp.Database = databaseDisconnected
	}
	return Success(c, http.StatusOK, resp)
}

package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/contact-site/api/internal/dto"
	"github.com/octobees/contact-site/api/internal/logging"
)

// Success sends payload as JSON, defaulting to 200.
func Success(c echo.Context, status int, payload any) error {
	if status == 0 {
		status = http.StatusOK
	}
	return c.JSON(status, payload)
}

// Error sends the public error body, defaulting to 500.
func Error(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, dto.ErrorResponse{Error: message})
}

// AdminError sends the operator-facing error body carrying the underlying failure text.
// TODO: stop echoing raw store errors once the admin routes sit behind access control.
func AdminError(c echo.Context, status int, err error) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	message := "Unknown error"
	if err != nil {
		message = err.Error()
	}
	return c.JSON(status, dto.AdminErrorResponse{Success: false, Error: message})
}

// bindJSON decodes the request body as JSON whatever Content-Type the client sent.
func bindJSON(c echo.Context, dst any) error {
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return (&echo.DefaultBinder{}).BindBody(c, dst)
}

func requestLogger(c echo.Context) *slog.Logger {
	return logging.FromContext(c.Request().Context(), nil)
}

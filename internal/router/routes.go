package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/contact-site/api/internal/config"
	"github.com/octobees/contact-site/api/internal/handler"
	middlewarepkg "github.com/octobees/contact-site/api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Contact *handler.ContactHandler
	Admin   *handler.AdminHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, map[string]string{"status": "ok"})
	})

	e.POST("/contact", handlers.Contact.Submit, middlewarepkg.RateLimiter(cfg.RateLimitContact))
	e.GET("/contact", handlers.Contact.Health)

	admin := e.Group("/admin")
	admin.GET("/contacts", handlers.Admin.ListContacts)
	admin.GET("/database", handlers.Admin.Database)
	admin.POST("/database", handlers.Admin.DatabaseAction)
}

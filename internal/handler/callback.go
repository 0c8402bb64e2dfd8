package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// SignupFlow is the orchestration interface consumed by the handlers.
type SignupFlow interface {
	HandleCallback(ctx context.Context, code string) (string, error)
	HandleEmail(ctx context.Context, email string) string
}

// SignupHandler handles the signup endpoints.
type SignupHandler struct {
	signups      SignupFlow
	authorizeURL string
}

// NewSignupHandler creates a new SignupHandler. authorizeURL is the provider
// page /start redirects to.
func NewSignupHandler(signups SignupFlow, authorizeURL string) *SignupHandler {
	return &SignupHandler{signups: signups, authorizeURL: authorizeURL}
}

// Start redirects the browser to the provider's authorization page.
func (h *SignupHandler) Start(c echo.Context) error {
	return c.Redirect(http.StatusFound, h.authorizeURL)
}

// Callback handles the provider redirect carrying the authorization code.
// The browser only ever sees a redirect or a bare status; failure detail
// stays in the logs.
func (h *SignupHandler) Callback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		slog.Warn("callback without code")
		return c.String(http.StatusBadRequest, "missing code")
	}

	target, err := h.signups.HandleCallback(c.Request().Context(), code)
	if err != nil {
		slog.Error("signup failed", "error", err)
		return c.String(http.StatusInternalServerError, "signup failed")
	}

	return c.Redirect(http.StatusFound, target)
}

// Email handles mailing-list signups.
func (h *SignupHandler) Email(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.String(http.StatusBadRequest, "missing email")
	}

	target := h.signups.HandleEmail(c.Request().Context(), email)
	return c.Redirect(http.StatusFound, target)
}

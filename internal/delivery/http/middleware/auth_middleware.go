// Package middleware contains the HTTP middlewares of the delivery layer.
package middleware

import (
	"net/http"

	"warta/config"
	deliverycontext "warta/internal/delivery/context"
	"warta/internal/delivery/http/response"
	"warta/internal/delivery/http/session"
	"warta/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware guards the CMS pages and the management API with the
// session cookie. Both guards treat every token failure identically; only
// the failure response differs by surface.
type SessionMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(tokenSvc service.TokenService, cfg *config.Config) *SessionMiddleware {
	return &SessionMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// RequireSession guards browser-facing CMS routes. A missing or invalid
// session clears the cookie and redirects to the login page.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := m.verify(c)
		if !ok {
			c.SetCookie(session.ClearCookie(m.cfg.IsProduction()))

			return c.Redirect(http.StatusSeeOther, "/login")
		}

		deliverycontext.SetSessionClaims(c, claims)

		return next(c)
	}
}

// RequireToken guards the JSON API. A missing or invalid session gets a
// plain 401; the cookie is left alone.
func (m *SessionMiddleware) RequireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := m.verify(c)
		if !ok {
			return response.Unauthorized(c)
		}

		deliverycontext.SetSessionClaims(c, claims)

		return next(c)
	}
}

func (m *SessionMiddleware) verify(c echo.Context) (*service.Claims, bool) {
	cookie, err := c.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	return m.tokenSvc.Verify(cookie.Value)
}

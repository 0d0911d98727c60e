package handler

import (
	"log/slog"
	"net/http"

	"warta/config"
	"warta/internal/delivery/http/session"
	"warta/internal/domain/service"
	"warta/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves the login and logout actions.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	tokenSvc    service.TokenService
	cfg         *config.Config
	logger      *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(authUsecase usecase.AuthUsecase, tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		tokenSvc:    tokenSvc,
		cfg:         cfg,
		logger:      logger,
	}
}

// LoginPage serves the login page data. A visitor who already holds a valid
// session is sent straight to the dashboard.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		if _, ok := h.tokenSvc.Verify(cookie.Value); ok {
			return c.Redirect(http.StatusSeeOther, "/cms")
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"flash": session.PopFlash(c),
	})
}

// Login handles the login form. Success sets the session cookie and lands on
// the dashboard; failures carry their own status through the error handler,
// 400 for missing fields and 401 for bad credentials.
func (h *AuthHandler) Login(c echo.Context) error {
	input := usecase.LoginInput{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
	}

	output, err := h.authUsecase.Login(c.Request().Context(), input)
	if err != nil {
		return err
	}

	c.SetCookie(session.NewCookie(output.Token, h.cfg.IsProduction()))

	return c.Redirect(http.StatusSeeOther, "/cms")
}

// Logout clears the session cookie and returns to the login page.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(session.ClearCookie(h.cfg.IsProduction()))

	return c.Redirect(http.StatusSeeOther, "/login")
}

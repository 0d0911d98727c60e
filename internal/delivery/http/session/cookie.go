// Package session manages the browser-facing cookies: the signed session
// token and the short-lived flash message shown after form actions.
package session

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	// CookieName is the session token cookie.
	CookieName = "auth_token"

	// FlashCookieName carries one feedback message across a redirect.
	FlashCookieName = "flash"

	sessionMaxAge = 7 * 24 * time.Hour
	flashMaxAge   = 5 * time.Second
)

// Flash is one feedback message for the next page render.
type Flash struct {
	Type    string `json:"type"` // "success" or "error".
	Message string `json:"message"`
}

// NewCookie builds the session cookie for a freshly issued token. The cookie
// is HttpOnly and SameSite strict; Secure is enabled in production only so
// local development over plain HTTP keeps working.
func NewCookie(token string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// ClearCookie expires the session cookie immediately.
func ClearCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// SetFlash stores a flash message that survives exactly one redirect.
func SetFlash(c echo.Context, flash Flash, secure bool) {
	payload, err := json.Marshal(flash)
	if err != nil {
		return
	}

	c.SetCookie(&http.Cookie{
		Name:     FlashCookieName,
		Value:    url.QueryEscape(string(payload)),
		Path:     "/",
		MaxAge:   int(flashMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// PopFlash reads and clears the pending flash message, if any.
func PopFlash(c echo.Context) *Flash {
	cookie, err := c.Cookie(FlashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	c.SetCookie(&http.Cookie{
		Name:   FlashCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	payload, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}

	var flash Flash
	if err := json.Unmarshal([]byte(payload), &flash); err != nil {
		return nil
	}

	return &flash
}

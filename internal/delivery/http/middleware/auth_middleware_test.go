package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"warta/config"
	deliverycontext "warta/internal/delivery/context"
	"warta/internal/delivery/http/session"
	"warta/internal/domain/service"
	mockSvc "warta/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionTestContext(t *testing.T, cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cms", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequireSession_ValidTokenAttachesClaims(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	claims := &service.Claims{UserID: 1, Username: "laziza", Name: "Laziza Iklima Khairatun"}
	tokenSvc.EXPECT().Verify("good-token").Return(claims, true).Once()

	m := NewSessionMiddleware(tokenSvc, &config.Config{})
	c, rec := newSessionTestContext(t, &http.Cookie{Name: session.CookieName, Value: "good-token"})

	var seen *service.Claims
	err := m.RequireSession(func(c echo.Context) error {
		seen = deliverycontext.GetSessionClaims(c)

		return okHandler(c)
	})(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, claims, seen)
}

func TestRequireSession_InvalidTokenClearsCookieAndRedirects(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("stale-token").Return(nil, false).Once()

	m := NewSessionMiddleware(tokenSvc, &config.Config{})
	c, rec := newSessionTestContext(t, &http.Cookie{Name: session.CookieName, Value: "stale-token"})

	err := m.RequireSession(okHandler)(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.Equal(t, "", cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestRequireSession_MissingCookieRedirects(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	m := NewSessionMiddleware(tokenSvc, &config.Config{})
	c, rec := newSessionTestContext(t, nil)

	err := m.RequireSession(okHandler)(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	tokenSvc.AssertNotCalled(t, "Verify")
}

func TestRequireToken_ValidTokenAttachesClaims(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	claims := &service.Claims{UserID: 1, Username: "laziza"}
	tokenSvc.EXPECT().Verify("good-token").Return(claims, true).Once()

	m := NewSessionMiddleware(tokenSvc, &config.Config{})
	c, rec := newSessionTestContext(t, &http.Cookie{Name: session.CookieName, Value: "good-token"})

	err := m.RequireToken(okHandler)(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireToken_InvalidTokenAnswers401(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("bad-token").Return(nil, false).Once()

	m := NewSessionMiddleware(tokenSvc, &config.Config{})
	c, rec := newSessionTestContext(t, &http.Cookie{Name: session.CookieName, Value: "bad-token"})

	err := m.RequireToken(okHandler)(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
}

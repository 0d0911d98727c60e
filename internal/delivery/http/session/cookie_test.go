package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCookieTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestNewCookie_Attributes(t *testing.T) {
	cookie := NewCookie("signed-token", true)

	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int((7 * 24 * 60 * 60)), cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
}

func TestNewCookie_PlainHTTPInDevelopment(t *testing.T) {
	cookie := NewCookie("signed-token", false)

	assert.False(t, cookie.Secure)
	assert.True(t, cookie.HttpOnly)
}

func TestClearCookie_ExpiresImmediately(t *testing.T) {
	cookie := ClearCookie(false)

	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, "", cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestFlash_RoundTrip(t *testing.T) {
	setCtx, rec := newCookieTestContext(t)
	SetFlash(setCtx, Flash{Type: "success", Message: "Post berhasil dibuat"}, false)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, FlashCookieName, cookies[0].Name)
	assert.Equal(t, 5, cookies[0].MaxAge)

	popCtx, popRec := newCookieTestContext(t)
	popCtx.Request().AddCookie(cookies[0])

	flash := PopFlash(popCtx)
	require.NotNil(t, flash)
	assert.Equal(t, "success", flash.Type)
	assert.Equal(t, "Post berhasil dibuat", flash.Message)

	// Popping also clears the cookie so the message shows once.
	cleared := popRec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, -1, cleared[0].MaxAge)
}

func TestPopFlash_NoPendingMessage(t *testing.T) {
	c, rec := newCookieTestContext(t)

	assert.Nil(t, PopFlash(c))
	assert.Empty(t, rec.Result().Cookies())
}

func TestPopFlash_GarbledCookie(t *testing.T) {
	c, _ := newCookieTestContext(t)
	c.Request().AddCookie(&http.Cookie{Name: FlashCookieName, Value: "not-json"})

	assert.Nil(t, PopFlash(c))
}

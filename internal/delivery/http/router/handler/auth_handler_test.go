package handler

import (
	"net/http"
	"net/url"
	"testing"

	"warta/config"
	"warta/internal/delivery/http/session"
	"warta/internal/domain/entity"
	domainerrors "warta/internal/domain/errors"
	"warta/internal/domain/service"
	mockSvc "warta/internal/mocks/service"
	mockUC "warta/internal/mocks/usecase"
	"warta/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogin_SuccessSetsSessionCookie(t *testing.T) {
	authUsecase := mockUC.NewMockAuthUsecase(t)
	authUsecase.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Username: "laziza", Password: "laziza24434"}).
		Return(&usecase.LoginOutput{
			Token: "signed-token",
			User:  &entity.User{ID: 1, Username: "laziza", Name: "Laziza Iklima Khairatun"},
		}, nil).
		Once()

	h := NewAuthHandler(authUsecase, mockSvc.NewMockTokenService(t), &config.Config{}, newDiscardLogger())

	form := url.Values{}
	form.Set("username", "laziza")
	form.Set("password", "laziza24434")
	c, rec := newFormContext(t, http.MethodPost, "/login", form)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/cms", rec.Header().Get(echo.HeaderLocation))

	cookie := findCookie(t, rec, session.CookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.False(t, cookie.Secure)
}

func TestLogin_MissingCredentialsPropagates400(t *testing.T) {
	authUsecase := mockUC.NewMockAuthUsecase(t)
	authUsecase.EXPECT().
		Login(mock.Anything, usecase.LoginInput{}).
		Return(nil, domainerrors.ErrMissingCredentials).
		Once()

	h := NewAuthHandler(authUsecase, mockSvc.NewMockTokenService(t), &config.Config{}, newDiscardLogger())

	c, rec := newFormContext(t, http.MethodPost, "/login", url.Values{})

	err := h.Login(c)
	assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
	assert.Nil(t, findCookie(t, rec, session.CookieName))
}

func TestLogin_WrongPasswordPropagates401(t *testing.T) {
	authUsecase := mockUC.NewMockAuthUsecase(t)
	authUsecase.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials).
		Once()

	h := NewAuthHandler(authUsecase, mockSvc.NewMockTokenService(t), &config.Config{}, newDiscardLogger())

	form := url.Values{}
	form.Set("username", "laziza")
	form.Set("password", "wrong")
	c, rec := newFormContext(t, http.MethodPost, "/login", form)

	err := h.Login(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, http.StatusUnauthorized, domainerrors.ErrInvalidCredentials.HTTPCode())
	assert.Nil(t, findCookie(t, rec, session.CookieName))
}

func TestLoginPage_AuthenticatedVisitorGoesToDashboard(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("still-valid").Return(&service.Claims{UserID: 1, Username: "laziza"}, true).Once()

	h := NewAuthHandler(mockUC.NewMockAuthUsecase(t), tokenSvc, &config.Config{}, newDiscardLogger())

	c, rec := newFormContext(t, http.MethodGet, "/login", url.Values{})
	c.Request().AddCookie(&http.Cookie{Name: session.CookieName, Value: "still-valid"})

	require.NoError(t, h.LoginPage(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/cms", rec.Header().Get(echo.HeaderLocation))
}

func TestLoginPage_AnonymousVisitorGetsPage(t *testing.T) {
	h := NewAuthHandler(mockUC.NewMockAuthUsecase(t), mockSvc.NewMockTokenService(t), &config.Config{}, newDiscardLogger())

	c, rec := newFormContext(t, http.MethodGet, "/login", url.Values{})

	require.NoError(t, h.LoginPage(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"flash":null}`, rec.Body.String())
}

func TestLogout_ClearsSessionCookie(t *testing.T) {
	h := NewAuthHandler(mockUC.NewMockAuthUsecase(t), mockSvc.NewMockTokenService(t), &config.Config{}, newDiscardLogger())

	c, rec := newFormContext(t, http.MethodPost, "/logout", url.Values{})

	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

	cookie := findCookie(t, rec, session.CookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "", cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

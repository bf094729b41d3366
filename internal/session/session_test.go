package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktrack/internal/auth"
	apperrors "tasktrack/internal/errors"
	"tasktrack/internal/model"
)

type stubUsers struct {
	users map[uuid.UUID]*model.User
	err   error
}

func (s *stubUsers) GetUser(_ context.Context, id uuid.UUID) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func protected(tokens *auth.TokenService, users UserLookup) echo.HandlerFunc {
	h := func(c echo.Context) error {
		u, err := CurrentUser(c)
		if err != nil {
			return err
		}
		return c.String(http.StatusOK, u.Name)
	}
	return Middleware(tokens)(RequireUser(users)(h))
}

func serve(t *testing.T, h echo.HandlerFunc, cookie *http.Cookie) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return rec, h(e.NewContext(req, rec))
}

func TestGate(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	user := &model.User{ID: uuid.New(), Name: "Ann"}
	users := &stubUsers{users: map[uuid.UUID]*model.User{user.ID: user}}

	valid, err := tokens.Issue(user.ID)
	require.NoError(t, err)
	orphan, err := tokens.Issue(uuid.New())
	require.NoError(t, err)
	foreign, err := auth.NewTokenService("other").Issue(user.ID)
	require.NoError(t, err)
	expired, err := tokens.WithClock(func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }).Issue(user.ID)
	require.NoError(t, err)

	tests := []struct {
		name   string
		cookie *http.Cookie
		ok     bool
	}{
		{name: "valid session", cookie: &http.Cookie{Name: CookieName, Value: valid.Token}, ok: true},
		{name: "no cookie"},
		{name: "garbage token", cookie: &http.Cookie{Name: CookieName, Value: "not-a-jwt"}},
		{name: "wrong secret", cookie: &http.Cookie{Name: CookieName, Value: foreign.Token}},
		{name: "expired", cookie: &http.Cookie{Name: CookieName, Value: expired.Token}},
		{name: "user deleted", cookie: &http.Cookie{Name: CookieName, Value: orphan.Token}},
		{name: "token in other cookie", cookie: &http.Cookie{Name: "token", Value: valid.Token}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := serve(t, protected(tokens, users), tt.cookie)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "Ann", rec.Body.String())
				return
			}
			assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		})
	}
}

func TestRequireUser_StoreFailureIsNotUnauthorized(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	s, err := tokens.Issue(uuid.New())
	require.NoError(t, err)

	boom := errors.New("db down")
	_, err = serve(t, protected(tokens, &stubUsers{err: boom}), &http.Cookie{Name: CookieName, Value: s.Token})

	assert.ErrorIs(t, err, boom)
}

func TestCookies(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	expires := time.Now().Add(auth.TokenTTL)
	SetCookie(c, &auth.Session{Token: "tok", ExpiresAt: expires}, true)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	got := cookies[0]
	assert.Equal(t, CookieName, got.Name)
	assert.Equal(t, "tok", got.Value)
	assert.True(t, got.HttpOnly)
	assert.True(t, got.Secure)
	assert.Equal(t, http.SameSiteLaxMode, got.SameSite)
	assert.WithinDuration(t, expires, got.Expires, time.Second)

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodPut, "/", nil), rec)
	ClearCookie(c, false)

	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
	assert.False(t, cookies[0].Secure)
}

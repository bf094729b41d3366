// Package session gates protected routes on the access-token cookie.
package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"tasktrack/internal/auth"
	apperrors "tasktrack/internal/errors"
	"tasktrack/internal/model"
)

const (
	// CookieName is the cookie carrying the session token.
	CookieName = "access-token"

	claimsKey = "session"
	userKey   = "user"
)

// UserLookup resolves the user a verified token refers to.
type UserLookup interface {
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// Middleware verifies the session cookie and stores its claims in the context.
// Requests without a cookie or with an invalid token get ErrUnauthorized.
func Middleware(tokens *auth.TokenService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + CookieName,
		ContextKey:  claimsKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return tokens.Verify(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return apperrors.ErrUnauthorized
		},
	})
}

// RequireUser loads the token's user and stores it under "user".
// It must run after Middleware.
func RequireUser(users UserLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(claimsKey).(*auth.Claims)
			if !ok {
				return apperrors.ErrUnauthorized
			}
			user, err := users.GetUser(c.Request().Context(), claims.UserUUID())
			if err != nil {
				if errors.Is(err, apperrors.ErrUserNotFound) {
					return apperrors.ErrUnauthorized
				}
				return err
			}

			c.Set(userKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user set by RequireUser.
func CurrentUser(c echo.Context) (*model.User, error) {
	user, ok := c.Get(userKey).(*model.User)
	if !ok || user == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// SetCookie writes the session cookie for s.
func SetCookie(c echo.Context, s *auth.Session, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    s.Token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie on the client.
func ClearCookie(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

package router

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"tasktrack/internal/auth"
	"tasktrack/internal/config"
	apperrors "tasktrack/internal/errors"
	"tasktrack/internal/handler"
	"tasktrack/internal/session"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *slog.Logger,
	tokens *auth.TokenService,
	users session.UserLookup,
	authHandler *handler.AuthHandler,
	todoHandler *handler.ToDoHandler,
) {
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler(log)
	e.Validator = NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowCredentials: true,
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.GET("", func(c echo.Context) error {
		return c.String(http.StatusOK, "ToDoApp Server")
	})

	// Public routes
	api.GET("/auth/test", authHandler.Test)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.PUT("/auth/logout", authHandler.Logout)
	api.GET("/todos/test", todoHandler.Test)

	// Secured routes (require a valid access-token cookie)
	secured := api.Group("", session.Middleware(tokens), session.RequireUser(users))

	secured.GET("/auth/current", authHandler.Current)

	secured.POST("/todos/new", todoHandler.Create)
	secured.GET("/todos/current", todoHandler.ListCurrent)
	secured.PUT("/todos/:id/complete", todoHandler.Complete)
	secured.PUT("/todos/:id/incomplete", todoHandler.Incomplete)
	secured.PUT("/todos/:id", todoHandler.Update)
	secured.DELETE("/todos/:id", todoHandler.Delete)
}

// ErrorHandler renders domain errors through errors.MapErrorToHTTP and
// passes Echo's own HTTP errors through with their status.
// Internal errors are logged with the request id and never leak detail.
func ErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := render(err)
		if status >= http.StatusInternalServerError {
			log.ErrorContext(c.Request().Context(), "request failed",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Path()),
				slog.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				slog.Any("error", err),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			log.ErrorContext(c.Request().Context(), "write error response", slog.Any("error", err))
		}
	}
}

func render(err error) (int, interface{}) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			if inner, ok := he.Internal.(*echo.HTTPError); ok {
				he = inner
			}
		}
		msg, ok := he.Message.(string)
		if !ok {
			msg = fmt.Sprint(he.Message)
		}
		if he.Code >= http.StatusInternalServerError {
			msg = "internal server error"
		}
		code := strings.ToUpper(strings.ReplaceAll(http.StatusText(he.Code), " ", "_"))
		return he.Code, apperrors.ErrorResponse{Error: msg, Code: code}
	}

	httpErr := apperrors.MapErrorToHTTP(err)
	return httpErr.StatusCode, httpErr.Body()
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tasktrack/internal/model"
	"tasktrack/internal/service"
	"tasktrack/internal/session"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService   service.AuthService
	secureCookies bool
}

// NewAuthHandler creates a new auth handler. secureCookies marks the
// session cookie Secure and should be set in production.
func NewAuthHandler(authService service.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookies: secureCookies}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email           string `json:"email" validate:"nonblank,email"`
	Password        string `json:"password" validate:"nonblank,min=6,max=150"`
	Name            string `json:"name" validate:"nonblank,min=2,max=30"`
	ConfirmPassword string `json:"confirmPassword" validate:"nonblank,eqfield=Password"`
}

// LoginRequest represents a user login request. Fields are not validated
// so that malformed input fails the same way as wrong credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// SuccessResponse acknowledges an operation without a payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// Test godoc
// @Summary Auth route probe
// @Tags auth
// @Produce plain
// @Success 200 {string} string
// @Router /auth/test [get]
func (h *AuthHandler) Test(c echo.Context) error {
	return c.String(http.StatusOK, "Auth route working")
}

// Register godoc
// @Summary Register a new user
// @Description Creates the user, sets the access-token cookie and returns the user.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} model.User
// @Failure 400 {object} map[string]string
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	sess, user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	session.SetCookie(c, sess, h.secureCookies)
	return c.JSON(http.StatusOK, user)
}

// Login godoc
// @Summary Login user
// @Description Unknown email and wrong password produce the same response.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	sess, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	session.SetCookie(c, sess, h.secureCookies)
	return c.JSON(http.StatusOK, LoginResponse{
		Token: sess.Token,
		User:  user,
	})
}

// Current godoc
// @Summary Currently authenticated user
// @Tags auth
// @Produce json
// @Security CookieAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/current [get]
func (h *AuthHandler) Current(c echo.Context) error {
	user, err := session.CurrentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Logout godoc
// @Summary Logout user
// @Description Clears the access-token cookie. The token itself stays valid until it expires.
// @Tags auth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /auth/logout [put]
func (h *AuthHandler) Logout(c echo.Context) error {
	session.ClearCookie(c, h.secureCookies)
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

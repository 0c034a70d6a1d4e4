package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seatflow/seatgate/internal/guard"
	"github.com/seatflow/seatgate/internal/session"
	"github.com/seatflow/seatgate/internal/upstream"
)

type AuthHandler struct {
	sessions *session.Manager
	rules    guard.Rules
}

func NewAuthHandler(sessions *session.Manager, rules guard.Rules) *AuthHandler {
	return &AuthHandler{sessions: sessions, rules: rules}
}

type loginRequest struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required"`
	// CallbackURL is the path the guard bounced the visitor away from.
	CallbackURL string `form:"callbackUrl"`
}

type registerRequest struct {
	Name            string `form:"name"            validate:"required"`
	Email           string `form:"email"           validate:"required,email"`
	Password        string `form:"password"        validate:"required,min=6"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
}

// ShowLogin renders the login form. The guard has already bounced
// authenticated visitors to the landing route.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", struct {
		Page
		CallbackURL string
	}{
		Page:        newPage(c, "Sign in", session.Session{}),
		CallbackURL: c.QueryParam("callbackUrl"),
	})
}

// Login authenticates the submitted credentials. Success persists both
// credential slots and lands on the dashboard, or on the guarded page the
// visitor originally asked for. Failure returns to the form with a notice.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		session.SetFlash(c.Response(), session.FlashError, "invalid login form")
		return c.Redirect(http.StatusFound, h.rules.LoginPath)
	}
	if err := c.Validate(&req); err != nil {
		session.SetFlash(c.Response(), session.FlashError, err.Error())
		return c.Redirect(http.StatusFound, h.rules.LoginPath)
	}

	if _, err := h.sessions.Login(c.Request().Context(), c.Response(), req.Email, req.Password); err != nil {
		// The manager has queued the notice; return to the form.
		return c.Redirect(http.StatusFound, h.rules.LoginPath)
	}

	return c.Redirect(http.StatusFound, safeTarget(req.CallbackURL, h.rules.LandingPath))
}

// ShowRegister renders the registration form.
func (h *AuthHandler) ShowRegister(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", newPage(c, "Register", session.Session{}))
}

// Register creates an account and sends the visitor to the login page;
// registration never authenticates.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		session.SetFlash(c.Response(), session.FlashError, "invalid registration form")
		return c.Redirect(http.StatusFound, "/register")
	}
	if err := c.Validate(&req); err != nil {
		session.SetFlash(c.Response(), session.FlashError, err.Error())
		return c.Redirect(http.StatusFound, "/register")
	}

	err := h.sessions.Register(c.Request().Context(), c.Response(), upstream.RegisterRequest{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return c.Redirect(http.StatusFound, "/register")
	}

	return c.Redirect(http.StatusFound, h.rules.LoginPath)
}

// Logout clears the credential slots and returns to the login page. No
// network call is made; logging out while anonymous is a safe no-op.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c.Response())
	return c.Redirect(http.StatusFound, h.rules.LoginPath)
}

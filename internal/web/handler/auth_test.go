package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/seatflow/seatgate/internal/domain"
	"github.com/seatflow/seatgate/internal/guard"
	"github.com/seatflow/seatgate/internal/session"
	"github.com/seatflow/seatgate/internal/upstream"
)

type stubAuthAPI struct {
	loginRes *upstream.AuthResponse
	loginErr error
	regErr   error
}

func (s *stubAuthAPI) Login(_ context.Context, _, _ string) (*upstream.AuthResponse, error) {
	return s.loginRes, s.loginErr
}

func (s *stubAuthAPI) Register(_ context.Context, _ upstream.RegisterRequest) (*upstream.AuthResponse, error) {
	return nil, s.regErr
}

func (s *stubAuthAPI) CurrentUser(_ context.Context) (*domain.User, error) {
	return nil, &upstream.APIError{Status: http.StatusUnauthorized, Message: "unauthorized"}
}

func newAuthTest(auth session.AuthAPI) (*echo.Echo, *AuthHandler, session.Store) {
	e := echo.New()
	e.Validator = NewValidator()
	store := session.NewStore(time.Hour)
	manager := session.NewManager(store, auth, zerolog.Nop())
	return e, NewAuthHandler(manager, guard.DefaultRules()), store
}

func postForm(e *echo.Echo, target, form string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func cookieValue(rec *httptest.ResponseRecorder, name string) (string, bool) {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name && c.MaxAge >= 0 {
			return c.Value, true
		}
	}
	return "", false
}

func TestLogin_SuccessPersistsAndLandsOnDashboard(t *testing.T) {
	auth := &stubAuthAPI{
		loginRes: &upstream.AuthResponse{
			User:  domain.User{ID: "1", Name: "A", Email: "a@x.com", Role: "user"},
			Token: "tok",
		},
	}
	e, h, _ := newAuthTest(auth)

	c, rec := postForm(e, "/login", "email=a%40x.com&password=secret")
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
	if tok, ok := cookieValue(rec, "auth_token"); !ok || tok != "tok" {
		t.Fatalf("expected bearer token cookie, got %q (ok=%v)", tok, ok)
	}
	if role, ok := cookieValue(rec, "user_role"); !ok || role != "user" {
		t.Fatalf("expected role cookie, got %q (ok=%v)", role, ok)
	}
}

func TestLogin_HonoursCallbackURL(t *testing.T) {
	auth := &stubAuthAPI{
		loginRes: &upstream.AuthResponse{
			User:  domain.User{ID: "1", Role: "admin"},
			Token: "tok",
		},
	}
	e, h, _ := newAuthTest(auth)

	c, rec := postForm(e, "/login", "email=a%40x.com&password=secret&callbackUrl=%2Fadmin%2Fseats")
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Header().Get("Location") != "/admin/seats" {
		t.Fatalf("expected callback redirect, got %q", rec.Header().Get("Location"))
	}
}

func TestLogin_RejectsOffsiteCallback(t *testing.T) {
	auth := &stubAuthAPI{
		loginRes: &upstream.AuthResponse{User: domain.User{ID: "1", Role: "user"}, Token: "tok"},
	}
	e, h, _ := newAuthTest(auth)

	c, rec := postForm(e, "/login", "email=a%40x.com&password=secret&callbackUrl=https%3A%2F%2Fevil.example")
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected landing fallback, got %q", rec.Header().Get("Location"))
	}
}

func TestLogin_FailureReturnsToForm(t *testing.T) {
	auth := &stubAuthAPI{
		loginErr: &upstream.APIError{Status: http.StatusUnauthorized, Message: "invalid credentials"},
	}
	e, h, _ := newAuthTest(auth)

	c, rec := postForm(e, "/login", "email=a%40x.com&password=wrong")
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected return to login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
	if _, ok := cookieValue(rec, "auth_token"); ok {
		t.Fatalf("no credential may be persisted on failure")
	}
}

func TestLogin_ValidationFailureSkipsUpstream(t *testing.T) {
	e, h, _ := newAuthTest(&stubAuthAPI{})

	c, rec := postForm(e, "/login", "email=not-an-email&password=x")
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected return to login, got %q", rec.Header().Get("Location"))
	}
}

func TestRegister_SuccessGoesToLogin(t *testing.T) {
	e, h, _ := newAuthTest(&stubAuthAPI{})

	c, rec := postForm(e, "/register",
		"name=A&email=a%40x.com&password=secret1&confirmPassword=secret1")
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to login, got %q", rec.Header().Get("Location"))
	}
	if _, ok := cookieValue(rec, "auth_token"); ok {
		t.Fatalf("registration must not authenticate")
	}
}

func TestRegister_PasswordMismatchRejectedLocally(t *testing.T) {
	e, h, _ := newAuthTest(&stubAuthAPI{})

	c, rec := postForm(e, "/register",
		"name=A&email=a%40x.com&password=secret1&confirmPassword=other")
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Header().Get("Location") != "/register" {
		t.Fatalf("expected return to register form, got %q", rec.Header().Get("Location"))
	}
}

func TestLogout_ClearsAndRedirects(t *testing.T) {
	e, h, _ := newAuthTest(&stubAuthAPI{})

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "tok"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	cleared := 0
	for _, ck := range rec.Result().Cookies() {
		if (ck.Name == "auth_token" || ck.Name == "user_role") && ck.MaxAge < 0 {
			cleared++
		}
	}
	if cleared != 2 {
		t.Fatalf("expected both credential slots cleared, got %d", cleared)
	}
}

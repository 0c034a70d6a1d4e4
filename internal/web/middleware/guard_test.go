package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/seatflow/seatgate/internal/guard"
	"github.com/seatflow/seatgate/internal/session"
)

func newGuarded() (echo.MiddlewareFunc, session.Store) {
	store := session.NewStore(time.Hour)
	return Guard(guard.DefaultRules(), store), store
}

func TestGuard_AllowsPublicPath(t *testing.T) {
	e := echo.New()
	mw, _ := newGuarded()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGuard_RedirectsProtectedWithoutToken(t *testing.T) {
	e := echo.New()
	mw, _ := newGuarded()

	req := httptest.NewRequest(http.MethodGet, "/dashboard/reservations", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	loc, err := url.Parse(rec.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse location: %v", err)
	}
	if loc.Path != "/login" || loc.Query().Get("callbackUrl") != "/dashboard/reservations" {
		t.Fatalf("unexpected redirect %q", rec.Header().Get("Location"))
	}
}

func TestGuard_RedirectsNonAdminFromAdminPath(t *testing.T) {
	e := echo.New()
	mw, _ := newGuarded()

	req := httptest.NewRequest(http.MethodGet, "/admin/seats", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "tok"})
	req.AddCookie(&http.Cookie{Name: "user_role", Value: "user"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected dashboard redirect, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestGuard_BouncesAuthenticatedFromLogin(t *testing.T) {
	e := echo.New()
	mw, _ := newGuarded()

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "tok"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected dashboard redirect, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestGuard_AllowsAdminWithAdminRole(t *testing.T) {
	e := echo.New()
	mw, _ := newGuarded()

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "tok"})
	req.AddCookie(&http.Cookie{Name: "user_role", Value: "admin"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

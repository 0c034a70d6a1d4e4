// Package web assembles the Echo application: renderer, validator, error
// handler, global middleware, the route guard, and the page routes.
package web

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/seatflow/seatgate/internal/guard"
	"github.com/seatflow/seatgate/internal/session"
	"github.com/seatflow/seatgate/internal/upstream"
	"github.com/seatflow/seatgate/internal/web/handler"
	"github.com/seatflow/seatgate/internal/web/middleware"
)

// Options carries everything NewRouter needs to assemble the application.
type Options struct {
	Upstream *upstream.Client
	// CredentialTTL is the lifetime of the credential cookies; zero means the
	// 7-day default.
	CredentialTTL time.Duration
	Log           zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("seatgate"))

	// --- Dependencies ---
	store := session.NewStore(opts.CredentialTTL)
	rules := guard.DefaultRules()

	authAPI := upstream.NewAuthService(opts.Upstream)
	seats := upstream.NewSeatService(opts.Upstream)
	reservations := upstream.NewReservationService(opts.Upstream)
	users := upstream.NewUserService(opts.Upstream)
	locations := upstream.NewLocationService(opts.Upstream)
	timeSlots := upstream.NewTimeSlotService(opts.Upstream)
	admin := upstream.NewAdminService(opts.Upstream)

	sessions := session.NewManager(store, authAPI, opts.Log)

	authHandler := handler.NewAuthHandler(sessions, rules)
	homeHandler := handler.NewHomeHandler(sessions)
	dashboardHandler := handler.NewDashboardHandler(sessions, reservations, rules)
	reservationHandler := handler.NewReservationHandler(sessions, reservations, seats, timeSlots, rules)
	checkinHandler := handler.NewCheckinHandler(sessions, reservations, rules)
	adminHandler := handler.NewAdminHandler(sessions, admin, reservations, rules)
	adminSeatHandler := handler.NewAdminSeatHandler(sessions, seats, locations, rules)
	adminUserHandler := handler.NewAdminUserHandler(sessions, users, rules)

	// The guard runs before every handler; paths outside its rules pass through.
	e.Use(middleware.Guard(rules, store))

	// --- Public routes ---
	e.GET("/", homeHandler.Landing)
	e.GET("/login", authHandler.ShowLogin)
	e.POST("/login", authHandler.Login)
	e.GET("/register", authHandler.ShowRegister)
	e.POST("/register", authHandler.Register)
	e.POST("/logout", authHandler.Logout)

	// --- Authenticated routes ---
	e.GET("/dashboard", dashboardHandler.Overview)
	e.GET("/dashboard/reservations", reservationHandler.List)
	e.GET("/dashboard/reservations/new", reservationHandler.NewForm)
	e.POST("/dashboard/reservations", reservationHandler.Create)
	e.POST("/dashboard/reservations/:id/cancel", reservationHandler.Cancel)
	e.GET("/dashboard/checkin", checkinHandler.Page)
	e.POST("/dashboard/checkin/:id", checkinHandler.Checkin)

	// --- Admin routes ---
	e.GET("/admin", adminHandler.Overview)
	e.GET("/admin/reservations", adminHandler.Reservations)
	e.GET("/admin/seats", adminSeatHandler.List)
	e.GET("/admin/seats/new", adminSeatHandler.NewForm)
	e.POST("/admin/seats", adminSeatHandler.Create)
	e.POST("/admin/seats/:id/status", adminSeatHandler.UpdateStatus)
	e.POST("/admin/seats/:id/delete", adminSeatHandler.Delete)
	e.GET("/admin/users", adminUserHandler.List)
	e.GET("/admin/users/:id", adminUserHandler.Detail)
	e.POST("/admin/users/:id/role", adminUserHandler.UpdateRole)
	e.POST("/admin/users/:id/status", adminUserHandler.UpdateStatus)
	e.POST("/admin/users/:id/delete", adminUserHandler.Delete)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(opts.Upstream)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seatflow/seatgate/internal/domain"
	"github.com/seatflow/seatgate/internal/guard"
	"github.com/seatflow/seatgate/internal/session"
	"github.com/seatflow/seatgate/internal/upstream"
)

const adminRecentLimit = 20

type AdminHandler struct {
	sessions     *session.Manager
	admin        *upstream.AdminService
	reservations *upstream.ReservationService
	rules        guard.Rules
}

func NewAdminHandler(
	sessions *session.Manager,
	admin *upstream.AdminService,
	reservations *upstream.ReservationService,
	rules guard.Rules,
) *AdminHandler {
	return &AdminHandler{sessions: sessions, admin: admin, reservations: reservations, rules: rules}
}

// Overview renders the admin dashboard: totals, recent reservations across
// all users, and the check-in rate series.
func (h *AdminHandler) Overview(c echo.Context) error {
	sess := h.sessions.Resolve(c.Request().Context(), c.Response(), c.Request())
	if !sess.IsAuthenticated() {
		return c.Redirect(http.StatusFound, h.rules.LoginPath)
	}

	page := newPage(c, "Administration", sess)
	ctx := authContext(c, h.sessions.Store())

	stats, err := h.admin.DashboardStats(ctx)
	if err != nil {
		page.Flash = &session.Flash{Kind: session.FlashError, Message: "could not load dashboard stats"}
	}
	recent, err := h.reservations.AllRecent(ctx, recentLimit)
	if err != nil && page.Flash == nil {
		page.Flash = &session.Flash{Kind: session.FlashError, Message: "could not load recent reservations"}
	}
	checkins, err := h.reservations.CheckinStats(ctx)
	if err != nil && page.Flash == nil {
		page.Flash = &session.Flash{Kind: session.FlashError, Message: "could not load check-in stats"}
	}

	return c.Render(http.StatusOK, "admin_dashboard.html", struct {
		Page
		Stats    *domain.DashboardStats
		Recent   []domain.Reservation
		Checkins []domain.CheckinStat
	}{Page: page, Stats: stats, Recent: recent, Checkins: checkins})
}

// Reservations lists recent reservations across all users.
func (h *AdminHandler) Reservations(c echo.Context) error {
	sess := h.sessions.Resolve(c.Request().Context(), c.Response(), c.Request())
	if !sess.IsAuthenticated() {
		return c.Redirect(http.StatusFound, h.rules.LoginPath)
	}

	page := newPage(c, "All reservations", sess)
	list, err := h.reservations.AllRecent(authContext(c, h.sessions.Store()), adminRecentLimit)
	if err != nil {
		page.Flash = &session.Flash{Kind: session.FlashError, Message: "could not load reservations"}
	}

	return c.Render(http.StatusOK, "admin_reservations.html", struct {
		Page
		Reservations []domain.Reservation
	}{Page: page, Reservations: list})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seatflow/seatgate/internal/domain"
	"github.com/seatflow/seatgate/internal/guard"
	"github.com/seatflow/seatgate/internal/session"
	"github.com/seatflow/seatgate/internal/upstream"
)

const recentLimit = 5

type DashboardHandler struct {
	sessions     *session.Manager
	reservations *upstream.ReservationService
	rules        guard.Rules
}

func NewDashboardHandler(sessions *session.Manager, reservations *upstream.ReservationService, rules guard.Rules) *DashboardHandler {
	return &DashboardHandler{sessions: sessions, reservations: reservations, rules: rules}
}

// resolve settles the session for a guarded page. The guard already checked
// cookie presence; the token can still turn out stale here, in which case the
// manager has cleared it and the visitor goes back through the login page.
func (h *DashboardHandler) resolve(c echo.Context) (session.Session, bool) {
	sess := h.sessions.Resolve(c.Request().Context(), c.Response(), c.Request())
	return sess, sess.IsAuthenticated()
}

// Overview renders the user dashboard: recent reservations plus the per-day
// booking counts.
func (h *DashboardHandler) Overview(c echo.Context) error {
	sess, ok := h.resolve(c)
	if !ok {
		return c.Redirect(http.StatusFound, h.rules.LoginPath)
	}

	page := newPage(c, "Dashboard", sess)
	ctx := authContext(c, h.sessions.Store())

	recent, err := h.reservations.Recent(ctx, recentLimit)
	if err != nil {
		page.Flash = &session.Flash{Kind: session.FlashError, Message: "could not load recent reservations"}
	}
	stats, err := h.reservations.Stats(ctx)
	if err != nil && page.Flash == nil {
		page.Flash = &session.Flash{Kind: session.FlashError, Message: "could not load reservation stats"}
	}

	return c.Render(http.StatusOK, "dashboard.html", struct {
		Page
		Recent []domain.Reservation
		Stats  []domain.ReservationStat
	}{Page: page, Recent: recent, Stats: stats})
}

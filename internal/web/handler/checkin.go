package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seatflow/seatgate/internal/domain"
	"github.com/seatflow/seatgate/internal/guard"
	"github.com/seatflow/seatgate/internal/session"
	"github.com/seatflow/seatgate/internal/upstream"
)

type CheckinHandler struct {
	sessions     *session.Manager
	reservations *upstream.ReservationService
	rules        guard.Rules
}

func NewCheckinHandler(sessions *session.Manager, reservations *upstream.ReservationService, rules guard.Rules) *CheckinHandler {
	return &CheckinHandler{sessions: sessions, reservations: reservations, rules: rules}
}

// Page lists the visitor's reservations that can be checked in today.
func (h *CheckinHandler) Page(c echo.Context) error {
	sess := h.sessions.Resolve(c.Request().Context(), c.Response(), c.Request())
	if !sess.IsAuthenticated() {
		return c.Redirect(http.StatusFound, h.rules.LoginPath)
	}

	page := newPage(c, "Check in", sess)
	list, err := h.reservations.TodayCheckin(authContext(c, h.sessions.Store()))
	if err != nil {
		page.Flash = &session.Flash{Kind: session.FlashError, Message: "could not load today's reservations"}
	}

	return c.Render(http.StatusOK, "checkin.html", struct {
		Page
		Reservations []domain.Reservation
	}{Page: page, Reservations: list})
}

// Checkin marks one reservation as checked in.
func (h *CheckinHandler) Checkin(c echo.Context) error {
	if _, err := h.reservations.Checkin(authContext(c, h.sessions.Store()), c.Param("id")); err != nil {
		session.SetFlash(c.Response(), session.FlashError, upstreamMessage(err, "check-in failed"))
	} else {
		session.SetFlash(c.Response(), session.FlashSuccess, "checked in")
	}
	return c.Redirect(http.StatusFound, "/dashboard/checkin")
}

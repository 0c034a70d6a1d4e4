package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seatflow/seatgate/internal/domain"
	"github.com/seatflow/seatgate/internal/guard"
	"github.com/seatflow/seatgate/internal/session"
	"github.com/seatflow/seatgate/internal/upstream"
)

type AdminSeatHandler struct {
	sessions  *session.Manager
	seats     *upstream.SeatService
	locations *upstream.LocationService
	rules     guard.Rules
}

func NewAdminSeatHandler(
	sessions *session.Manager,
	seats *upstream.SeatService,
	locations *upstream.LocationService,
	rules guard.Rules,
) *AdminSeatHandler {
	return &AdminSeatHandler{sessions: sessions, seats: seats, locations: locations, rules: rules}
}

type createSeatForm struct {
	Number      string `form:"number"     validate:"required"`
	LocationID  string `form:"locationId" validate:"required"`
	Features    string `form:"features"`
	Description string `form:"description"`
}

type seatStatusForm struct {
	Status string `form:"status" validate:"required"`
}

// List shows every seat.
func (h *AdminSeatHandler) List(c echo.Context) error {
	sess := h.sessions.Resolve(c.Request().Context(), c.Response(), c.Request())
	if !sess.IsAuthenticated() {
		return c.Redirect(http.StatusFound, h.rules.LoginPath)
	}

	page := newPage(c, "Seats", sess)
	seats, err := h.seats.List(authContext(c, h.sessions.Store()))
	if err != nil {
		page.Flash = &session.Flash{Kind: session.FlashError, Message: "could not load seats"}
	}

	return c.Render(http.StatusOK, "admin_seats.html", struct {
		Page
		Seats []domain.Seat
	}{Page: page, Seats: seats})
}

// NewForm shows the seat creation form with the available locations.
func (h *AdminSeatHandler) NewForm(c echo.Context) error {
	sess := h.sessions.Resolve(c.Request().Context(), c.Response(), c.Request())
	if !sess.IsAuthenticated() {
		return c.Redirect(http.StatusFound, h.rules.LoginPath)
	}

	page := newPage(c, "New seat", sess)
	locations, err := h.locations.List(authContext(c, h.sessions.Store()))
	if err != nil {
		page.Flash = &session.Flash{Kind: session.FlashError, Message: "could not load locations"}
	}

	return c.Render(http.StatusOK, "admin_seat_new.html", struct {
		Page
		Locations []domain.Location
	}{Page: page, Locations: locations})
}

// Create adds a seat. Features arrive as a comma-separated field.
func (h *AdminSeatHandler) Create(c echo.Context) error {
	var form createSeatForm
	if err := c.Bind(&form); err != nil {
		session.SetFlash(c.Response(), session.FlashError, "invalid seat form")
		return c.Redirect(http.StatusFound, "/admin/seats/new")
	}
	if err := c.Validate(&form); err != nil {
		session.SetFlash(c.Response(), session.FlashError, err.Error())
		return c.Redirect(http.StatusFound, "/admin/seats/new")
	}

	_, err := h.seats.Create(authContext(c, h.sessions.Store()), upstream.CreateSeatInput{
		Number:      form.Number,
		LocationID:  form.LocationID,
		Features:    splitFeatures(form.Features),
		Description: form.Description,
	})
	if err != nil {
		session.SetFlash(c.Response(), session.FlashError, upstreamMessage(err, "could not create the seat"))
		return c.Redirect(http.StatusFound, "/admin/seats/new")
	}

	session.SetFlash(c.Response(), session.FlashSuccess, "seat created")
	return c.Redirect(http.StatusFound, "/admin/seats")
}

// UpdateStatus changes one seat's status.
func (h *AdminSeatHandler) UpdateStatus(c echo.Context) error {
	var form seatStatusForm
	if err := c.Bind(&form); err != nil || c.Validate(&form) != nil {
		session.SetFlash(c.Response(), session.FlashError, "invalid status")
		return c.Redirect(http.StatusFound, "/admin/seats")
	}

	if _, err := h.seats.UpdateStatus(authContext(c, h.sessions.Store()), c.Param("id"), form.Status); err != nil {
		session.SetFlash(c.Response(), session.FlashError, upstreamMessage(err, "could not update the seat"))
	} else {
		session.SetFlash(c.Response(), session.FlashSuccess, "seat updated")
	}
	return c.Redirect(http.StatusFound, "/admin/seats")
}

// Delete removes one seat.
func (h *AdminSeatHandler) Delete(c echo.Context) error {
	if err := h.seats.Delete(authContext(c, h.sessions.Store()), c.Param("id")); err != nil {
		session.SetFlash(c.Response(), session.FlashError, upstreamMessage(err, "could not delete the seat"))
	} else {
		session.SetFlash(c.Response(), session.FlashInfo, "seat deleted")
	}
	return c.Redirect(http.StatusFound, "/admin/seats")
}

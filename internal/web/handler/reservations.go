package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seatflow/seatgate/internal/domain"
	"github.com/seatflow/seatgate/internal/guard"
	"github.com/seatflow/seatgate/internal/pkg/dates"
	"github.com/seatflow/seatgate/internal/session"
	"github.com/seatflow/seatgate/internal/upstream"
)

type ReservationHandler struct {
	sessions     *session.Manager
	reservations *upstream.ReservationService
	seats        *upstream.SeatService
	timeSlots    *upstream.TimeSlotService
	rules        guard.Rules
}

func NewReservationHandler(
	sessions *session.Manager,
	reservations *upstream.ReservationService,
	seats *upstream.SeatService,
	timeSlots *upstream.TimeSlotService,
	rules guard.Rules,
) *ReservationHandler {
	return &ReservationHandler{
		sessions:     sessions,
		reservations: reservations,
		seats:        seats,
		timeSlots:    timeSlots,
		rules:        rules,
	}
}

type createReservationForm struct {
	SeatID     string `form:"seatId"     validate:"required"`
	Date       string `form:"date"       validate:"required"`
	TimeSlotID string `form:"timeSlotId" validate:"required"`
}

// List shows all of the visitor's reservations.
func (h *ReservationHandler) List(c echo.Context) error {
	sess := h.sessions.Resolve(c.Request().Context(), c.Response(), c.Request())
	if !sess.IsAuthenticated() {
		return c.Redirect(http.StatusFound, h.rules.LoginPath)
	}

	page := newPage(c, "My reservations", sess)
	list, err := h.reservations.ListForUser(authContext(c, h.sessions.Store()))
	if err != nil {
		page.Flash = &session.Flash{Kind: session.FlashError, Message: "could not load reservations"}
	}

	return c.Render(http.StatusOK, "reservations.html", struct {
		Page
		Reservations []domain.Reservation
	}{Page: page, Reservations: list})
}

// NewForm shows the booking form: available seats and open slots for the
// chosen date (today when none given).
func (h *ReservationHandler) NewForm(c echo.Context) error {
	sess := h.sessions.Resolve(c.Request().Context(), c.Response(), c.Request())
	if !sess.IsAuthenticated() {
		return c.Redirect(http.StatusFound, h.rules.LoginPath)
	}

	date := c.QueryParam("date")
	if date == "" {
		date = dates.Today()
	}

	page := newPage(c, "New reservation", sess)
	ctx := authContext(c, h.sessions.Store())

	seats, err := h.seats.Available(ctx, date, c.QueryParam("timeSlotId"))
	if err != nil {
		page.Flash = &session.Flash{Kind: session.FlashError, Message: "could not load available seats"}
	}
	slots, err := h.timeSlots.Available(ctx, date, "")
	if err != nil && page.Flash == nil {
		page.Flash = &session.Flash{Kind: session.FlashError, Message: "could not load time slots"}
	}

	return c.Render(http.StatusOK, "reservation_new.html", struct {
		Page
		Date  string
		Seats []domain.Seat
		Slots []domain.TimeSlot
	}{Page: page, Date: date, Seats: seats, Slots: slots})
}

// Create books a seat and returns to the reservation list.
func (h *ReservationHandler) Create(c echo.Context) error {
	var form createReservationForm
	if err := c.Bind(&form); err != nil {
		session.SetFlash(c.Response(), session.FlashError, "invalid reservation form")
		return c.Redirect(http.StatusFound, "/dashboard/reservations/new")
	}
	if err := c.Validate(&form); err != nil {
		session.SetFlash(c.Response(), session.FlashError, err.Error())
		return c.Redirect(http.StatusFound, "/dashboard/reservations/new")
	}

	_, err := h.reservations.Create(authContext(c, h.sessions.Store()), upstream.CreateReservationInput{
		SeatID:     form.SeatID,
		Date:       form.Date,
		TimeSlotID: form.TimeSlotID,
	})
	if err != nil {
		session.SetFlash(c.Response(), session.FlashError, upstreamMessage(err, "could not create the reservation"))
		return c.Redirect(http.StatusFound, "/dashboard/reservations/new")
	}

	session.SetFlash(c.Response(), session.FlashSuccess, "reservation created")
	return c.Redirect(http.StatusFound, "/dashboard/reservations")
}

// Cancel cancels one reservation and returns to the list.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	if _, err := h.reservations.Cancel(authContext(c, h.sessions.Store()), c.Param("id")); err != nil {
		session.SetFlash(c.Response(), session.FlashError, upstreamMessage(err, "could not cancel the reservation"))
	} else {
		session.SetFlash(c.Response(), session.FlashInfo, "reservation cancelled")
	}
	return c.Redirect(http.StatusFound, "/dashboard/reservations")
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seatflow/seatgate/internal/session"
)

type HomeHandler struct {
	sessions *session.Manager
}

func NewHomeHandler(sessions *session.Manager) *HomeHandler {
	return &HomeHandler{sessions: sessions}
}

// Landing renders the public front page.
func (h *HomeHandler) Landing(c echo.Context) error {
	sess := h.sessions.Resolve(c.Request().Context(), c.Response(), c.Request())
	return c.Render(http.StatusOK, "landing.html", newPage(c, "Seat reservation", sess))
}

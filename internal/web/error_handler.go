package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/seatflow/seatgate/internal/upstream"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Passes through Echo's own errors (404 from the router, bind failures).
//   - Maps upstream API failures to their reported status and message.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if renderErr := c.Render(code, "error.html", map[string]any{
			"Status":  code,
			"Message": msg,
		}); renderErr != nil {
			_ = c.String(code, msg)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		if apiErr.IsTimeout() {
			return http.StatusGatewayTimeout, "the reservation service did not respond in time"
		}
		return apiErr.Status, apiErr.Message
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

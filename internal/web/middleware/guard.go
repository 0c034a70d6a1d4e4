package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seatflow/seatgate/internal/guard"
	"github.com/seatflow/seatgate/internal/metrics"
	"github.com/seatflow/seatgate/internal/session"
)

// Guard evaluates the navigation rules against the request's persisted
// credentials before any handler runs. Paths outside the configured prefixes
// and pages pass through untouched.
func Guard(rules guard.Rules, store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			creds := store.Read(c.Request())
			decision := rules.Decide(creds, c.Request().URL.Path)
			if decision.Allowed() {
				metrics.GuardDecisionsTotal.WithLabelValues("allow").Inc()
				return next(c)
			}

			outcome := "landing_redirect"
			if decision.Location != rules.LandingPath {
				outcome = "login_redirect"
			}
			metrics.GuardDecisionsTotal.WithLabelValues(outcome).Inc()
			return c.Redirect(http.StatusFound, decision.Location)
		}
	}
}

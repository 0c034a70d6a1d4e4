// Package handler contains the page and form handlers. Handlers bind and
// validate input, call the upstream service façades, and render templates;
// upstream failures surface as flash notices rather than crashed views.
package handler

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/seatflow/seatgate/internal/session"
	"github.com/seatflow/seatgate/internal/upstream"
)

// Page carries the fields every template can render.
type Page struct {
	Title   string
	Session session.Session
	Flash   *session.Flash
}

// newPage pops any pending flash notice into the page.
func newPage(c echo.Context, title string, sess session.Session) Page {
	p := Page{Title: title, Session: sess}
	if f, ok := session.PopFlash(c.Response(), c.Request()); ok {
		p.Flash = &f
	}
	return p
}

// authContext attaches the request's bearer token to the outgoing context so
// upstream calls are made on the visitor's behalf.
func authContext(c echo.Context, store session.Store) context.Context {
	creds := store.Read(c.Request())
	return upstream.WithToken(c.Request().Context(), creds.Token)
}

// upstreamMessage prefers the API's own message for notices; timeouts and
// transport failures fall back to the generic text.
func upstreamMessage(err error, fallback string) string {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" && !apiErr.IsTimeout() {
		return apiErr.Message
	}
	return fallback
}

// safeTarget keeps redirects on-site: only rooted single-slash paths are
// honoured, anything else falls back to the given default.
func safeTarget(candidate, fallback string) string {
	if strings.HasPrefix(candidate, "/") && !strings.HasPrefix(candidate, "//") {
		return candidate
	}
	return fallback
}

// splitFeatures turns a comma-separated form field into the feature list the
// API expects, dropping blanks.
func splitFeatures(raw string) []string {
	parts := strings.Split(raw, ",")
	features := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			features = append(features, trimmed)
		}
	}
	return features
}

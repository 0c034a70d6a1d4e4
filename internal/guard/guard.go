// Package guard decides, before a page is rendered, whether a navigation is
// allowed given only the persisted credential pair. It never touches the
// network, never decodes the bearer token, and has no view of in-memory
// session state; the role marker is trusted verbatim.
package guard

import (
	"net/url"
	"strings"

	"github.com/seatflow/seatgate/internal/domain"
	"github.com/seatflow/seatgate/internal/session"
)

// Action is the kind of decision the guard reaches.
type Action int

const (
	Allow Action = iota
	Redirect
)

// Decision is the guard's verdict for one navigation.
type Decision struct {
	Action   Action
	Location string
}

// Allowed reports whether the navigation may proceed.
func (d Decision) Allowed() bool {
	return d.Action == Allow
}

// Rules is the guard's configuration. Prefixes and pages are data, not logic,
// so deployments can reshape the route surface without touching the decision
// table.
type Rules struct {
	// ProtectedPrefixes require a bearer token.
	ProtectedPrefixes []string
	// AdminPrefixes additionally require the admin role marker.
	AdminPrefixes []string
	// AuthPages bounce already-authenticated visitors to the landing route.
	AuthPages []string
	// LoginPath receives unauthenticated visitors, with the original path in
	// the callbackUrl query parameter.
	LoginPath string
	// LandingPath is the default authenticated destination.
	LandingPath string
}

// DefaultRules returns the gateway's route surface.
func DefaultRules() Rules {
	return Rules{
		ProtectedPrefixes: []string{"/dashboard", "/admin"},
		AdminPrefixes:     []string{"/admin"},
		AuthPages:         []string{"/login", "/register"},
		LoginPath:         "/login",
		LandingPath:       "/dashboard",
	}
}

// Decide evaluates the decision table top to bottom; the first matching row
// wins.
func (r Rules) Decide(creds session.Credentials, path string) Decision {
	switch {
	case hasAnyPrefix(r.ProtectedPrefixes, path) && !creds.IsAuthenticated():
		q := url.Values{}
		q.Set("callbackUrl", path)
		return Decision{Action: Redirect, Location: r.LoginPath + "?" + q.Encode()}

	case hasAnyPrefix(r.AdminPrefixes, path) && creds.Role != domain.RoleAdmin:
		return Decision{Action: Redirect, Location: r.LandingPath}

	case isOneOf(r.AuthPages, path) && creds.IsAuthenticated():
		return Decision{Action: Redirect, Location: r.LandingPath}
	}
	return Decision{Action: Allow}
}

func hasAnyPrefix(prefixes []string, path string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func isOneOf(pages []string, path string) bool {
	for _, p := range pages {
		if path == p {
			return true
		}
	}
	return false
}

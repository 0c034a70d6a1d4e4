// Package session owns the browser-persisted credential and the operations
// that mutate it. The credential lives in two cookie slots: the opaque bearer
// token and a role marker the pre-render route guard can read without decoding
// the token or calling the network.
package session

import (
	"net/http"
	"time"

	"github.com/seatflow/seatgate/internal/domain"
)

const (
	tokenCookie = "auth_token"
	roleCookie  = "user_role"
)

// DefaultTTL is the credential cookie lifetime when none is configured.
const DefaultTTL = 7 * 24 * time.Hour

// Credentials is the persisted credential pair as read from one request.
// Absent slots are empty strings; a missing cookie jar is indistinguishable
// from "not logged in".
type Credentials struct {
	Token string
	Role  string
}

// IsAuthenticated reports whether a bearer token is present.
func (c Credentials) IsAuthenticated() bool {
	return c.Token != ""
}

// IsAdmin reports whether the role marker holds the admin role.
func (c Credentials) IsAdmin() bool {
	return c.Role == domain.RoleAdmin
}

// Store reads and writes the credential cookie pair. Both slots are always
// written and cleared together through single calls so partial-failure
// handling stays in one place.
type Store struct {
	ttl time.Duration
}

func NewStore(ttl time.Duration) Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return Store{ttl: ttl}
}

// Read returns the credential pair carried by the request's cookies.
func (s Store) Read(r *http.Request) Credentials {
	return Credentials{
		Token: cookieValue(r, tokenCookie),
		Role:  cookieValue(r, roleCookie),
	}
}

// Save persists the bearer token and the role marker on the response.
func (s Store) Save(w http.ResponseWriter, token, role string) {
	setCookie(w, tokenCookie, token, int(s.ttl.Seconds()))
	setCookie(w, roleCookie, role, int(s.ttl.Seconds()))
}

// Clear expires both slots. Safe to call when nothing is persisted.
func (s Store) Clear(w http.ResponseWriter) {
	setCookie(w, tokenCookie, "", -1)
	setCookie(w, roleCookie, "", -1)
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

func setCookie(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		SameSite: http.SameSiteLaxMode,
	})
}

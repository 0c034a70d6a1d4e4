package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/seatflow/seatgate/internal/domain"
	"github.com/seatflow/seatgate/internal/metrics"
	"github.com/seatflow/seatgate/internal/upstream"
)

// AuthAPI is the slice of the upstream client the Manager needs. Tests
// substitute a stub.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*upstream.AuthResponse, error)
	Register(ctx context.Context, req upstream.RegisterRequest) (*upstream.AuthResponse, error)
	CurrentUser(ctx context.Context) (*domain.User, error)
}

// Session is the resolved state for one request: either anonymous or the
// authenticated user as confirmed by the reservation API.
type Session struct {
	User *domain.User
}

func (s Session) IsAuthenticated() bool {
	return s.User != nil
}

// Manager orchestrates login, register, logout and per-request session
// resolution, and keeps both credential slots in sync. It holds no state of
// its own; all durable state lives in the cookie pair.
type Manager struct {
	store Store
	auth  AuthAPI
	log   zerolog.Logger
}

func NewManager(store Store, auth AuthAPI, log zerolog.Logger) *Manager {
	return &Manager{store: store, auth: auth, log: log}
}

// Store exposes the credential store for callers that only need reads.
func (m *Manager) Store() Store {
	return m.store
}

// Resolve settles the session for one request. No token means anonymous
// without any network call. With a token it asks the API who the bearer is;
// on success the role slot is refreshed from the authoritative answer, on any
// failure both slots are cleared and the request proceeds anonymously. The
// self-heal is silent: an expired token is not an error the page should see.
func (m *Manager) Resolve(ctx context.Context, w http.ResponseWriter, r *http.Request) Session {
	creds := m.store.Read(r)
	if !creds.IsAuthenticated() {
		return Session{}
	}

	user, err := m.auth.CurrentUser(upstream.WithToken(ctx, creds.Token))
	if err != nil {
		m.log.Debug().Err(err).Msg("session probe failed, clearing credentials")
		metrics.SessionEventsTotal.WithLabelValues("self_heal").Inc()
		m.store.Clear(w)
		return Session{}
	}

	if user.Role != "" && user.Role != creds.Role {
		m.store.Save(w, creds.Token, user.Role)
	}
	return Session{User: user}
}

// Login authenticates against the API and persists both credential slots on
// success. On failure a user-facing notice is queued and the error is
// returned so the handler's own error path still runs.
func (m *Manager) Login(ctx context.Context, w http.ResponseWriter, email, password string) (*domain.User, error) {
	res, err := m.auth.Login(ctx, email, password)
	if err != nil {
		m.log.Info().Err(err).Str("email", email).Msg("login failed")
		SetFlash(w, FlashError, failureMessage(err, "login failed, check your email and password"))
		return nil, err
	}

	m.store.Save(w, res.Token, res.User.Role)
	metrics.SessionEventsTotal.WithLabelValues("login").Inc()
	m.log.Info().Str("user", res.User.ID).Str("role", res.User.Role).Msg("user logged in")
	return &res.User, nil
}

// Register creates an account. Registration never authenticates: the caller
// is sent to the login page to sign in with the new account.
func (m *Manager) Register(ctx context.Context, w http.ResponseWriter, req upstream.RegisterRequest) error {
	if _, err := m.auth.Register(ctx, req); err != nil {
		m.log.Info().Err(err).Str("email", req.Email).Msg("registration failed")
		SetFlash(w, FlashError, failureMessage(err, "registration failed, check your details"))
		return err
	}

	metrics.SessionEventsTotal.WithLabelValues("register").Inc()
	SetFlash(w, FlashSuccess, "account created, sign in with your new credentials")
	return nil
}

// Logout clears both credential slots. No network call is made and the
// operation is idempotent: logging out while anonymous still clears.
func (m *Manager) Logout(w http.ResponseWriter) {
	m.store.Clear(w)
	metrics.SessionEventsTotal.WithLabelValues("logout").Inc()
	SetFlash(w, FlashInfo, "signed out")
}

// failureMessage prefers the API's own message when the failure came from the
// API; transport failures fall back to the generic text.
func failureMessage(err error, fallback string) string {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" && !apiErr.IsTimeout() {
		return apiErr.Message
	}
	return fallback
}

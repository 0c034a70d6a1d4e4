package upstream

import (
	"context"

	"github.com/seatflow/seatgate/internal/domain"
)

// AuthService calls the authentication endpoints.
type AuthService struct {
	c *Client
}

func NewAuthService(c *Client) *AuthService {
	return &AuthService{c: c}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var res AuthResponse
	if err := s.c.Post(ctx, "/auth/login", LoginRequest{Email: email, Password: password}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var res AuthResponse
	if err := s.c.Post(ctx, "/auth/register", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CurrentUser fetches the user the context's bearer token belongs to.
func (s *AuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := s.c.Get(ctx, "/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

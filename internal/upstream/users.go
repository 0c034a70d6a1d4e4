package upstream

import (
	"context"
	"net/url"

	"github.com/seatflow/seatgate/internal/domain"
)

// UserService calls the user administration endpoints.
type UserService struct {
	c *Client
}

func NewUserService(c *Client) *UserService {
	return &UserService{c: c}
}

// UserFilter narrows List by free-text query and role.
type UserFilter struct {
	Query string
	Role  string
}

type updateUserRole struct {
	Role string `json:"role"`
}

type updateUserStatus struct {
	Status string `json:"status"`
}

type UpdateUserInput struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ChangePasswordResult mirrors the API's acknowledgement payload.
type ChangePasswordResult struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

func (s *UserService) List(ctx context.Context, filter UserFilter) ([]domain.User, error) {
	endpoint := "/users"
	q := url.Values{}
	if filter.Query != "" {
		q.Set("q", filter.Query)
	}
	if filter.Role != "" {
		q.Set("role", filter.Role)
	}
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}
	var users []domain.User
	if err := s.c.Get(ctx, endpoint, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := s.c.Get(ctx, "/users/"+id, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) UpdateRole(ctx context.Context, id, role string) (*domain.User, error) {
	var user domain.User
	if err := s.c.Patch(ctx, "/users/"+id+"/role", updateUserRole{Role: role}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) UpdateStatus(ctx context.Context, id, status string) (*domain.User, error) {
	var user domain.User
	if err := s.c.Patch(ctx, "/users/"+id+"/status", updateUserStatus{Status: status}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error) {
	var user domain.User
	if err := s.c.Put(ctx, "/users/"+id, in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) ChangePassword(ctx context.Context, id string, in ChangePasswordInput) (*ChangePasswordResult, error) {
	var res ChangePasswordResult
	if err := s.c.Post(ctx, "/users/"+id+"/change-password", in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.c.Delete(ctx, "/users/"+id, nil)
}

func (s *UserService) Search(ctx context.Context, query string) ([]domain.User, error) {
	var users []domain.User
	if err := s.c.Get(ctx, "/users/search?q="+url.QueryEscape(query), &users); err != nil {
		return nil, err
	}
	return users, nil
}

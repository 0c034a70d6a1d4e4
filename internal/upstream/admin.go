package upstream

import (
	"context"

	"github.com/seatflow/seatgate/internal/domain"
)

// AdminService calls the admin summary endpoints.
type AdminService struct {
	c *Client
}

func NewAdminService(c *Client) *AdminService {
	return &AdminService{c: c}
}

func (s *AdminService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var out domain.DashboardStats
	if err := s.c.Get(ctx, "/admin/dashboard-stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

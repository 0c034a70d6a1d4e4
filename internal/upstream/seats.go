package upstream

import (
	"context"
	"net/url"

	"github.com/seatflow/seatgate/internal/domain"
)

// SeatService calls the seat endpoints.
type SeatService struct {
	c *Client
}

func NewSeatService(c *Client) *SeatService {
	return &SeatService{c: c}
}

type CreateSeatInput struct {
	Number      string   `json:"number"`
	LocationID  string   `json:"locationId"`
	Features    []string `json:"features"`
	Description string   `json:"description,omitempty"`
}

type updateSeatStatus struct {
	Status string `json:"status"`
}

func (s *SeatService) List(ctx context.Context) ([]domain.Seat, error) {
	var seats []domain.Seat
	if err := s.c.Get(ctx, "/seats", &seats); err != nil {
		return nil, err
	}
	return seats, nil
}

func (s *SeatService) Get(ctx context.Context, id string) (*domain.Seat, error) {
	var seat domain.Seat
	if err := s.c.Get(ctx, "/seats/"+id, &seat); err != nil {
		return nil, err
	}
	return &seat, nil
}

// Available lists seats free on the given YYYY-MM-DD date, optionally limited
// to one time slot.
func (s *SeatService) Available(ctx context.Context, date, timeSlotID string) ([]domain.Seat, error) {
	q := url.Values{}
	q.Set("date", date)
	if timeSlotID != "" {
		q.Set("timeSlotId", timeSlotID)
	}
	var seats []domain.Seat
	if err := s.c.Get(ctx, "/seats/available?"+q.Encode(), &seats); err != nil {
		return nil, err
	}
	return seats, nil
}

func (s *SeatService) Create(ctx context.Context, in CreateSeatInput) (*domain.Seat, error) {
	var seat domain.Seat
	if err := s.c.Post(ctx, "/seats", in, &seat); err != nil {
		return nil, err
	}
	return &seat, nil
}

func (s *SeatService) UpdateStatus(ctx context.Context, id, status string) (*domain.Seat, error) {
	var seat domain.Seat
	if err := s.c.Patch(ctx, "/seats/"+id+"/status", updateSeatStatus{Status: status}, &seat); err != nil {
		return nil, err
	}
	return &seat, nil
}

func (s *SeatService) Delete(ctx context.Context, id string) error {
	return s.c.Delete(ctx, "/seats/"+id, nil)
}

package upstream

import (
	"context"
	"net/url"

	"github.com/seatflow/seatgate/internal/domain"
)

// LocationService calls the location endpoints.
type LocationService struct {
	c *Client
}

func NewLocationService(c *Client) *LocationService {
	return &LocationService{c: c}
}

func (s *LocationService) List(ctx context.Context) ([]domain.Location, error) {
	var out []domain.Location
	if err := s.c.Get(ctx, "/locations", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TimeSlotService calls the time-slot endpoints.
type TimeSlotService struct {
	c *Client
}

func NewTimeSlotService(c *Client) *TimeSlotService {
	return &TimeSlotService{c: c}
}

func (s *TimeSlotService) List(ctx context.Context) ([]domain.TimeSlot, error) {
	var out []domain.TimeSlot
	if err := s.c.Get(ctx, "/time-slots", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Available lists slots still open on the given date, optionally for one seat.
func (s *TimeSlotService) Available(ctx context.Context, date, seatID string) ([]domain.TimeSlot, error) {
	q := url.Values{}
	q.Set("date", date)
	if seatID != "" {
		q.Set("seatId", seatID)
	}
	var out []domain.TimeSlot
	if err := s.c.Get(ctx, "/time-slots/available?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

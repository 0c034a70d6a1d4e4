package upstream

import (
	"context"
	"strconv"

	"github.com/seatflow/seatgate/internal/domain"
)

// ReservationService calls the reservation endpoints.
type ReservationService struct {
	c *Client
}

func NewReservationService(c *Client) *ReservationService {
	return &ReservationService{c: c}
}

type CreateReservationInput struct {
	SeatID string `json:"seatId"`
	// Date is YYYY-MM-DD; callers format it with the dates package.
	Date       string `json:"date"`
	TimeSlotID string `json:"timeSlotId"`
}

// ListForUser returns every reservation belonging to the calling user.
func (s *ReservationService) ListForUser(ctx context.Context) ([]domain.Reservation, error) {
	var out []domain.Reservation
	if err := s.c.Get(ctx, "/reservations/user", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ReservationService) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	var out domain.Reservation
	if err := s.c.Get(ctx, "/reservations/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ReservationService) Create(ctx context.Context, in CreateReservationInput) (*domain.Reservation, error) {
	var out domain.Reservation
	if err := s.c.Post(ctx, "/reservations", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Cancel cancels a reservation; the API models this as a DELETE and returns
// the updated record.
func (s *ReservationService) Cancel(ctx context.Context, id string) (*domain.Reservation, error) {
	var out domain.Reservation
	if err := s.c.Delete(ctx, "/reservations/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ReservationService) Checkin(ctx context.Context, id string) (*domain.Reservation, error) {
	var out domain.Reservation
	if err := s.c.Post(ctx, "/reservations/"+id+"/checkin", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Recent returns the calling user's most recent reservations.
func (s *ReservationService) Recent(ctx context.Context, limit int) ([]domain.Reservation, error) {
	var out []domain.Reservation
	if err := s.c.Get(ctx, "/reservations/recent?limit="+strconv.Itoa(limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllRecent returns the most recent reservations across all users (admin).
func (s *ReservationService) AllRecent(ctx context.Context, limit int) ([]domain.Reservation, error) {
	var out []domain.Reservation
	if err := s.c.Get(ctx, "/reservations/all/recent?limit="+strconv.Itoa(limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ReservationService) Stats(ctx context.Context) ([]domain.ReservationStat, error) {
	var out []domain.ReservationStat
	if err := s.c.Get(ctx, "/reservations/stats", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TodayCheckin lists the calling user's reservations eligible for check-in today.
func (s *ReservationService) TodayCheckin(ctx context.Context) ([]domain.Reservation, error) {
	var out []domain.Reservation
	if err := s.c.Get(ctx, "/reservations/today-checkin", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ReservationService) CheckinStats(ctx context.Context) ([]domain.CheckinStat, error) {
	var out []domain.CheckinStat
	if err := s.c.Get(ctx, "/reservations/checkin-stats", &out); err != nil {
		return nil, err
	}
	return out, nil
}

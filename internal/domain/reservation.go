package domain

// Reservation statuses, wire literals like the seat statuses.
const (
	ReservationBooked    = "已预约"
	ReservationCheckedIn = "已签到"
	ReservationCancelled = "已取消"
)

type Reservation struct {
	ID          string `json:"id"`
	SeatID      string `json:"seatId"`
	SeatNumber  string `json:"seatNumber"`
	Location    string `json:"location"`
	UserID      string `json:"userId"`
	Date        string `json:"date"`
	TimeSlot    string `json:"timeSlot"`
	Status      string `json:"status"`
	CheckinTime string `json:"checkinTime,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ReservationStat is one bucket of the per-day reservation counts chart.
type ReservationStat struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// CheckinStat extends ReservationStat with how many bookings checked in.
type CheckinStat struct {
	Name      string `json:"name"`
	Total     int    `json:"total"`
	CheckedIn int    `json:"checkedIn"`
}

// DashboardStats is the admin overview summary.
type DashboardStats struct {
	TotalSeats       int     `json:"totalSeats"`
	TotalUsers       int     `json:"totalUsers"`
	TodayCheckinRate float64 `json:"todayCheckinRate"`
}

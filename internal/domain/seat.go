package domain

// Seat statuses are wire literals the reservation API stores and returns
// verbatim; the gateway round-trips them unmodified.
const (
	SeatAvailable   = "可用"
	SeatReserved    = "已预约"
	SeatMaintenance = "维护中"
)

type Seat struct {
	ID          string   `json:"id"`
	Number      string   `json:"number"`
	Location    string   `json:"location"`
	Status      string   `json:"status"`
	Features    []string `json:"features"`
	Description string   `json:"description,omitempty"`
}

type Location struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TimeSlot struct {
	ID   string `json:"id"`
	Slot string `json:"slot"`
}

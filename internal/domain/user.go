package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User statuses as stored by the reservation API.
const (
	UserActive   = "active"
	UserInactive = "inactive"
	UserBanned   = "banned"
)

// User models an authenticated actor as reported by the reservation API.
// The role is server-authoritative; the gateway never computes it.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Status      string `json:"status,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
	LastLoginAt string `json:"lastLoginAt,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

package domain

import "time"

const (
	RoleUser      = "USER"
	RoleCampOwner = "CAMP_OWNER"
	RoleAdmin     = "ADMIN"
)

type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Caller is the request-scoped identity resolved by the auth middleware.
type Caller struct {
	UserID uint
	Role   string
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

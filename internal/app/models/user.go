package models

import (
	"time"
)

// User defines the identity model based on the 'users' table. A user is
// the single principal shape for all roles; role-specific academic data
// lives in the record tables keyed by the user ID.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"` // Unique login name
	Password  string    `json:"-" db:"password"`        // Hashed password (excluded from JSON)
	Role      RoleType  `json:"role" db:"role"`         // student, faculty or admin; immutable after creation
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

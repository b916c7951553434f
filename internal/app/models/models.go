package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleFaculty RoleType = "faculty"
	RoleAdmin   RoleType = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r RoleType) Valid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// DashboardPath returns the dashboard route for the role. The login
// response carries it so clients know where to land after authentication.
func (r RoleType) DashboardPath() string {
	switch r {
	case RoleStudent:
		return "/api/v1/dashboard/student"
	case RoleFaculty:
		return "/api/v1/dashboard/faculty"
	case RoleAdmin:
		return "/api/v1/dashboard/admin"
	}
	return "/api/v1/auth/login"
}

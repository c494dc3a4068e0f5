package identity

import "time"

// User is a clinician account. The password hash never leaves the process.
type User struct {
	ID            int       `json:"id"`
	Username      string    `json:"username"`
	PasswordHash  string    `json:"-"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Role          string    `json:"role"`
	LicenseNumber *string   `json:"licenseNumber"`
	CreatedAt     time.Time `json:"createdAt"`
}

const RoleDoctor = "doctor"

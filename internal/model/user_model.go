package model

import "time"

// Role is the closed set of account roles. Authorization is decided by
// explicit membership checks against per-route allow-lists; there is no
// hierarchy between roles.
type Role string

const (
	RoleStudent          Role = "student"
	RoleInstructor       Role = "instructor"
	RoleAdmin            Role = "admin"
	RoleEmployer         Role = "employer"
	RoleUniversityAdmin  Role = "university_admin"
	RoleMinistryOfficial Role = "ministry_official"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin, RoleEmployer,
		RoleUniversityAdmin, RoleMinistryOfficial:
		return true
	}
	return false
}

// User is the account record. PasswordHash holds "hexdigest.hexsalt" and is
// never JSON-encoded; services additionally blank it before a User crosses
// the authentication boundary.
type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Verified     bool       `json:"verified"`
	Bio          string     `json:"bio,omitempty"`
	Institution  string     `json:"institution,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// Sanitize blanks the credential digest so the struct can be returned to
// callers outside the authentication core.
func (u *User) Sanitize() *User {
	u.PasswordHash = ""
	return u
}

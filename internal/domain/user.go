package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// User is a stored identity. IsDeleted and IsActive are independent flags:
// soft deletion starts the recovery window, blocking flips IsActive, and
// neither implies the other.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"is_active"`
	IsDeleted    bool       `json:"is_deleted"`
	DeletedOn    *time.Time `json:"deleted_on,omitempty"`
	CreatedOn    time.Time  `json:"created_on"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// CanLogin reports whether the identity is neither blocked nor soft-deleted.
func (u *User) CanLogin() bool {
	return u.IsActive && !u.IsDeleted
}

// RecoveryDeadline is the last instant at which a soft-deleted identity can
// still be recovered. Returns the zero time if the identity is not deleted.
func (u *User) RecoveryDeadline(window time.Duration) time.Time {
	if u.DeletedOn == nil {
		return time.Time{}
	}
	return u.DeletedOn.Add(window)
}

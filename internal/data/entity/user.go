package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

// ReservedUsername cannot be registered; it is the self-service
// profile path segment.
const ReservedUsername = "me"

func ValidRole(role string) bool {
	switch UserRole(role) {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID          int64     `db:"id"`
	Username    string    `db:"username"`
	Email       string    `db:"email"`
	FirstName   string    `db:"first_name"`
	LastName    string    `db:"last_name"`
	Bio         string    `db:"bio"`
	Role        UserRole  `db:"role"`
	IsSuperuser bool      `db:"is_superuser"`
	CodeSalt    uuid.UUID `db:"code_salt"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// IsAdmin reports whether the user holds admin privileges. Superusers
// always do, whatever role they carry.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.IsSuperuser
}

func (u *User) IsModerator() bool {
	return u.Role == RoleModerator
}

// IsStaff reports whether the user may mutate resources authored by
// other users.
func (u *User) IsStaff() bool {
	return u.IsAdmin() || u.IsModerator()
}

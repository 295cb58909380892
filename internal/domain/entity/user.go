package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleStandard = "standard"
)

// User representa un usuario de la aplicación.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt
	Role         string // admin, standard
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario tiene capacidades de administración.
func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }

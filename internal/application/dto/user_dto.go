package dto

import (
	"time"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT y datos del usuario autenticado.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expires_in"` // segundos
	User      UserResponse `json:"user"`
}

// CreateUserRequest alta de usuario (solo admin).
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role" validate:"required,oneof=admin standard"`
}

// UpdateRoleRequest cambio de rol.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin standard"`
}

// UpdatePasswordRequest cambio de contraseña. bcrypt solo usa los primeros 72 bytes.
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// UserResponse salida de un usuario (nunca incluye el hash).
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Role: u.Role, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt}
}

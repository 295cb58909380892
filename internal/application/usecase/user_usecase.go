package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/stock-ledger/internal/application/auth"
	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/validation"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

// UserUseCase administración de usuarios (solo admin en la capa HTTP).
type UserUseCase struct {
	repo repository.UserRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, log *logger.Logger) *UserUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UserUseCase{repo: repo, log: log.Named("users"), now: time.Now}
}

func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, domain.WrapStore("list users", err)
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.NewUserResponse(u))
	}
	return out, nil
}

// Create da de alta un usuario con la contraseña hasheada (bcrypt). Username repetido -> ErrDuplicate.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	in.Username = strings.TrimSpace(in.Username)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	u := &entity.User{Username: in.Username, PasswordHash: hash, Role: in.Role, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, domain.WrapStore("create user", err)
	}
	uc.log.Info().Int64("user_id", u.ID).Str("username", u.Username).Str("role", u.Role).Msg("usuario creado")
	out := dto.NewUserResponse(u)
	return &out, nil
}

// ChangeRole cambia el rol. Un admin no puede quitarse a sí mismo el rol admin.
func (uc *UserUseCase) ChangeRole(ctx context.Context, actorID, id int64, in dto.UpdateRoleRequest) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	if actorID == id && in.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	if err := uc.repo.UpdateRole(ctx, id, in.Role); err != nil {
		return domain.WrapStore("update user role", err)
	}
	uc.log.Info().Int64("user_id", id).Str("role", in.Role).Int64("by", actorID).Msg("rol actualizado")
	return nil
}

func (uc *UserUseCase) ChangePassword(ctx context.Context, id int64, in dto.UpdatePasswordRequest) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return err
	}
	return domain.WrapStore("update user password", uc.repo.UpdatePassword(ctx, id, hash))
}

// Delete elimina un usuario. No se permite borrar la propia cuenta.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, id int64) error {
	if actorID == id {
		return domain.ErrForbidden
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return domain.WrapStore("delete user", err)
	}
	uc.log.Info().Int64("user_id", id).Int64("by", actorID).Msg("usuario eliminado")
	return nil
}

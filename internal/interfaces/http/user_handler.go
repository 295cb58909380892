package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/usecase"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

// UserHandler administración de usuarios (solo admin).
type UserHandler struct {
	uc  *usecase.UserUseCase
	log *logger.Logger
}

func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewListResponse(list))
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ChangeRole PUT /api/users/:id/role. Un admin no puede quitarse su propio rol.
func (h *UserHandler) ChangeRole(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.ChangeRole(c.UserContext(), GetUserID(c), id, in); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	var in dto.UpdatePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.ChangePassword(c.UserContext(), id, in); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/usecase"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

// ItemHandler catálogo de artículos y categorías.
type ItemHandler struct {
	uc         *usecase.ItemUseCase
	categories *usecase.CategoryUseCase
	log        *logger.Logger
}

func NewItemHandler(uc *usecase.ItemUseCase, categories *usecase.CategoryUseCase, log *logger.Logger) *ItemHandler {
	return &ItemHandler{uc: uc, categories: categories, log: log}
}

// List GET /api/items?q=
func (h *ItemHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), c.Query("q"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewListResponse(list))
}

func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/items/:id. Si cambia el stock queda registrado en el log como edición directa.
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	h.log.Info().Str("by", GetUsername(c)).Int64("item_id", id).Msg("artículo actualizado")
	return c.JSON(out)
}

func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListCategories GET /api/categories
func (h *ItemHandler) ListCategories(c *fiber.Ctx) error {
	list, err := h.categories.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewListResponse(list))
}

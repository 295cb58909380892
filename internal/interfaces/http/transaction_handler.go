package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

// TransactionHandler registro y consulta del libro de movimientos.
type TransactionHandler struct {
	record  *inventory.RecordTransactionUseCase
	history *inventory.HistoryUseCase
	log     *logger.Logger
}

func NewTransactionHandler(record *inventory.RecordTransactionUseCase, history *inventory.HistoryUseCase, log *logger.Logger) *TransactionHandler {
	return &TransactionHandler{record: record, history: history, log: log}
}

// Record POST /api/transactions
//
// 201 con la transacción creada; 400 VALIDATION, 409 INSUFFICIENT_STOCK o 503 PERSISTENCE.
func (h *TransactionHandler) Record(c *fiber.Ctx) error {
	var in inventory.RecordTransactionInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	trx, err := h.record.RecordTransaction(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewTransactionResponse(trx))
}

// List GET /api/transactions?item_id=&type=&from=&to=&limit=&offset=
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	f := inventory.HistoryFilter{
		Type: strings.ToUpper(strings.TrimSpace(c.Query("type"))),
		From: c.Query("from"),
		To:   c.Query("to"),
	}
	var invalid []string
	if v := c.Query("item_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			invalid = append(invalid, "item_id")
		}
		f.ItemID = id
	}
	var ok bool
	if f.Limit, ok = queryInt(c, "limit"); !ok {
		invalid = append(invalid, "limit")
	}
	if f.Offset, ok = queryInt(c, "offset"); !ok {
		invalid = append(invalid, "offset")
	}
	if len(invalid) > 0 {
		return writeError(c, h.log, domain.NewInvalidFields(invalid...))
	}

	list, err := h.history.List(c.UserContext(), f)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewListResponse(dto.NewTransactionResponses(list)))
}

// Recent GET /api/transactions/recent?limit=
func (h *TransactionHandler) Recent(c *fiber.Ctx) error {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return writeError(c, h.log, domain.NewInvalidFields("limit"))
	}
	list, err := h.history.Recent(c.UserContext(), limit)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewListResponse(dto.NewTransactionResponses(list)))
}

// queryInt devuelve 0 si el parámetro no viene; ok=false si no es un entero no negativo.
func queryInt(c *fiber.Ctx, key string) (int, bool) {
	v := c.Query(key)
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
